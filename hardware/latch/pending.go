// This file is part of Soundboard.
//
// Soundboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Soundboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Soundboard.  If not, see <https://www.gnu.org/licenses/>.

package latch

import "fmt"

// Pending records which side of a two-way latch has data waiting. Exactly one
// of the flags is set after the first write. Reading the latch does not
// change the flags.
type Pending struct {
	MainToSub bool
	SubToMain bool
}

func (p Pending) String() string {
	return fmt.Sprintf("main2sub=%d sub2main=%d", p.MainToSubValue(), p.SubToMainValue())
}

// Reset clears both flags.
func (p *Pending) Reset() {
	p.MainToSub = false
	p.SubToMain = false
}

// MainWrote is called when the main CPU writes to its half of the latch.
func (p *Pending) MainWrote() {
	p.MainToSub = true
	p.SubToMain = false
}

// SubWrote is called when the sub CPU writes to its half of the latch.
func (p *Pending) SubWrote() {
	p.MainToSub = false
	p.SubToMain = true
}

// MainToSubValue returns the main to sub flag as it appears on the data bus.
func (p Pending) MainToSubValue() uint8 {
	if p.MainToSub {
		return 1
	}
	return 0
}

// SubToMainValue returns the sub to main flag as it appears on the data bus.
func (p Pending) SubToMainValue() uint8 {
	if p.SubToMain {
		return 1
	}
	return 0
}
