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

package board

import (
	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/govern"
)

// Step runs the MCU for one quantum and returns the samples that fall within
// the elapsed time. The returned slice is reused by the next call to Step().
func (brd *Board) Step() []int32 {
	cycles := brd.MCU.ExecuteCycles(brd.quantum)

	for _, d := range brd.okiQueue {
		brd.OKI.WriteCommand(d)
	}
	brd.okiQueue = brd.okiQueue[:0]

	brd.accumulator += cycles * brd.okiRate
	n := brd.accumulator / brd.mcuRate
	brd.accumulator %= brd.mcuRate

	if cap(brd.buffer) < n {
		brd.buffer = make([]int32, n)
	}
	brd.buffer = brd.buffer[:n]
	for i := range brd.buffer {
		brd.buffer[i] = 0
	}
	brd.OKI.Generate(brd.buffer)

	brd.okiStatus = brd.OKI.ReadStatus()

	return brd.buffer
}

// Run the board until the continueCheck function returns govern.Ending. The
// samples from each quantum are passed to the continueCheck function.
func (brd *Board) Run(continueCheck func(samples []int32) (govern.State, error)) error {
	if continueCheck == nil {
		return curated.Errorf("board: Run() requires a continue check")
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			state, err = continueCheck(brd.Step())
		case govern.Paused:
			state, err = continueCheck(nil)
		default:
			return curated.Errorf("board: unsupported emulation state (%s) in Run() function", state)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Render runs the board until at least the number of samples have been
// produced. All the samples generated are returned.
func (brd *Board) Render(samples int) []int32 {
	out := make([]int32, 0, samples)
	for len(out) < samples {
		out = append(out, brd.Step()...)
	}
	return out
}
