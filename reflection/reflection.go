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

package reflection

import (
	"fmt"

	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
)

// Renderer implementations consume a batch of reflected steps.
//
// Implementations must not keep a reference to the ref slice after Reflect()
// returns. The slice is reused by the gatherer.
type Renderer interface {
	Reflect(ref []ReflectedStep) error
}

// ReflectedStep is the state of the board at the end of a single quantum.
type ReflectedStep struct {
	// the last instruction executed by the MCU during the quantum
	CPU pic16c5x.Result

	// total MCU cycles since power-on
	Cycles uint64

	// the MCU has executed a SLEEP instruction
	Sleeping bool

	// the main CPU has written a command that the MCU has not yet read
	CommandPending bool

	// OKIM6295 status register
	OKIStatus uint8

	// number of samples generated during the quantum
	Samples int

	// the largest magnitude of the generated samples
	Peak int32
}

func (r ReflectedStep) String() string {
	sleep := " "
	if r.Sleeping {
		sleep = "z"
	}
	cmd := " "
	if r.CommandPending {
		cmd = "c"
	}
	return fmt.Sprintf("%10d %-16s %s%s oki=%02x n=%d peak=%d", r.Cycles, r.CPU.String(), sleep, cmd, r.OKIStatus, r.Samples, r.Peak)
}
