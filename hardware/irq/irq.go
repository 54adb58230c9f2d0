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

package irq

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/logger"
)

// Inactive is the vector presented by a source that is not requesting an
// interrupt.
const Inactive = uint8(0xff)

// InputLine is implemented by the receiver of the combined interrupt request.
type InputLine interface {
	SetInputLineAndVector(line int, asserted bool, vector uint8)
}

// Arbiter combines any number of interrupt sources.
type Arbiter struct {
	env    *environment.Environment
	target InputLine
	line   int

	vectors []uint8
	active  []bool

	// the combined vector at the time of the last update
	vector uint8
}

// NewArbiter is the preferred method of initialisation for the Arbiter type.
// There is one source for each vector. The target can be nil, in which case
// the state of the arbiter can only be inspected with the Vector() and
// Asserted() functions.
func NewArbiter(env *environment.Environment, target InputLine, line int, vectors ...uint8) *Arbiter {
	return &Arbiter{
		env:     env,
		target:  target,
		line:    line,
		vectors: vectors,
		active:  make([]bool, len(vectors)),
		vector:  Inactive,
	}
}

func (arb *Arbiter) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("vector=%02x", arb.vector))
	for i := range arb.vectors {
		if arb.active[i] {
			s.WriteString(fmt.Sprintf(" %d:%02x", i, arb.vectors[i]))
		}
	}
	return s.String()
}

// Reset deactivates every source. The target is updated.
func (arb *Arbiter) Reset() {
	for i := range arb.active {
		arb.active[i] = false
	}
	arb.update()
}

// SetSourceState activates or deactivates a source. The target is updated
// even if the combined vector has not changed. Unknown sources are logged
// and ignored.
func (arb *Arbiter) SetSourceState(src int, active bool) {
	if !arb.validSource(src) {
		return
	}
	arb.active[src] = active
	arb.update()
}

// SourceState returns true if the source is active. Unknown sources are
// never active.
func (arb *Arbiter) SourceState(src int) bool {
	if !arb.validSource(src) {
		return false
	}
	return arb.active[src]
}

func (arb *Arbiter) validSource(src int) bool {
	if src < 0 || src >= len(arb.active) {
		logger.Logf(arb.env, "irq", "no source %d", src)
		return false
	}
	return true
}

func (arb *Arbiter) update() {
	arb.vector = Inactive
	for i, v := range arb.vectors {
		if arb.active[i] {
			arb.vector &= v
		}
	}
	if arb.target != nil {
		arb.target.SetInputLineAndVector(arb.line, arb.Asserted(), arb.vector)
	}
}

// Vector returns the combined vector.
func (arb *Arbiter) Vector() uint8 {
	return arb.vector
}

// Asserted returns true if the interrupt line is asserted.
func (arb *Arbiter) Asserted() bool {
	return arb.vector != Inactive
}
