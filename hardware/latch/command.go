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

// Line identifies an input line on the receiving CPU.
type Line int

// List of valid Line values.
const (
	IRQ Line = iota
	FIRQ
	NMI
)

func (l Line) String() string {
	switch l {
	case IRQ:
		return "IRQ"
	case FIRQ:
		return "FIRQ"
	case NMI:
		return "NMI"
	}
	return fmt.Sprintf("line %d", int(l))
}

// Target is implemented by the receiver of interrupt line changes.
type Target interface {
	SetInputLine(line Line, asserted bool)
}

// Command is a single byte latch. Writing asserts an interrupt line on the
// receiving CPU and reading the latch clears it.
type Command struct {
	target Target
	line   Line

	Data     uint8
	Asserted bool
}

// NewCommand is the preferred method of initialisation for the Command type.
// The target can be nil.
func NewCommand(target Target, line Line) *Command {
	return &Command{
		target: target,
		line:   line,
	}
}

func (c *Command) String() string {
	if c.Asserted {
		return fmt.Sprintf("%02x (%s)", c.Data, c.line)
	}
	return fmt.Sprintf("%02x", c.Data)
}

// Reset clears the interrupt line. The latched value is unchanged.
func (c *Command) Reset() {
	c.setLine(false)
}

// Write latches the data and asserts the interrupt line.
func (c *Command) Write(data uint8) {
	c.Data = data
	c.setLine(true)
}

// Latch stores the data without asserting the interrupt line.
func (c *Command) Latch(data uint8) {
	c.Data = data
}

// Read returns the latched value and clears the interrupt line.
func (c *Command) Read() uint8 {
	c.setLine(false)
	return c.Data
}

func (c *Command) setLine(asserted bool) {
	c.Asserted = asserted
	if c.target != nil {
		c.target.SetInputLine(c.line, asserted)
	}
}
