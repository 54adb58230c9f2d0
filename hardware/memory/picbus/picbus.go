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

// Package picbus defines the interfaces through which the PIC16C5x core
// reaches the outside world. The core never holds a concrete memory or
// peripheral type, only these interfaces.
package picbus

// ProgramMemory is the 12-bit wide program space of the PIC. Addresses have
// already been masked to the width of the program counter when ReadOpcode()
// is called.
type ProgramMemory interface {
	ReadOpcode(address uint16) (uint16, error)
}

// DataMemory is the general purpose register file. The special function
// registers (INDF, TMR0, PCL, STATUS, FSR and the ports) are held by the core
// and are never seen on this interface.
//
// Addresses are seven bits wide at most, including the bank bits taken from
// the FSR on the larger parts.
type DataMemory interface {
	Read(address uint8) (uint8, error)
	Write(address uint8, data uint8) error
}

// Port identifies one of the I/O ports of the PIC.
type Port int

// List of valid Port values.
const (
	PortA Port = iota
	PortB
	PortC
	PortD
)

func (p Port) String() string {
	switch p {
	case PortA:
		return "A"
	case PortB:
		return "B"
	case PortC:
		return "C"
	case PortD:
		return "D"
	}
	return "?"
}

// Ports connects the I/O pins of the PIC to the host.
//
// ReadPort returns the level of the pins as seen from outside the chip. The
// core combines this with the output latch according to the TRIS register.
//
// WritePort is called whenever the output latch or the TRIS register changes.
// The mask has a bit set for every pin that is currently an output.
type Ports interface {
	ReadPort(port Port) uint8
	WritePort(port Port, data uint8, mask uint8)
}
