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

package pic16c5x

import "strings"

// Model identifies a member of the PIC16C5x family.
type Model int

// List of valid Model values.
const (
	PIC16C54 Model = iota
	PIC16C55
	PIC16C56
	PIC16C57
	PIC16C58
	PIC1650
	PIC1655
)

// Variant describes the differences between members of the family. The
// instruction set is the same for every member.
type Variant struct {
	Model Model
	Name  string

	// mask applied to the program counter. one less than the number of words
	// of program memory
	ProgramMask uint16

	// mask applied to data memory addresses. the number of addressable file
	// registers, including banked registers, is RAMMask+1
	RAMMask uint8

	// address of the first instruction after reset. always the last word of
	// program memory
	ResetVector uint16

	// port A is four bits wide on the 16C5x
	PortAMask uint8

	// the FSR selects a RAM bank for direct addressing
	Banked bool

	// register 7 is port C rather than RAM
	HasPortC bool

	// register 8 is port D rather than RAM
	HasPortD bool

	// the General Instrument parts have open drain I/O without TRIS registers.
	// the value read from a port is the external level ANDed with the latch
	OpenDrain bool
}

func (v Variant) String() string {
	return v.Name
}

// Variants is the list of supported variants.
var Variants = []Variant{
	{Model: PIC16C54, Name: "PIC16C54", ProgramMask: 0x1ff, RAMMask: 0x1f, ResetVector: 0x1ff, PortAMask: 0x0f},
	{Model: PIC16C55, Name: "PIC16C55", ProgramMask: 0x1ff, RAMMask: 0x1f, ResetVector: 0x1ff, PortAMask: 0x0f, HasPortC: true},
	{Model: PIC16C56, Name: "PIC16C56", ProgramMask: 0x3ff, RAMMask: 0x1f, ResetVector: 0x3ff, PortAMask: 0x0f},
	{Model: PIC16C57, Name: "PIC16C57", ProgramMask: 0x7ff, RAMMask: 0x7f, ResetVector: 0x7ff, PortAMask: 0x0f, Banked: true, HasPortC: true},
	{Model: PIC16C58, Name: "PIC16C58", ProgramMask: 0x7ff, RAMMask: 0x7f, ResetVector: 0x7ff, PortAMask: 0x0f, Banked: true},
	{Model: PIC1650, Name: "PIC1650", ProgramMask: 0x1ff, RAMMask: 0x1f, ResetVector: 0x1ff, PortAMask: 0xff, HasPortC: true, HasPortD: true, OpenDrain: true},
	{Model: PIC1655, Name: "PIC1655", ProgramMask: 0x1ff, RAMMask: 0x1f, ResetVector: 0x1ff, PortAMask: 0x0f, HasPortC: true, OpenDrain: true},
}

// VariantByName returns the variant with the given name. The match is case
// insensitive and the "PIC" prefix is optional.
func VariantByName(name string) (Variant, bool) {
	name = strings.ToUpper(name)
	if !strings.HasPrefix(name, "PIC") {
		name = "PIC" + name
	}
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// RAMSize returns the size of the data memory that should be attached to the
// CPU.
func (v Variant) RAMSize() int {
	return int(v.RAMMask) + 1
}

// ProgramSize returns the number of words of program memory.
func (v Variant) ProgramSize() int {
	return int(v.ProgramMask) + 1
}
