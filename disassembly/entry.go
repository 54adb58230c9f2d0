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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
)

// names of the special function registers as they appear in operands.
var registerNames = [...]string{"INDF", "TMR0", "PCL", "STATUS", "FSR", "PORTA", "PORTB", "PORTC"}

// names of the STATUS register bits as they appear in bit operands.
var statusBits = [...]string{"C", "DC", "Z", "PD", "TO", "PA0", "PA1", "PA2"}

// Entry is a single decoded instruction.
type Entry struct {
	Address uint16
	Opcode  uint16
	Defn    pic16c5x.Definition

	// formatted fields
	Location string
	Bytecode string
	Addr     string
	Mnemonic string
	Operand  string
	Cycles   string

	// destination of a GOTO or CALL. only valid if HasTarget is true
	Target    uint16
	HasTarget bool

	// the addresses of instructions that jump to or call this entry
	Prev []uint16
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Mnemonic
	}
	return fmt.Sprintf("%s %s", e.Mnemonic, e.Operand)
}

// FormatOpcode decodes an opcode found at the address. The program mask is
// used to calculate the destination of GOTO and CALL instructions.
func FormatOpcode(address uint16, opcode uint16, programMask uint16) *Entry {
	opcode &= 0x0fff

	e := &Entry{
		Address:  address,
		Opcode:   opcode,
		Defn:     pic16c5x.Lookup(opcode),
		Bytecode: fmt.Sprintf("%03x", opcode),
		Addr:     fmt.Sprintf("%03x", address),
	}

	e.Mnemonic = e.Defn.Mnemonic
	if e.Defn.Illegal {
		e.Operand = fmt.Sprintf("0x%03x", opcode)
		e.Cycles = "1"
		return e
	}
	e.Cycles = fmt.Sprintf("%d", e.Defn.Cycles)

	page := address & 0x600

	switch e.Defn.Operands {
	case pic16c5x.NoOperands:
	case pic16c5x.FileDest:
		dest := "W"
		if opcode&0x20 == 0x20 {
			dest = "F"
		}
		e.Operand = fmt.Sprintf("%s,%s", fileName(opcode), dest)
	case pic16c5x.File:
		e.Operand = fileName(opcode)
	case pic16c5x.FileBit:
		b := (opcode >> 5) & 0x07
		if opcode&0x1f == 0x03 {
			e.Operand = fmt.Sprintf("STATUS,%s", statusBits[b])
		} else {
			e.Operand = fmt.Sprintf("%s,%d", fileName(opcode), b)
		}
	case pic16c5x.Literal:
		e.Operand = fmt.Sprintf("0x%02x", opcode&0xff)
	case pic16c5x.Address:
		if e.Mnemonic == "CALL" {
			e.Target = (page | opcode&0xff) & 0x6ff & programMask
		} else {
			e.Target = (page | opcode&0x1ff) & programMask
		}
		e.HasTarget = true
		e.Operand = fmt.Sprintf("0x%03x", e.Target)
	case pic16c5x.Port:
		e.Operand = registerNames[opcode&0x07]
	}

	return e
}

func fileName(opcode uint16) string {
	f := opcode & 0x1f
	if int(f) < len(registerNames) {
		return registerNames[f]
	}
	return fmt.Sprintf("0x%02x", f)
}
