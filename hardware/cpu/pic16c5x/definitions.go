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

// Operands describes the operand field of an instruction.
type Operands int

// List of valid Operands values.
const (
	NoOperands Operands = iota

	// file register and destination bit
	FileDest

	// file register
	File

	// file register and bit number
	FileBit

	// 8 bit literal
	Literal

	// 8 bit (CALL) or 9 bit (GOTO) program address
	Address

	// port number of the TRIS instruction
	Port
)

// Definition of an instruction.
type Definition struct {
	Mnemonic string
	Cycles   int
	Operands Operands
	Illegal  bool

	execute func(*CPU)
}

var illegalDefn = Definition{Mnemonic: "???", Cycles: 1, Illegal: true, execute: (*CPU).illegal}

// opcodes 0x000 to 0x00f are decoded by this table.
var opcode00x = [16]Definition{
	{Mnemonic: "NOP", Cycles: 1, execute: (*CPU).nop},
	illegalDefn,
	{Mnemonic: "OPTION", Cycles: 1, execute: (*CPU).option},
	{Mnemonic: "SLEEP", Cycles: 1, execute: (*CPU).sleep},
	{Mnemonic: "CLRWDT", Cycles: 1, execute: (*CPU).clrwdt},
	{Mnemonic: "TRIS", Cycles: 1, Operands: Port, execute: (*CPU).tris},
	{Mnemonic: "TRIS", Cycles: 1, Operands: Port, execute: (*CPU).tris},
	{Mnemonic: "TRIS", Cycles: 1, Operands: Port, execute: (*CPU).tris},
	illegalDefn, illegalDefn, illegalDefn, illegalDefn,
	illegalDefn, illegalDefn, illegalDefn, illegalDefn,
}

// all other opcodes are decoded by this table, indexed by bits 4 to 11 of the
// opcode. entry zero is never used.
var opcodeMain = buildMain()

func buildMain() [256]Definition {
	var t [256]Definition

	set := func(from, to int, d Definition) {
		for i := from; i <= to; i++ {
			t[i] = d
		}
	}

	set(0x00, 0xff, illegalDefn)
	set(0x02, 0x03, Definition{Mnemonic: "MOVWF", Cycles: 1, Operands: File, execute: (*CPU).movwf})
	set(0x04, 0x04, Definition{Mnemonic: "CLRW", Cycles: 1, execute: (*CPU).clrw})
	set(0x06, 0x07, Definition{Mnemonic: "CLRF", Cycles: 1, Operands: File, execute: (*CPU).clrf})
	set(0x08, 0x0b, Definition{Mnemonic: "SUBWF", Cycles: 1, Operands: FileDest, execute: (*CPU).subwf})
	set(0x0c, 0x0f, Definition{Mnemonic: "DECF", Cycles: 1, Operands: FileDest, execute: (*CPU).decf})
	set(0x10, 0x13, Definition{Mnemonic: "IORWF", Cycles: 1, Operands: FileDest, execute: (*CPU).iorwf})
	set(0x14, 0x17, Definition{Mnemonic: "ANDWF", Cycles: 1, Operands: FileDest, execute: (*CPU).andwf})
	set(0x18, 0x1b, Definition{Mnemonic: "XORWF", Cycles: 1, Operands: FileDest, execute: (*CPU).xorwf})
	set(0x1c, 0x1f, Definition{Mnemonic: "ADDWF", Cycles: 1, Operands: FileDest, execute: (*CPU).addwf})
	set(0x20, 0x23, Definition{Mnemonic: "MOVF", Cycles: 1, Operands: FileDest, execute: (*CPU).movf})
	set(0x24, 0x27, Definition{Mnemonic: "COMF", Cycles: 1, Operands: FileDest, execute: (*CPU).comf})
	set(0x28, 0x2b, Definition{Mnemonic: "INCF", Cycles: 1, Operands: FileDest, execute: (*CPU).incf})
	set(0x2c, 0x2f, Definition{Mnemonic: "DECFSZ", Cycles: 1, Operands: FileDest, execute: (*CPU).decfsz})
	set(0x30, 0x33, Definition{Mnemonic: "RRF", Cycles: 1, Operands: FileDest, execute: (*CPU).rrf})
	set(0x34, 0x37, Definition{Mnemonic: "RLF", Cycles: 1, Operands: FileDest, execute: (*CPU).rlf})
	set(0x38, 0x3b, Definition{Mnemonic: "SWAPF", Cycles: 1, Operands: FileDest, execute: (*CPU).swapf})
	set(0x3c, 0x3f, Definition{Mnemonic: "INCFSZ", Cycles: 1, Operands: FileDest, execute: (*CPU).incfsz})
	set(0x40, 0x4f, Definition{Mnemonic: "BCF", Cycles: 1, Operands: FileBit, execute: (*CPU).bcf})
	set(0x50, 0x5f, Definition{Mnemonic: "BSF", Cycles: 1, Operands: FileBit, execute: (*CPU).bsf})
	set(0x60, 0x6f, Definition{Mnemonic: "BTFSC", Cycles: 1, Operands: FileBit, execute: (*CPU).btfsc})
	set(0x70, 0x7f, Definition{Mnemonic: "BTFSS", Cycles: 1, Operands: FileBit, execute: (*CPU).btfss})
	set(0x80, 0x8f, Definition{Mnemonic: "RETLW", Cycles: 2, Operands: Literal, execute: (*CPU).retlw})
	set(0x90, 0x9f, Definition{Mnemonic: "CALL", Cycles: 2, Operands: Address, execute: (*CPU).call})
	set(0xa0, 0xbf, Definition{Mnemonic: "GOTO", Cycles: 2, Operands: Address, execute: (*CPU).gotoop})
	set(0xc0, 0xcf, Definition{Mnemonic: "MOVLW", Cycles: 1, Operands: Literal, execute: (*CPU).movlw})
	set(0xd0, 0xdf, Definition{Mnemonic: "IORLW", Cycles: 1, Operands: Literal, execute: (*CPU).iorlw})
	set(0xe0, 0xef, Definition{Mnemonic: "ANDLW", Cycles: 1, Operands: Literal, execute: (*CPU).andlw})
	set(0xf0, 0xff, Definition{Mnemonic: "XORLW", Cycles: 1, Operands: Literal, execute: (*CPU).xorlw})

	return t
}

func decode(opcode uint16) *Definition {
	if opcode&0xff0 == 0x000 {
		return &opcode00x[opcode&0x0f]
	}
	return &opcodeMain[(opcode>>4)&0xff]
}

// Lookup returns the definition of the instruction for a 12 bit opcode.
func Lookup(opcode uint16) Definition {
	return *decode(opcode & 0x0fff)
}
