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

import "fmt"

type widths struct {
	location int
	bytecode int
	mnemonic int
	operand  int
}

// widths of each field across all entries.
type fields struct {
	widths widths
}

func (fld *fields) update(e *Entry) {
	if len(e.Location) > fld.widths.location {
		fld.widths.location = len(e.Location)
	}
	if len(e.Bytecode) > fld.widths.bytecode {
		fld.widths.bytecode = len(e.Bytecode)
	}
	if len(e.Mnemonic) > fld.widths.mnemonic {
		fld.widths.mnemonic = len(e.Mnemonic)
	}
	if len(e.Operand) > fld.widths.operand {
		fld.widths.operand = len(e.Operand)
	}
}

// Field identifies one of the formatted fields of an entry.
type Field int

// List of valid Field values.
const (
	FldLocation Field = iota
	FldBytecode
	FldAddress
	FldMnemonic
	FldOperand
	FldCycles
)

// GetField returns the formatted field of the entry, padded to the width of
// the widest instance of the field in the disassembly.
func (dsm *Disassembly) GetField(field Field, e *Entry) string {
	switch field {
	case FldLocation:
		return fmt.Sprintf("%-*s", dsm.fields.widths.location, e.Location)
	case FldBytecode:
		return fmt.Sprintf("%-*s", dsm.fields.widths.bytecode, e.Bytecode)
	case FldAddress:
		return e.Addr
	case FldMnemonic:
		return fmt.Sprintf("%-*s", dsm.fields.widths.mnemonic, e.Mnemonic)
	case FldOperand:
		return fmt.Sprintf("%-*s", dsm.fields.widths.operand, e.Operand)
	case FldCycles:
		return e.Cycles
	}
	return ""
}
