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

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/memory/picbus"
)

// DisasmError is the pattern used for errors returned by the disassembly
// package.
const DisasmError = "disassembly: %v"

// Program is the interface to the program memory being disassembled.
type Program interface {
	picbus.ProgramMemory
	Size() int
}

// Disassembly represents the disassembly of a PIC16C5x program.
type Disassembly struct {
	variant pic16c5x.Variant

	// indexed by address
	Entries []*Entry

	fields fields
}

// FromProgram disassembles the program for the variant. The program must be
// large enough for the variant.
func FromProgram(variant pic16c5x.Variant, prog Program) (*Disassembly, error) {
	if prog.Size() < variant.ProgramSize() {
		return nil, curated.Errorf(DisasmError, fmt.Sprintf("program too small for %s", variant))
	}

	dsm := &Disassembly{
		variant: variant,
		Entries: make([]*Entry, variant.ProgramSize()),
	}

	for a := range dsm.Entries {
		op, err := prog.ReadOpcode(uint16(a))
		if err != nil {
			return nil, curated.Errorf(DisasmError, err)
		}
		dsm.Entries[a] = FormatOpcode(uint16(a), op, variant.ProgramMask)
	}

	dsm.flow()

	for _, e := range dsm.Entries {
		dsm.fields.update(e)
	}

	return dsm, nil
}

// flow labels the destinations of GOTO and CALL instructions.
func (dsm *Disassembly) flow() {
	for _, e := range dsm.Entries {
		if !e.HasTarget {
			continue
		}
		t := dsm.Entries[e.Target]
		t.Prev = append(t.Prev, e.Address)
	}

	// the reset vector is always labelled
	dsm.Entries[dsm.variant.ResetVector].Location = "reset"

	for _, e := range dsm.Entries {
		if len(e.Prev) > 0 && e.Location == "" {
			e.Location = fmt.Sprintf("L%03x", e.Address)
		}
	}
}

// GetEntryByAddress returns the disassembly entry at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	if int(address) >= len(dsm.Entries) {
		return nil, false
	}
	return dsm.Entries[address], true
}

// Variant returns the variant the program was disassembled for.
func (dsm *Disassembly) Variant() pic16c5x.Variant {
	return dsm.variant
}
