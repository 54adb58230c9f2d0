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
	"io"
	"strings"

	"github.com/jetsetilly/soundboard/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool

	// runs of NOP instructions that are not the destination of a jump are
	// written as a single ellipsis
	SkipNOP bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	return dsm.WriteRange(output, attr, 0, uint16(len(dsm.Entries)-1))
}

// WriteRange writes the disassembly between the two addresses (inclusive) to
// io.Writer.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, from uint16, to uint16) error {
	if int(to) >= len(dsm.Entries) || from > to {
		return curated.Errorf(DisasmError, fmt.Sprintf("invalid range (%03x to %03x)", from, to))
	}

	skipping := false
	for _, e := range dsm.Entries[from : to+1] {
		if attr.SkipNOP && e.Opcode == 0x000 && e.Location == "" {
			if !skipping {
				if _, err := io.WriteString(output, "...\n"); err != nil {
					return err
				}
			}
			skipping = true
			continue
		}
		skipping = false

		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}

	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	s := strings.Builder{}

	if e.Location != "" {
		s.WriteString(e.Location)
		s.WriteString(":\n")
	}

	if attr.ByteCode {
		s.WriteString(dsm.GetField(FldBytecode, e))
		s.WriteString(" ")
	}

	s.WriteString(dsm.GetField(FldAddress, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(FldMnemonic, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(FldOperand, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(FldCycles, e))

	if attr.FlowInfo {
		if e.HasTarget {
			s.WriteString(fmt.Sprintf(" -> %03x", e.Target))
		}
		if len(e.Prev) > 0 {
			s.WriteString(" <-")
			for _, p := range e.Prev {
				s.WriteString(fmt.Sprintf(" %03x", p))
			}
		}
	}

	s.WriteString("\n")

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " \n")+"\n")
	return err
}
