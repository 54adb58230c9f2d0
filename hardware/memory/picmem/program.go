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

package picmem

import (
	"fmt"

	"github.com/jetsetilly/soundboard/curated"
)

// ProgramError is the pattern used for errors returned by ProgramROM.
const ProgramError = "program rom: %v"

// ProgramROM is the mask ROM (or EPROM) of a PIC. Each location is 12 bits
// wide. It implements the picbus.ProgramMemory interface.
type ProgramROM struct {
	words []uint16
}

// NewProgramROM creates a program ROM from a dump of little-endian 16 bit
// words, the format used for PIC16C5x dumps. The upper four bits of each word
// are discarded.
func NewProgramROM(data []byte) (*ProgramROM, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(ProgramError, "empty program")
	}
	if len(data)%2 != 0 {
		return nil, curated.Errorf(ProgramError, fmt.Sprintf("odd number of bytes (%d)", len(data)))
	}

	p := &ProgramROM{
		words: make([]uint16, len(data)/2),
	}
	for i := range p.words {
		p.words[i] = (uint16(data[i*2]) | uint16(data[i*2+1])<<8) & 0x0fff
	}

	return p, nil
}

// NewProgramROMFromWords creates a program ROM from a list of opcodes.
func NewProgramROMFromWords(words []uint16) *ProgramROM {
	p := &ProgramROM{
		words: make([]uint16, len(words)),
	}
	for i := range words {
		p.words[i] = words[i] & 0x0fff
	}
	return p
}

// ReadOpcode implements the picbus.ProgramMemory interface. Addresses beyond
// the end of the ROM are an error.
func (p *ProgramROM) ReadOpcode(address uint16) (uint16, error) {
	if int(address) >= len(p.words) {
		return 0, curated.Errorf(ProgramError, fmt.Sprintf("address out of range (%#03x)", address))
	}
	return p.words[address], nil
}

// Size returns the number of words in the program.
func (p *ProgramROM) Size() int {
	return len(p.words)
}
