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

package registers

import (
	"fmt"
	"strings"
)

// bits of the STATUS register.
const (
	StatusPA = 0xe0
	StatusTO = 0x10
	StatusPD = 0x08
	StatusZ  = 0x04
	StatusDC = 0x02
	StatusC  = 0x01
)

// Status is the STATUS register of the PIC16C5x.
//
// The TO and PD fields are the values of the active-low time-out and
// power-down bits. TO is cleared by a watchdog time-out and PD is cleared by
// the SLEEP instruction. Neither bit can be written by the program.
type Status struct {
	// page preselect bits. only the lower two are used by the 16C5x for
	// program memory paging
	PA uint8

	TO         bool
	PD         bool
	Zero       bool
	DigitCarry bool
	Carry      bool
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "STATUS"
}

func (sr Status) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d", sr.PA))
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	flag(sr.TO, 'T')
	flag(sr.PD, 'P')
	flag(sr.Zero, 'Z')
	flag(sr.DigitCarry, 'D')
	flag(sr.Carry, 'C')
	return s.String()
}

// Value returns the 8 bit value of the register.
func (sr Status) Value() uint8 {
	v := (sr.PA << 5) & StatusPA
	if sr.TO {
		v |= StatusTO
	}
	if sr.PD {
		v |= StatusPD
	}
	if sr.Zero {
		v |= StatusZ
	}
	if sr.DigitCarry {
		v |= StatusDC
	}
	if sr.Carry {
		v |= StatusC
	}
	return v
}

// FromValue sets every field of the register from an 8 bit value.
func (sr *Status) FromValue(v uint8) {
	sr.PA = (v & StatusPA) >> 5
	sr.TO = v&StatusTO == StatusTO
	sr.PD = v&StatusPD == StatusPD
	sr.Zero = v&StatusZ == StatusZ
	sr.DigitCarry = v&StatusDC == StatusDC
	sr.Carry = v&StatusC == StatusC
}

// Write sets the fields of the register that can be written by the program.
// The TO and PD bits are unaffected.
func (sr *Status) Write(v uint8) {
	to := sr.TO
	pd := sr.PD
	sr.FromValue(v)
	sr.TO = to
	sr.PD = pd
}

// Page returns the page preselect bits shifted into position for the upper
// bits of the program counter.
func (sr Status) Page() uint16 {
	return uint16(sr.PA) << 9
}
