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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/soundboard/disassembly"
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/memory/picmem"
	"github.com/jetsetilly/soundboard/test"
)

func TestFormatOpcode(t *testing.T) {
	format := func(address uint16, opcode uint16) string {
		return disassembly.FormatOpcode(address, opcode, 0x7ff).String()
	}

	test.ExpectEquality(t, format(0, 0x000), "NOP")
	test.ExpectEquality(t, format(0, 0x040), "CLRW")
	test.ExpectEquality(t, format(0, 0xcff), "MOVLW 0xff")
	test.ExpectEquality(t, format(0, 0x027), "MOVWF PORTC")
	test.ExpectEquality(t, format(0, 0x1e9), "ADDWF 0x09,F")
	test.ExpectEquality(t, format(0, 0x088), "SUBWF 0x08,W")
	test.ExpectEquality(t, format(0, 0x5a3), "BSF STATUS,PA0")
	test.ExpectEquality(t, format(0, 0x403), "BCF STATUS,C")
	test.ExpectEquality(t, format(0, 0x4c7), "BCF PORTC,6")
	test.ExpectEquality(t, format(0, 0x006), "TRIS PORTB")
	test.ExpectEquality(t, format(0, 0x001), "??? 0x001")
	test.ExpectEquality(t, format(0x00d, 0xa0d), "GOTO 0x00d")

	// destinations are in the page of the instruction. CALL can only reach the
	// first half of a page
	test.ExpectEquality(t, format(0x210, 0x980), "CALL 0x280")
	test.ExpectEquality(t, format(0x210, 0xbff), "GOTO 0x3ff")

	e := disassembly.FormatOpcode(0, 0x910, 0x1ff)
	test.ExpectEquality(t, e.HasTarget, true)
	test.ExpectEquality(t, e.Target, 0x010)
	test.ExpectEquality(t, e.Cycles, "2")
	test.ExpectEquality(t, e.Bytecode, "910")
}

func disassemble(t *testing.T) *disassembly.Disassembly {
	t.Helper()

	v, ok := pic16c5x.VariantByName("16C54")
	test.DemandEquality(t, ok, true)

	words := make([]uint16, v.ProgramSize())
	copy(words, []uint16{
		0x910, // CALL 0x010
		0xa00, // GOTO 0x000
	})
	words[0x010] = 0x800 // RETLW 0x00
	words[v.ResetVector] = 0xa00

	dsm, err := disassembly.FromProgram(v, picmem.NewProgramROMFromWords(words))
	test.DemandSuccess(t, err)
	return dsm
}

func TestFlow(t *testing.T) {
	dsm := disassemble(t)

	e, ok := dsm.GetEntryByAddress(0x010)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, e.Location, "L010")
	test.DemandEquality(t, len(e.Prev), 1)
	test.ExpectEquality(t, e.Prev[0], 0x000)

	// two jumps to address zero
	e, _ = dsm.GetEntryByAddress(0x000)
	test.ExpectEquality(t, e.Location, "L000")
	test.ExpectEquality(t, len(e.Prev), 2)

	e, _ = dsm.GetEntryByAddress(0x1ff)
	test.ExpectEquality(t, e.Location, "reset")

	_, ok = dsm.GetEntryByAddress(0x200)
	test.ExpectEquality(t, ok, false)
}

func TestWrite(t *testing.T) {
	dsm := disassemble(t)

	tw := &strings.Builder{}
	test.DemandSuccess(t, dsm.WriteRange(tw, disassembly.WriteAttr{SkipNOP: true}, 0x000, 0x011))

	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.DemandEquality(t, len(lines), 7)
	test.ExpectEquality(t, lines[0], "L000:")
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "000 CALL"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "001 GOTO"))
	test.ExpectEquality(t, lines[3], "...")
	test.ExpectEquality(t, lines[4], "L010:")
	test.ExpectSuccess(t, strings.HasPrefix(lines[5], "010 RETLW"))
	test.ExpectEquality(t, lines[6], "...")

	test.ExpectFailure(t, dsm.WriteRange(tw, disassembly.WriteAttr{}, 0x010, 0x200))
}

func TestGrep(t *testing.T) {
	dsm := disassemble(t)

	tw := &strings.Builder{}
	test.DemandSuccess(t, dsm.Grep(tw, disassembly.GrepMnemonic, "retlw", false))
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 1)

	tw.Reset()
	test.DemandSuccess(t, dsm.Grep(tw, disassembly.GrepMnemonic, "goto", true))
	test.ExpectEquality(t, tw.Len(), 0)

	tw.Reset()
	test.DemandSuccess(t, dsm.Grep(tw, disassembly.GrepOperand, "0x000", false))
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 2)
}

func TestTooSmall(t *testing.T) {
	v, _ := pic16c5x.VariantByName("16C57")
	_, err := disassembly.FromProgram(v, picmem.NewProgramROMFromWords(make([]uint16, 512)))
	test.ExpectFailure(t, err)
}
