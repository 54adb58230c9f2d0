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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/modalflag"
	"github.com/jetsetilly/soundboard/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, md.NArg(), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "disasm", "-variant", "16C55", "prog.bin"})
	md.AddModes("render", "disasm")
	log := md.AddBool("log", false, "echo log")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")
	test.ExpectEquality(t, *log, true)

	md.NewMode()
	variant := md.AddString("variant", "16C57", "PIC variant")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *variant, "16C55")
	test.ExpectEquality(t, md.GetArg(0), "prog.bin")
	test.ExpectEquality(t, md.String(), "DISASM")
	test.ExpectSuccess(t, md.ExpectArgs(1, 1))

	err = md.ExpectArgs(2, 2)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, modalflag.WrongArgs))
}

func TestModeRequired(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})
	md.AddModes("render", "disasm")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectSuccess(t, curated.Is(err, modalflag.NoMode))

	md.NewArgs([]string{"samples.rom"})
	md.AddModes("render", "disasm")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectSuccess(t, curated.Is(err, modalflag.UnknownMode))
}

func TestNewArgsDiscardsPrevious(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"render", "a.rom"})
	md.AddModes("render")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewArgs([]string{"b.rom"})
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.GetArg(0), "b.rom")
}

func TestHex(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-sample", "0x1f", "-volume", "3"})
	sample := md.AddHex("sample", 0, "sample number")
	volume := md.AddHex("volume", 0, "volume index")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *sample, 0x1f)
	test.ExpectEquality(t, *volume, 3)

	md.NewArgs([]string{"-sample", "zz"})
	md.AddHex("sample", 0, "sample number")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  modes: A, B, C\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestModeHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"play", "-help"})
	md.AddModes("play")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AdditionalHelp("space to play")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage for PLAY mode:\n\nspace to play\n"), tw.String())
}
