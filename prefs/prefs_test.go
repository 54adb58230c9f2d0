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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/prefs"
	"github.com/jetsetilly/soundboard/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectFailure(t, v.Set("yes"))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set("1056000"))
	test.ExpectEquality(t, v.Get().(int), 1056000)
	test.ExpectFailure(t, v.Set("one"))

	var hooked int
	v.SetHookPost(func(nv prefs.Value) error {
		hooked = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(7))
	test.ExpectEquality(t, hooked, 7)

	test.ExpectSuccess(t, v.Set("0x10"))
	test.ExpectEquality(t, v.Get().(int), 16)

	v.SetRange(1, 100)
	test.ExpectFailure(t, v.Set(0))
	test.ExpectFailure(t, v.Set("101"))
	test.ExpectEquality(t, hooked, 16)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 1)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var pin7 prefs.Bool
	var clock prefs.Int
	test.DemandSuccess(t, dsk.Add("okim6295.pin7", &pin7))
	test.DemandSuccess(t, dsk.Add("okim6295.clock", &clock))
	test.ExpectFailure(t, dsk.Add("okim6295.clock", &clock))

	// loading before the file exists is a NoPrefsFile error
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	pin7.Set(true)
	clock.Set(1000000)
	test.DemandSuccess(t, dsk.Save())

	pin7.Set(false)
	clock.Set(0)
	test.DemandSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, pin7.Get().(bool), true)
	test.ExpectEquality(t, clock.Get().(int), 1000000)

	// keys belonging to another disk instance survive a save
	other, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var quantum prefs.Int
	test.DemandSuccess(t, other.Add("board.quantum", &quantum))
	quantum.Set(64)
	test.DemandSuccess(t, other.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+
		"board.quantum :: 64\n"+
		"okim6295.clock :: 1000000\n"+
		"okim6295.pin7 :: true\n")
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var clock prefs.Int
	test.DemandSuccess(t, dsk.Add("okim6295.clock", &clock))

	prefs.PushCommandLineStack("okim6295.clock::2000000; unused::1")
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, clock.Get().(int), 2000000)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
}
