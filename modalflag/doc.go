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

// Package modalflag handles command lines of the form
//
//	program [global flags] MODE [mode flags] [arguments]
//
// It wraps the flag package so that each mode has its own set of flags.
// Arguments are given once with NewArgs() and then parsed in layers:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddModes("RENDER", "PLAY", "DISASM")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		out := md.AddString("out", "out.wav", "output file")
//		md.Parse()
//	}
//
// Mode names are case insensitive and Mode() always returns the upper case
// form. The AddHex() function adds an integer flag that accepts the 0x
// notation common when referring to sound ROMs. Arguments that follow the
// flags of a mode are retrieved with GetArg() and checked with
// ExpectArgs().
package modalflag
