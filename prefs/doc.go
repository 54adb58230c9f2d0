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

// Package prefs facilitates the storage of preferential values in the
// application. It stores values on disk and retrieves values from disk. It
// also allows values to be overridden from the command line.
//
// Types that can be stored are defined in the package: Bool and Int. An Int
// can be restricted to a range with SetRange(). Values of these types are added to a Disk with the
// Add() function and given a unique key. The key is used in the prefs file.
//
//	var oki struct {
//		pin7 prefs.Bool
//	}
//	dsk, _ := prefs.NewDisk("prefs")
//	dsk.Add("okim6295.pin7", &oki.pin7)
//	dsk.Load(true)
//
// The prefs file is a plain text file with one "key :: value" pair per line.
// Keys in the file that are not known to the Disk instance being saved are
// preserved, so more than one Disk can share a file.
package prefs
