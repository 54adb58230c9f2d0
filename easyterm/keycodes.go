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

package easyterm

import (
	"io"
)

// Key is a decoded key press. Printable keys are represented by their rune.
// Keys without a printable representation use the values below.
type Key rune

// List of non-printable keys.
const (
	KeyInterrupt      Key = 3  // end-of-text character
	KeyBackspace      Key = 8
	KeyTab            Key = 9
	KeyCarriageReturn Key = 13
	KeySuspend        Key = 26 // substitute character
	KeyEsc            Key = 27
	KeyDelete         Key = 127

	// cursor keys are outside of the rune range produced by a terminal
	KeyUp Key = -(iota + 1)
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
)

// second byte of an escape sequence
const escCursor = '['

// final byte of cursor escape sequences
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorEnd      = 'F'
	cursorHome     = 'H'
)

// ParseKey reads a single key press from r. Escape sequences for the cursor
// keys are decoded. An incomplete or unknown sequence is returned as KeyEsc.
func ParseKey(r io.ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	if Key(b) != KeyEsc {
		return Key(b), nil
	}

	b, err = r.ReadByte()
	if err != nil || b != escCursor {
		return KeyEsc, nil
	}

	b, err = r.ReadByte()
	if err != nil {
		return KeyEsc, nil
	}

	switch b {
	case cursorUp:
		return KeyUp, nil
	case cursorDown:
		return KeyDown, nil
	case cursorForward:
		return KeyRight, nil
	case cursorBackward:
		return KeyLeft, nil
	case cursorHome:
		return KeyHome, nil
	case cursorEnd:
		return KeyEnd, nil
	}

	return KeyEsc, nil
}
