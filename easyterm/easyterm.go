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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry and key decoding, and wraps termios methods in functions
// with friendlier names.
package easyterm

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// EasyTermError is the pattern used for errors returned by the easyterm
// package.
const EasyTermError = "easyterm: %v"

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Initialise the fields in the Terminal struct. Both files must be connected
// to a terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || !IsTerminal(inputFile) {
		return curated.Errorf(EasyTermError, "input is not a terminal")
	}
	if outputFile == nil || !IsTerminal(outputFile) {
		return curated.Errorf(EasyTermError, "output is not a terminal")
	}

	pt.input = inputFile
	pt.output = outputFile
	pt.reader = bufio.NewReader(inputFile)

	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return curated.Errorf(EasyTermError, err)
	}

	// raw and cbreak modes are modifications of the canonical settings
	pt.rawAttr = pt.canAttr
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt.UpdateGeometry()
}

// CleanUp returns the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.output.WriteString(fmt.Sprintf(s, a...))
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return curated.Errorf(EasyTermError, err)
	}
	pt.Geometry.Cols = cols
	pt.Geometry.Rows = rows

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(EasyTermError, err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(EasyTermError, err)
	}
	pt.reader.Reset(pt.input)
	return nil
}

// ReadKey blocks until a key is pressed. The terminal should be in raw or
// cbreak mode.
func (pt *Terminal) ReadKey() (Key, error) {
	return ParseKey(pt.reader)
}
