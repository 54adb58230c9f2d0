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

package test

import (
	"strings"
)

// CompareWriter is an io.Writer that collects everything written to it so
// that it can be compared with an expected string.
type CompareWriter struct {
	sb strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.sb.Write(p)
}

// Clear discards everything written so far.
func (cw *CompareWriter) Clear() {
	cw.sb.Reset()
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.sb.String() == s
}

// Lines returns the collected output split into lines. A trailing newline
// does not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.sb.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.sb.String()
}
