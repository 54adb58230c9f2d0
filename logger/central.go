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

package logger

import (
	"io"
)

// Permission is implemented by anything that can decide whether a log
// request should be honoured. The emulation environment is the main
// implementation: chips running in a secondary emulation stay quiet.
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow is the Permission to use from code that isn't part of an emulation.
var Allow Permission = always{}

// the central log. there is only ever one
var central = newLogger(256)

// a nil permission is the same as Allow
func permitted(perm Permission) bool {
	if perm == nil {
		return true
	}
	return perm.AllowLogging()
}

// Log adds an entry to the central log.
func Log(perm Permission, tag, detail string) {
	if permitted(perm) {
		central.log(tag, detail)
	}
}

// Logf is the formatted version of Log.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if permitted(perm) {
		central.logf(tag, detail, args...)
	}
}

// Clear removes every entry.
func Clear() {
	central.clear()
}

// Write every entry to output.
func Write(output io.Writer) {
	central.write(output)
}

// WriteRecent writes the entries added since the previous call.
func WriteRecent(output io.Writer) {
	central.writeRecent(output)
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho writes new entries to output as they are logged. If writeRecent
// is true then the echo uses WriteRecent() semantics. A nil output turns
// echoing off.
func SetEcho(output io.Writer, writeRecent bool) {
	central.setEcho(output, writeRecent)
}
