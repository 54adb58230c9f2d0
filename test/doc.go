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

// Package test bundles functions that remove common boilerplate from the
// package tests, for use in conjunction with the standard go test harness.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions are fatal and should be used when the value being
// tested is needed by the rest of the test.
//
// It is worth describing how the success/failure functions handle the nil
// type because it is not obvious. The nil type is considered a success, and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test the
// captured output for equality.
package test
