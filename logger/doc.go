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

// Package logger is the central log for the application. Chips and tools add
// entries with Log() and Logf(), tagged with the name of the component making
// the entry.
//
// Identical entries made in succession are folded into a single entry with a
// repeat count. The log holds a fixed number of entries, the oldest entries
// being dropped when that number is exceeded.
package logger
