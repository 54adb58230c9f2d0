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

// Package performance is used to test the performance of the emulator. The
// board is run for a set duration and the number of MCU instruction cycles
// executed is compared with the number the real hardware would execute in
// the same time.
//
// RunProfiler() can be used to generate the various profile types. On it's
// own the package does not profile anything. The Check() function uses
// RunProfiler() to profile the board while it is being measured.
package performance
