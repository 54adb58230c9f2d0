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

// Package latch implements the byte latches used to pass commands between the
// CPUs of a sound board and the main board.
//
// Pending is the pair of flags that records which side of a two-way latch was
// written most recently. Command is a single byte latch that interrupts the
// receiving CPU when it is written and acknowledges the interrupt when it is
// read.
//
// Neither type holds a reference to a CPU. Interrupt lines are driven through
// the Target interface, which the host implements.
package latch
