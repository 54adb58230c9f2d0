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

// Package board connects a PIC16C5x microcontroller to an OKIM6295 in the way
// that many arcade sound boards of the early 1990s did.
//
// The main CPU of the arcade board writes a command to a latch and raises the
// command pending line, which is connected to bit 0 of the MCU's port A. The
// MCU reads the command by pulling bit 0 of port C low, at which point the
// latch drives port B. The falling edge also acknowledges the command. The
// MCU talks to the OKIM6295 with port B as the data bus: a rising edge on bit
// 6 of port C writes port B to the OKIM6295 and holding bit 7 of port C low
// drives the OKIM6295 status register onto port B.
//
// None of the components hold a reference to each other. The MCU sees the
// board through the picbus.Ports interface and writes to the OKIM6295 are
// queued and delivered by the scheduler in the Step() function.
//
// Time is divided into quanta of MCU cycles. For each quantum the MCU is run
// and the number of OKIM6295 samples that fit into the elapsed time are
// generated. The fraction of a sample that remains is carried into the next
// quantum.
package board
