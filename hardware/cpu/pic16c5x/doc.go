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

// Package pic16c5x emulates the Microchip PIC16C5x family of 8 bit
// microcontrollers, and the General Instrument PIC1650 and PIC1655 from which
// the family descends. These parts are found on arcade sound boards where
// they sequence sample playback chips.
//
// The CPU is a single type parameterised by a Variant. The host attaches the
// program ROM, the data RAM and the I/O ports through the interfaces in the
// picbus package and drives the CPU by calling ExecuteCycles().
//
// Instructions take one or two instruction cycles. An instruction cycle is
// four oscillator clocks.
//
// Some behaviour is preserved because programs depend on it:
//
// The call stack is two entries deep. A third CALL overwrites the oldest
// return address.
//
// The carry flag after SUBWF is a not-borrow flag. It is cleared when the
// subtraction borrows.
//
// The CONFIG word is set by the host with SetConfig() before the first
// instruction is fetched. Later calls are ignored.
package pic16c5x
