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

// Package hardware is the base package for the sound board emulation. The
// sub-packages contain the individual chips and the glue between them.
//
// The cpu/pic16c5x package is the microcontroller core and the sound
// sub-packages contain the OKI ADPCM codec, the OKIM6295 voice mixer and the
// board specific devices built on them. The irq and latch packages describe
// how two processors on a board talk to each other.
//
// The board package combines a PIC16C5x with an OKIM6295 and can be run
// continuously or stepped one quantum at a time.
package hardware
