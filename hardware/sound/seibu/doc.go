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

// Package seibu implements the sound system used on Seibu Kaihatsu arcade
// boards.
//
// The Sound type is the interface between the main CPU and the Z80 sound CPU.
// The main CPU writes two byte commands to the main2sub latch and reads
// replies from the sub2main latch. A write to the RST18 register interrupts
// the sound CPU. The YM3812 FM chip interrupts the sound CPU with RST10. The
// two interrupt requests are combined by an irq.Arbiter.
//
// The ADPCM type is the YM3931 sample player found on some of the later
// boards. It uses the OKI ADPCM decoder.
//
// The SEI80BU functions decrypt the program ROM of the encrypted Z80 used on
// those boards.
package seibu
