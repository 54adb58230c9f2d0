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

// Package irq combines interrupt requests from more than one source onto a
// single CPU input line.
//
// Each source has a fixed vector, in the form of the opcode placed on the data
// bus during the interrupt acknowledge cycle. The Z80 RST instructions are the
// usual case: RST 10h is 0xd7 and RST 18h is 0xdf. Sources that are inactive
// present 0xff (RST 38h) and the vector presented to the CPU is the bitwise
// AND of every source. The line is asserted whenever the combined vector is
// not 0xff.
//
// The arbiter does not hold a reference to the CPU. Changes are announced
// through the InputLine interface, which the host implements.
package irq
