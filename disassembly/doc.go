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

// Package disassembly produces a disassembly of a PIC16C5x program ROM.
//
// Disassembly is linear: every word of program memory is decoded. A flow pass
// follows the GOTO and CALL instructions and labels their destinations. The
// PA bits of the STATUS register are not known until the program runs so
// destinations are assumed to be in the same page as the instruction.
//
// For quick disassemblies the FromProgram() function can be used.
package disassembly
