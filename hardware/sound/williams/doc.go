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

// Package williams implements the command latches of the Williams sound
// boards used in the late 1980s and early 1990s.
//
// The NARC board has two 6809 CPUs. The main board writes commands to the
// master CPU, which passes commands on to the slave CPU. Both CPUs report
// back to the main board through the talkback latch and the two sync bits.
//
// The ADPCM board has a single 6809 driving an OKIM6295 through a banked
// sample ROM.
//
// Time is advanced by the host with the Tick() functions. There is no
// scheduler in this package.
package williams
