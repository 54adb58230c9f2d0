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

// Package okim6295 emulates the OKI MSM6295, a four voice ADPCM sample
// playback chip.
//
// The chip is programmed through a single byte wide command register. A
// command with bit 7 set selects a sample from the directory at the start of
// the sample ROM and is followed by a second byte: the upper nibble selects
// the voices that should play the sample and the lower nibble the volume.
// Any other byte stops the voices selected by bits 3 to 6.
//
//	1sss ssss   select sample s
//	vvvv aaaa   start sample on voices v with attenuation a
//	0vvv v000   stop voices v
//
// The status register has one bit per voice, set while the voice is playing.
// The upper four bits always read as one.
//
// The chip does not run on its own. The host calls Generate() with a buffer
// of samples at the rate returned by SampleRate().
package okim6295
