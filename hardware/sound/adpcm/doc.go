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

// Package adpcm implements the 4-bit ADPCM decoder used by the OKI family of
// speech and sample playback chips. The OKIM6295 and the Seibu ADPCM device
// both decode their sample data with it.
//
// A State holds the running 12-bit signal and the step index. Each call to
// Clock() consumes one nibble and returns the new signal. The signal is
// clamped to [-2048, 2047] and the step index to [0, 48], so no input
// sequence, however long, can drive the decoder out of range.
//
// The decoder is a pure function of its state and input. Two State values
// reset in the same way and fed the same nibbles produce the same output.
package adpcm
