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

package okim6295

import (
	"fmt"

	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/sound/adpcm"
)

// attenuation values for the lower nibble of the second command byte. values
// above 8 are silent.
var volumeTable = [16]int32{
	0x20, // 0 dB
	0x16, // -3.2 dB
	0x10, // -6.0 dB
	0x0b, // -9.2 dB
	0x08, // -12.0 dB
	0x06, // -14.5 dB
	0x04, // -18.0 dB
	0x03, // -20.5 dB
	0x02, // -24.0 dB
	0x00,
	0x00,
	0x00,
	0x00,
	0x00,
	0x00,
	0x00,
}

// Voice is one playback channel of the OKIM6295.
type Voice struct {
	Playing bool

	// byte offset of the first sample in the ROM
	BaseOffset uint32

	// the current nibble (two nibbles per byte) and the number of nibbles in
	// the sample
	Sample uint32
	Count  uint32

	// volume multiplier taken from the volume table
	Volume int32

	ADPCM adpcm.State
}

func (v Voice) String() string {
	if !v.Playing {
		return "idle"
	}
	return fmt.Sprintf("base=%05x %d/%d vol=%02x", v.BaseOffset, v.Sample, v.Count, v.Volume)
}

// start playback of sample data. count is in nibbles.
func (v *Voice) start(base uint32, count uint32, volume int32) {
	v.Playing = true
	v.BaseOffset = base
	v.Sample = 0
	v.Count = count
	v.Volume = volume
	v.ADPCM.Reset()
}

// generate adds the output of the voice to the buffer. the voice stops when
// the sample has been exhausted.
func (v *Voice) generate(r rom.Reader, buffer []int32) {
	if !v.Playing {
		return
	}

	for i := range buffer {
		// high nibble first
		b := r.Read(v.BaseOffset + v.Sample/2)
		nibble := b >> (((v.Sample & 1) << 2) ^ 4)

		// signal in range -2048..2047 and volume in range 0..32 gives an
		// output in the range -32768..32767
		buffer[i] += int32(v.ADPCM.Clock(nibble)) * v.Volume / 2

		v.Sample++
		if v.Sample >= v.Count {
			v.Playing = false
			return
		}
	}
}
