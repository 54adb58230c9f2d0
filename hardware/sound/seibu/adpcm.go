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

package seibu

import (
	"fmt"

	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/sound/adpcm"
	"github.com/jetsetilly/soundboard/logger"
)

// ADPCM is the Seibu sample player.
type ADPCM struct {
	env   *environment.Environment
	rom   *rom.ROM
	clock int

	decoder adpcm.State
	current uint32
	end     uint32
	nibble  uint

	Playing bool
}

// NewADPCM is the preferred method of initialisation for the ADPCM type. The
// clock is the sample rate.
func NewADPCM(env *environment.Environment, r *rom.ROM, clock int) *ADPCM {
	dev := &ADPCM{
		env:   env,
		rom:   r,
		clock: clock,
	}
	dev.Reset()
	return dev
}

func (dev *ADPCM) String() string {
	if !dev.Playing {
		return "stopped"
	}
	return fmt.Sprintf("%05x/%05x %s", dev.current, dev.end, dev.decoder)
}

// Reset stops playback and resets the decoder.
func (dev *ADPCM) Reset() {
	dev.Playing = false
	dev.current = 0
	dev.end = 0
	dev.nibble = 4
	dev.decoder.Reset()
}

// SampleRate returns the number of samples per second.
func (dev *ADPCM) SampleRate() int {
	return dev.clock
}

// SetClock changes the sample rate.
func (dev *ADPCM) SetClock(clock int) {
	dev.clock = clock
}

// Decrypt undoes the line swapping of the sample ROM's data lines. The ROM
// is changed in place.
func (dev *ADPCM) Decrypt() {
	data := dev.rom.Data()
	for i := range data {
		data[i] = bitswap8(data[i], 7, 5, 3, 1, 6, 4, 2, 0)
	}
}

// AddressWrite sets the start (offset 0) or end (offset 1) address. Addresses
// are in units of 256 bytes.
func (dev *ADPCM) AddressWrite(offset int, data uint8) {
	if offset != 0 {
		dev.end = uint32(data) << 8
		return
	}
	dev.current = uint32(data) << 8
	dev.nibble = 4
}

// ControlWrite starts (1) or stops (0) playback. Games write the sequence 0,
// 2, 1 to play a sample.
func (dev *ADPCM) ControlWrite(data uint8) {
	switch data {
	case 0:
		dev.Playing = false
	case 1:
		dev.Playing = true
	case 2:
	default:
		logger.Logf(dev.env, "seibu", "unknown ADPCM control value (%02x)", data)
	}
}

// Generate fills the buffer with samples. Unlike the OKIM6295 the buffer is
// overwritten. The high nibble of each byte is played first.
func (dev *ADPCM) Generate(buffer []int32) {
	i := 0
	for ; dev.Playing && i < len(buffer); i++ {
		val := (dev.rom.Read(dev.current) >> dev.nibble) & 0x0f

		dev.nibble ^= 4
		if dev.nibble == 4 {
			dev.current++
			if dev.current >= dev.end {
				dev.Playing = false
			}
		}

		buffer[i] = int32(dev.decoder.Clock(val)) << 4
	}
	for ; i < len(buffer); i++ {
		buffer[i] = 0
	}
}
