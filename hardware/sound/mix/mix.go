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

// Package mix defines how the output of the sound chips reaches an output
// device and provides functions to combine the output of more than one chip.
//
// The sound chips generate 32 bit samples so that the output of several chips
// can be summed without overflow. The Mono() function reduces a summed
// sample to the 16 bit range used by output devices.
package mix

// Mixer is implemented by anything that consumes the audio produced by a
// board.
type Mixer interface {
	// SetAudio receives the most recent samples. The slice should not be
	// retained.
	SetAudio(samples []int32) error

	// EndMixing is called when no more samples will be sent.
	EndMixing() error
}

// Mono reduces a sample to 16 bits. Values outside the range are clipped.
func Mono(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Add the samples in src to the samples in dst. If src is shorter than dst
// the remaining samples in dst are unchanged.
func Add(dst []int32, src []int32) {
	for i := range dst {
		if i >= len(src) {
			return
		}
		dst[i] += src[i]
	}
}

// Multi sends audio to more than one Mixer.
type Multi struct {
	mixers []Mixer
}

// NewMulti is the preferred method of initialisation for the Multi type.
// Nil mixers are ignored.
func NewMulti(mixers ...Mixer) *Multi {
	m := &Multi{}
	for _, mx := range mixers {
		if mx != nil {
			m.mixers = append(m.mixers, mx)
		}
	}
	return m
}

// SetAudio implements the Mixer interface.
func (m *Multi) SetAudio(samples []int32) error {
	for _, mx := range m.mixers {
		if err := mx.SetAudio(samples); err != nil {
			return err
		}
	}
	return nil
}

// EndMixing implements the Mixer interface. Every mixer is ended even if an
// earlier one returns an error. The first error is returned.
func (m *Multi) EndMixing() error {
	var first error
	for _, mx := range m.mixers {
		if err := mx.EndMixing(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
