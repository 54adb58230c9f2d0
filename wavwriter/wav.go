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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when mixing ends.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
	"github.com/jetsetilly/soundboard/logger"
)

// WavWriterError is the pattern used for errors returned by the wavwriter
// package.
const WavWriterError = "wavwriter: %v"

const bitDepth = 16

// the WAV format value for uncompressed PCM.
const formatPCM = 1

// WavWriter implements the mix.Mixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf(WavWriterError, "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// SetAudio implements the mix.Mixer interface.
func (aw *WavWriter) SetAudio(samples []int32) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(mix.Mono(s)))
	}
	return nil
}

// Len returns the number of samples buffered so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing implements the mix.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}
