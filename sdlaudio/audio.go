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

// Package sdlaudio plays the sound board output through the host's audio
// device. It implements the mix.Mixer interface.
package sdlaudio

import (
	"encoding/binary"
	"time"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLAudioError is the pattern used for errors returned by the sdlaudio
// package.
const SDLAudioError = "sdlaudio: %v"

// number of samples in each chunk sent to the audio device
const bufferLength = 512

// bytes per sample. samples are queued as signed 16 bit little endian
const sampleSize = 2

// the maximum number of samples allowed in the device queue before
// SetAudio() blocks. keeps latency low when the board runs faster than the
// audio device consumes samples
const queueLimit = bufferLength * 8

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(sampleRate int) (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDLAudioError, err)
	}

	aud := &Audio{
		buffer: make([]uint8, bufferLength*sampleSize),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf(SDLAudioError, err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SampleRate returns the frequency the audio device actually opened with.
func (aud *Audio) SampleRate() int {
	return int(aud.spec.Freq)
}

// Queued returns the number of samples waiting to be played.
func (aud *Audio) Queued() int {
	return int(sdl.GetQueuedAudioSize(aud.id)) / sampleSize
}

// SetAudio implements the mix.Mixer interface.
func (aud *Audio) SetAudio(samples []int32) error {
	for _, s := range samples {
		binary.LittleEndian.PutUint16(aud.buffer[aud.bufferCt:], uint16(mix.Mono(s)))
		aud.bufferCt += sampleSize
		if aud.bufferCt >= len(aud.buffer) {
			if err := aud.flushAudio(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (aud *Audio) flushAudio() error {
	for aud.Queued() > queueLimit {
		time.Sleep(time.Millisecond)
	}

	err := sdl.QueueAudio(aud.id, aud.buffer[:aud.bufferCt])
	if err != nil {
		return curated.Errorf(SDLAudioError, err)
	}
	aud.bufferCt = 0

	return nil
}

// Stop discards any samples not yet played.
func (aud *Audio) Stop() {
	aud.bufferCt = 0
	sdl.ClearQueuedAudio(aud.id)
}

// EndMixing implements the mix.Mixer interface. Queued samples are played
// before the device is closed.
func (aud *Audio) EndMixing() error {
	defer sdl.QuitSubSystem(sdl.INIT_AUDIO)
	defer sdl.CloseAudioDevice(aud.id)

	if aud.bufferCt > 0 {
		if err := aud.flushAudio(); err != nil {
			return err
		}
	}

	for aud.Queued() > 0 {
		time.Sleep(time.Millisecond * 10)
	}

	return nil
}
