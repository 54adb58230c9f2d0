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

// Package otoaudio plays the sound board output with the oto library. It is
// an alternative to the sdlaudio package for hosts without SDL and has the
// same interface.
package otoaudio

import (
	"encoding/binary"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
)

// OtoAudioError is the pattern used for errors returned by the otoaudio
// package.
const OtoAudioError = "otoaudio: %v"

const sampleSize = 2

// SetAudio() blocks while more than this number of samples are waiting
const queueLimit = 4096

// Audio outputs sound using oto.
type Audio struct {
	sampleRate int
	ctx        *oto.Context
	player     *oto.Player
	q          *queue

	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Only one oto context can exist so NewAudio() should be called once.
func NewAudio(sampleRate int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(OtoAudioError, err)
	}
	<-ready

	aud := &Audio{
		sampleRate: sampleRate,
		ctx:        ctx,
		q:          &queue{},
	}
	aud.player = ctx.NewPlayer(aud.q)
	aud.player.Play()

	return aud, nil
}

// SampleRate returns the sample rate of the oto context.
func (aud *Audio) SampleRate() int {
	return aud.sampleRate
}

// Queued returns the number of samples waiting to be played.
func (aud *Audio) Queued() int {
	return aud.q.len() / sampleSize
}

// SetAudio implements the mix.Mixer interface.
func (aud *Audio) SetAudio(samples []int32) error {
	for aud.Queued() > queueLimit {
		time.Sleep(time.Millisecond)
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(mix.Mono(s)))
	}
	aud.q.push(aud.buffer)

	return nil
}

// Stop discards any samples not yet played.
func (aud *Audio) Stop() {
	aud.q.clear()
}

// EndMixing implements the mix.Mixer interface. Queued samples are played
// before the player is closed.
func (aud *Audio) EndMixing() error {
	for aud.Queued() > 0 {
		time.Sleep(time.Millisecond * 10)
	}

	// allow the player's own buffer to empty
	buffered := aud.player.BufferedSize() / sampleSize
	time.Sleep(time.Duration(buffered) * time.Second / time.Duration(aud.sampleRate))

	if err := aud.player.Close(); err != nil {
		return curated.Errorf(OtoAudioError, err)
	}
	return nil
}
