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

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/digest"
	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/preferences"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
	"github.com/jetsetilly/soundboard/hardware/sound/okim6295"
	"github.com/jetsetilly/soundboard/modalflag"
	"github.com/jetsetilly/soundboard/wavwriter"
)

// number of samples generated at a time by the OKIM6295 modes
const chunkSize = 256

type sampleFlags struct {
	sample   *int
	volume   *int
	voice    *int
	duration *time.Duration
	pin7     *bool
	clock    *int
	bank     *int
}

// the pin7 and clock flags default to the current preferences.
func addSampleFlags(md *modalflag.Modes, env *environment.Environment) sampleFlags {
	return sampleFlags{
		sample:   md.AddHex("sample", 0, "sample number (0 to 127)"),
		volume:   md.AddHex("volume", 0, "volume index (0 is loudest, 9 and above are silent)"),
		voice:    md.AddInt("voice", 0, "voice to play the sample on (0 to 3)"),
		duration: md.AddDuration("duration", time.Minute, "maximum duration of output"),
		pin7:     md.AddBool("pin7", env.Prefs.OKIPin7.Get().(bool), "state of the OKIM6295 SS pin. selects a clock divisor of 132 (true) or 165 (false)"),
		clock:    md.AddInt("clock", env.Prefs.OKIClock.Get().(int), "OKIM6295 master clock in Hz"),
		bank:     md.AddInt("bank", 0, "256K bank of the sample ROM seen by the OKIM6295"),
	}
}

// newOKI creates an OKIM6295 configured by the flags. The sample rate of the
// chip is fixed from this point.
func (f sampleFlags) newOKI(env *environment.Environment, samples *rom.ROM) (*okim6295.OKIM6295, error) {
	r, err := bankSamples(samples, *f.bank)
	if err != nil {
		return nil, err
	}
	oki := okim6295.NewOKIM6295FromPrefs(env, r)
	oki.SetPin7(*f.pin7)
	oki.SetClock(*f.clock)
	return oki, nil
}

func (f sampleFlags) check() error {
	if *f.sample < 0 || *f.sample > 0x7f {
		return curated.Errorf("sample number out of range (%d)", *f.sample)
	}
	if *f.volume < 0 || *f.volume > 0x0f {
		return curated.Errorf("volume index out of range (%d)", *f.volume)
	}
	if *f.voice < 0 || *f.voice >= okim6295.NumVoices {
		return curated.Errorf("voice out of range (%d)", *f.voice)
	}
	if *f.clock < preferences.MinClock || *f.clock > preferences.MaxClock {
		return curated.Errorf("clock out of range (%d)", *f.clock)
	}
	return nil
}

// playSample starts the sample on the OKIM6295 and sends the output to the
// mixer until the sample ends, the duration is exceeded or the context is
// cancelled. Returns the number of samples generated.
func playSample(ctx context.Context, oki *okim6295.OKIM6295, f sampleFlags, out mix.Mixer) (int, error) {
	oki.WriteCommand(0x80 | uint8(*f.sample))
	oki.WriteCommand(uint8(0x10<<*f.voice) | uint8(*f.volume))

	if oki.ReadStatus()&(1<<*f.voice) == 0 {
		return 0, curated.Errorf("sample %#02x did not start", *f.sample)
	}

	limit := int(f.duration.Seconds() * float64(oki.SampleRate()))
	buffer := make([]int32, chunkSize)

	n := 0
	for n < limit && oki.ReadStatus()&0x0f != 0 {
		select {
		case <-ctx.Done():
			return n, nil
		default:
		}

		for i := range buffer {
			buffer[i] = 0
		}
		oki.Generate(buffer)

		if err := out.SetAudio(buffer); err != nil {
			return n, err
		}
		n += len(buffer)
	}

	return n, nil
}

func render(ctx context.Context, md *modalflag.Modes) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}

	md.NewMode()
	f := addSampleFlags(md, env)
	output := md.AddString("out", "out.wav", "name of WAV file to write")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(1, 1); err != nil {
		return curated.Errorf("sample ROM required for %s mode", md)
	}
	if err := f.check(); err != nil {
		return err
	}

	samples, err := loadSamples(md.GetArg(0))
	if err != nil {
		return err
	}

	oki, err := f.newOKI(env, samples)
	if err != nil {
		return err
	}

	aw, err := wavwriter.New(*output, oki.SampleRate())
	if err != nil {
		return err
	}
	dig := digest.NewAudio()
	out := mix.NewMulti(aw, dig)

	n, err := playSample(ctx, oki, f, out)
	if err != nil {
		return err
	}

	if err := out.EndMixing(); err != nil {
		return err
	}

	fmt.Printf("%d samples at %dHz written to %s\n", n, oki.SampleRate(), *output)
	printHash("audio digest", dig.Hash())

	return nil
}

func play(ctx context.Context, md *modalflag.Modes) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}

	md.NewMode()
	f := addSampleFlags(md, env)
	wav := md.AddString("wav", "", "also record audio to wav file")
	backend := md.AddString("audio", "sdl", "audio backend: sdl or oto")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(1, 1); err != nil {
		return curated.Errorf("sample ROM required for %s mode", md)
	}
	if err := f.check(); err != nil {
		return err
	}

	samples, err := loadSamples(md.GetArg(0))
	if err != nil {
		return err
	}

	oki, err := f.newOKI(env, samples)
	if err != nil {
		return err
	}

	aud, err := newLiveAudio(*backend, oki.SampleRate())
	if err != nil {
		return err
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, oki.SampleRate())
		if err != nil {
			return err
		}
	}

	// a nil *WavWriter must not be given to NewMulti() as a non-nil
	// interface
	var out *mix.Multi
	if aw != nil {
		out = mix.NewMulti(aud, aw)
	} else {
		out = mix.NewMulti(aud)
	}

	_, err = playSample(ctx, oki, f, out)
	if err != nil {
		_ = out.EndMixing()
		return err
	}

	return out.EndMixing()
}
