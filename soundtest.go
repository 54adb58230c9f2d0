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
	"os"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/easyterm"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/sound/okim6295"
	"github.com/jetsetilly/soundboard/modalflag"
)

const soundtestHelp = `cursor up/down to select sample
cursor left/right to select volume
space to play, s to stop, q to quit`

// OKIM6295 command to stop all voices.
const stopAllVoices = 0x78

// directory entry of a sample. returns false if the sample is not valid.
func sampleEntry(r rom.Reader, sample int) (uint32, uint32, bool) {
	read := func(offset uint32) uint32 {
		return (uint32(r.Read(offset))<<16 | uint32(r.Read(offset+1))<<8 | uint32(r.Read(offset+2))) & 0x3ffff
	}
	base := uint32(sample) * 8
	start := read(base)
	stop := read(base + 3)
	return start, stop, start < stop
}

func soundtest(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(soundtestHelp)
	backend := md.AddString("audio", "sdl", "audio backend: sdl or oto")
	bank := md.AddInt("bank", 0, "256K bank of the sample ROM seen by the OKIM6295")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(1, 1); err != nil {
		return curated.Errorf("sample ROM required for %s mode", md)
	}

	if !easyterm.IsTerminal(os.Stdin) {
		return curated.Errorf("%s mode requires a terminal", md)
	}

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	samples, err := loadSamples(md.GetArg(0))
	if err != nil {
		return err
	}

	r, err := bankSamples(samples, *bank)
	if err != nil {
		return err
	}

	oki := okim6295.NewOKIM6295FromPrefs(env, r)

	var term easyterm.Terminal
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()
	term.CBreakMode()

	term.Print("%s\n", soundtestHelp)
	term.Print(easyterm.HideCursor)
	defer term.Print(easyterm.ShowCursor + "\n")

	aud, err := newLiveAudio(*backend, oki.SampleRate())
	if err != nil {
		return err
	}
	defer aud.EndMixing()

	keys := make(chan easyterm.Key)
	keyErr := make(chan error, 1)
	go func() {
		for {
			k, err := term.ReadKey()
			if err != nil {
				keyErr <- err
				return
			}
			keys <- k
		}
	}()

	sample := 0
	volume := 0

	status := func() {
		start, stop, ok := sampleEntry(r, sample)
		if ok {
			term.Print("%ssample %02x  %05x-%05x  volume %d  status %02x", easyterm.ClearLine, sample, start, stop, volume, oki.ReadStatus())
		} else {
			term.Print("%ssample %02x  (empty)  volume %d  status %02x", easyterm.ClearLine, sample, volume, oki.ReadStatus())
		}
	}
	status()

	buffer := make([]int32, chunkSize)
	lastStatus := oki.ReadStatus()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-keyErr:
			return curated.Errorf("%s: %v", md, err)

		case k := <-keys:
			switch k {
			case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyInterrupt:
				return nil
			case easyterm.KeyUp:
				sample = (sample + 1) & 0x7f
			case easyterm.KeyDown:
				sample = (sample - 1) & 0x7f
			case easyterm.KeyRight:
				if volume < 8 {
					volume++
				}
			case easyterm.KeyLeft:
				if volume > 0 {
					volume--
				}
			case ' ':
				oki.WriteCommand(stopAllVoices)
				oki.WriteCommand(0x80 | uint8(sample))
				oki.WriteCommand(0x10 | uint8(volume))
			case 's', 'S':
				oki.WriteCommand(stopAllVoices)
				aud.Stop()
			}
			status()

		default:
			for i := range buffer {
				buffer[i] = 0
			}
			oki.Generate(buffer)

			// SetAudio() blocks when the audio device queue is full
			if err := aud.SetAudio(buffer); err != nil {
				return err
			}

			if s := oki.ReadStatus(); s != lastStatus {
				lastStatus = s
				status()
			}
		}
	}
}
