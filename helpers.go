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
	"fmt"
	"strings"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/memory/picmem"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/preferences"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
	"github.com/jetsetilly/soundboard/modalflag"
	"github.com/jetsetilly/soundboard/otoaudio"
	"github.com/jetsetilly/soundboard/romloader"
	"github.com/jetsetilly/soundboard/sdlaudio"
)

// newEnvironment creates the environment for the main emulation. Preferences
// are loaded from disk and from the command line stack.
func newEnvironment() (*environment.Environment, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}
	return environment.NewEnvironment(environment.MainEmulation, p)
}

// loadROM loads sample or program data with the romloader package.
func loadROM(filename string) (romloader.Loader, error) {
	ld := romloader.NewLoader(filename)
	err := ld.Load()
	if err != nil {
		return ld, err
	}
	return ld, nil
}

// loadSamples loads the sample ROM named by the argument. If the argument is
// empty a ROM of silence is returned.
func loadSamples(filename string) (*rom.ROM, error) {
	if filename == "" {
		return rom.NewROM(make([]byte, rom.OKIAddressSpace)), nil
	}
	ld, err := loadROM(filename)
	if err != nil {
		return nil, err
	}
	return rom.NewROM(ld.Data), nil
}

// bankSamples returns the numbered window of the OKIM6295 address space
// size onto the sample ROM. Bank zero of a ROM that fits in the address
// space is the ROM itself.
func bankSamples(samples *rom.ROM, bank int) (rom.Reader, error) {
	if bank == 0 && samples.Size() <= rom.OKIAddressSpace {
		return samples, nil
	}
	b := rom.NewBank(samples, rom.OKIAddressSpace)
	if bank < 0 || bank >= b.NumBanks() {
		return nil, curated.Errorf("sample ROM bank out of range (%d of %d)", bank, b.NumBanks())
	}
	b.SetBank(bank)
	return b, nil
}

// loadProgram loads a PIC program dump for the named variant.
func loadProgram(filename string, variant string) (*picmem.ProgramROM, pic16c5x.Variant, error) {
	v, ok := pic16c5x.VariantByName(variant)
	if !ok {
		return nil, v, curated.Errorf("unknown PIC variant (%s)", variant)
	}

	ld, err := loadROM(filename)
	if err != nil {
		return nil, v, err
	}

	prog, err := picmem.NewProgramROM(ld.Data)
	if err != nil {
		return nil, v, err
	}

	return prog, v, nil
}

// programArgs handles the arguments common to the modes that run a PIC
// program: the program file and an optional sample ROM.
func programArgs(md *modalflag.Modes) (string, string, error) {
	if err := md.ExpectArgs(1, 2); err != nil {
		return "", "", curated.Errorf("PIC program and optional sample ROM required for %s mode", md)
	}
	return md.GetArg(0), md.GetArg(1), nil
}

// liveAudio is implemented by the audio output packages.
type liveAudio interface {
	mix.Mixer
	SampleRate() int
	Stop()
}

// newLiveAudio opens the named audio backend.
func newLiveAudio(backend string, sampleRate int) (liveAudio, error) {
	switch strings.ToLower(backend) {
	case "sdl":
		return sdlaudio.NewAudio(sampleRate)
	case "oto":
		return otoaudio.NewAudio(sampleRate)
	}
	return nil, curated.Errorf("unknown audio backend (%s)", backend)
}

func printHash(label string, hash string) {
	fmt.Printf("%s: %s\n", label, hash)
}
