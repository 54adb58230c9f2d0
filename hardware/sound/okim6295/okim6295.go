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
	"strings"

	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/logger"
)

// NumVoices is the number of voices in the chip.
const NumVoices = 4

// the clock divisor depends on the state of pin 7.
const (
	divisorPin7High = 132
	divisorPin7Low  = 165
)

// each entry in the sample directory is eight bytes long: three bytes of
// start address, three bytes of stop address and two unused bytes.
const directoryEntrySize = 8

// addresses are 18 bits wide.
const addressMask = 0x3ffff

// value of command when no sample has been selected.
const noCommand = -1

// OKIM6295 represents a single MSM6295 chip.
type OKIM6295 struct {
	env *environment.Environment
	rom rom.Reader

	clock int
	pin7  bool

	Voices [NumVoices]Voice

	// sample number selected by the first byte of a two byte command.
	// noCommand if no sample has been selected
	command int
}

// NewOKIM6295 is the preferred method of initialisation for the OKIM6295
// type. The clock is the frequency of the master clock in Hz.
func NewOKIM6295(env *environment.Environment, r rom.Reader, clock int, pin7 bool) *OKIM6295 {
	oki := &OKIM6295{
		env:     env,
		rom:     r,
		clock:   clock,
		pin7:    pin7,
		command: noCommand,
	}
	return oki
}

// NewOKIM6295FromPrefs creates an OKIM6295 with the clock and pin 7 state
// taken from the environment's preferences.
func NewOKIM6295FromPrefs(env *environment.Environment, r rom.Reader) *OKIM6295 {
	return NewOKIM6295(env, r, env.Prefs.OKIClock.Get().(int), env.Prefs.OKIPin7.Get().(bool))
}

// Snapshot creates a copy of the chip in its current state. The ROM is shared
// with the copy.
func (oki *OKIM6295) Snapshot() *OKIM6295 {
	n := *oki
	return &n
}

func (oki *OKIM6295) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("status=%02x", oki.ReadStatus()))
	for i := range oki.Voices {
		s.WriteString(fmt.Sprintf(" %d:[%s]", i, oki.Voices[i].String()))
	}
	return s.String()
}

// Reset stops all voices and forgets any half-written command.
func (oki *OKIM6295) Reset() {
	for i := range oki.Voices {
		oki.Voices[i].Playing = false
	}
	oki.command = noCommand
}

// SetROM changes the sample ROM. Voices that are playing continue from the
// same offset in the new ROM.
func (oki *OKIM6295) SetROM(r rom.Reader) {
	oki.rom = r
}

// SetPin7 changes the state of pin 7 and therefore the sample rate.
func (oki *OKIM6295) SetPin7(pin7 bool) {
	oki.pin7 = pin7
}

// SetClock changes the master clock frequency.
func (oki *OKIM6295) SetClock(clock int) {
	oki.clock = clock
}

// SampleRate returns the number of samples per second that should be
// generated.
func (oki *OKIM6295) SampleRate() int {
	if oki.pin7 {
		return oki.clock / divisorPin7High
	}
	return oki.clock / divisorPin7Low
}

// ReadStatus returns the value of the status register.
func (oki *OKIM6295) ReadStatus() uint8 {
	result := uint8(0xf0)
	for i := range oki.Voices {
		if oki.Voices[i].Playing {
			result |= 1 << i
		}
	}
	return result
}

// WriteCommand writes a byte to the command register.
func (oki *OKIM6295) WriteCommand(command uint8) {
	if oki.command != noCommand {
		oki.startVoices(command)
		oki.command = noCommand
		return
	}

	if command&0x80 == 0x80 {
		oki.command = int(command & 0x7f)
		return
	}

	// voices to stop are in bits 3 to 6
	mask := command >> 3
	for i := range oki.Voices {
		if mask&(1<<i) != 0 {
			oki.Voices[i].Playing = false
		}
	}
}

// second byte of a two byte command.
func (oki *OKIM6295) startVoices(command uint8) {
	mask := command >> 4

	for i := range oki.Voices {
		if mask&(1<<i) == 0 {
			continue
		}

		v := &oki.Voices[i]

		if v.Playing {
			logger.Logf(oki.env, "okim6295", "requested to play sample %02x on non-stopped voice", oki.command)
			continue
		}

		base := uint32(oki.command) * directoryEntrySize
		start := oki.readAddress(base)
		stop := oki.readAddress(base + 3)

		if start >= stop {
			logger.Logf(oki.env, "okim6295", "requested to play invalid sample %02x", oki.command)
			continue
		}

		v.start(start, 2*(stop-start+1), volumeTable[command&0x0f])
	}
}

// read an 18 bit big-endian address from the sample directory.
func (oki *OKIM6295) readAddress(offset uint32) uint32 {
	a := uint32(oki.rom.Read(offset)) << 16
	a |= uint32(oki.rom.Read(offset+1)) << 8
	a |= uint32(oki.rom.Read(offset + 2))
	return a & addressMask
}

// Generate adds the output of all voices to the buffer. The buffer is not
// cleared first so the output of more than one chip can be mixed into the
// same buffer.
func (oki *OKIM6295) Generate(buffer []int32) {
	for i := range oki.Voices {
		oki.Voices[i].generate(oki.rom, buffer)
	}
}
