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

package registers

import "fmt"

// bits of the CONFIG word.
const (
	ConfigFOSC = 0x003
	ConfigWDTE = 0x004
	ConfigCP   = 0x008
)

// Oscillator is the oscillator type selected by the FOSC bits.
type Oscillator uint8

// List of valid Oscillator values.
const (
	OscillatorLP Oscillator = iota
	OscillatorXT
	OscillatorHS
	OscillatorRC
)

func (o Oscillator) String() string {
	switch o {
	case OscillatorLP:
		return "LP"
	case OscillatorXT:
		return "XT"
	case OscillatorHS:
		return "HS"
	case OscillatorRC:
		return "RC"
	}
	return "?"
}

// Config is the configuration word of the PIC16C5x. It is fixed when the part
// is programmed and cannot be read or written by the program.
type Config uint16

// Label returns the canonical name for the config word.
func (c Config) Label() string {
	return "CONFIG"
}

func (c Config) String() string {
	return fmt.Sprintf("%03x osc=%s wdt=%v cp=%v", uint16(c), c.Oscillator(), c.WatchdogEnabled(), c.CodeProtect())
}

// WatchdogEnabled returns true if the watchdog timer is enabled.
func (c Config) WatchdogEnabled() bool {
	return c&ConfigWDTE == ConfigWDTE
}

// Oscillator returns the oscillator type.
func (c Config) Oscillator() Oscillator {
	return Oscillator(c & ConfigFOSC)
}

// CodeProtect returns true if code protection is enabled. The bit is active
// low.
func (c Config) CodeProtect() bool {
	return c&ConfigCP == 0
}
