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

package preferences

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/paths"
	"github.com/jetsetilly/soundboard/prefs"
)

// default values for the hardware preferences.
const (
	DefaultOKIClock = 1056000
	DefaultOKIPin7  = true
	DefaultPICClock = 4000000
	DefaultQuantum  = 64
)

// limits of the integer preferences.
const (
	MinClock   = 1000
	MaxClock   = 40000000
	MaxQuantum = 65536
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// master clock of the OKIM6295 in Hz
	OKIClock prefs.Int

	// state of the OKIM6295 SS pin (pin 7). selects the clock divisor and
	// therefore the output sample rate
	OKIPin7 prefs.Bool

	// oscillator frequency of the PIC16C5x in Hz. the instruction clock is
	// a quarter of this value
	PICClock prefs.Int

	// number of PIC instruction cycles executed before the board scheduler
	// exchanges data between chips
	Quantum prefs.Int

	// initialise PIC data memory to random values on power-on
	RandomState prefs.Bool

	// random values generated in the hardware package should use the
	// following number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the default prefs file if it exists.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile creates a Preferences instance backed by the named
// file rather than the default prefs file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.OKIClock.SetRange(MinClock, MaxClock)
	p.PICClock.SetRange(MinClock, MaxClock)
	p.Quantum.SetRange(1, MaxQuantum)
	p.SetDefaults()
	p.Reseed(0)

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for key, v := range map[string]interface {
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
		String() string
	}{
		"okim6295.clock":       &p.OKIClock,
		"okim6295.pin7":        &p.OKIPin7,
		"pic16c5x.clock":       &p.PICClock,
		"board.quantum":        &p.Quantum,
		"hardware.randomstate": &p.RandomState,
	} {
		if err = p.dsk.Add(key, v); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.OKIClock.Set(DefaultOKIClock)
	p.OKIPin7.Set(DefaultOKIPin7)
	p.PICClock.Set(DefaultPICClock)
	p.Quantum.Set(DefaultQuantum)
	p.RandomState.Set(false)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
