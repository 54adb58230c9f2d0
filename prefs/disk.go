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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/soundboard/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the prefs file.
const KeySep = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile = "prefs: file does not exist (%s)"
	PrefsError  = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(PrefsError, fmt.Errorf("duplicate key (%s)", key))
	}
	if strings.Contains(key, KeySep) {
		return curated.Errorf(PrefsError, fmt.Errorf("illegal key (%s)", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preferences to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsError, err)
		}
	}
	return nil
}

// read the prefs file into a map of strings. returns an empty map and a
// NoPrefsFile error if the file does not exist.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return data, curated.Errorf(PrefsError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the warning boilerplate
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return data, curated.Errorf(PrefsError, fmt.Errorf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), KeySep, 2)
		if len(kv) == 2 {
			data[kv[0]] = kv[1]
		}
	}

	return data, scanner.Err()
}

// Load preference values from disk. If limitToDisk is false then command line
// preferences pushed with PushCommandLineStack() take precedence over the
// values on disk.
func (dsk *Disk) Load(limitToDisk bool) error {
	data, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if serr := p.Set(v); serr != nil {
				return curated.Errorf(PrefsError, serr)
			}
		}
		if !limitToDisk {
			if ok, v := GetCommandLinePref(k); ok {
				if serr := p.Set(v); serr != nil {
					return curated.Errorf(PrefsError, serr)
				}
			}
		}
	}

	return err
}

// Save current preference values to disk. Values in the prefs file that are
// not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsError, err)
	}

	return nil
}
