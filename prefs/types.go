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
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/soundboard/curated"
)

// Value is the Go value stored by a preference.
type Value interface{}

// the interface required of a type before it can be added to a Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hook is the callback common to all preference types. It is run after
// every call to Set(), whether or not the value changed.
type hook struct {
	post func(value Value) error
}

// SetHookPost sets the function called after the value has been set.
func (h *hook) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hook) run(v Value) error {
	if h.post == nil {
		return nil
	}
	return h.post(v)
}

// Bool is a boolean preference. The zero value is false.
type Bool struct {
	hook
	crit  sync.RWMutex
	value bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set accepts a bool or a string. Strings are parsed with
// strconv.ParseBool() so "1", "t" and "true" are all true.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		var err error
		nv, err = strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf("prefs: not a boolean value (%s)", v)
		}
	default:
		return curated.Errorf("prefs: cannot use %T as a boolean value", v)
	}

	p.crit.Lock()
	p.value = nv
	p.crit.Unlock()

	return p.run(nv)
}

// Get returns the value as a bool.
func (p *Bool) Get() Value {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.value
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int is an integer preference. The zero value is zero with no range
// restriction.
type Int struct {
	hook
	crit  sync.RWMutex
	value int

	ranged bool
	min    int
	max    int
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// SetRange restricts future values to the inclusive range. It does not
// affect the current value.
func (p *Int) SetRange(min int, max int) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.ranged = true
	p.min = min
	p.max = max
}

// Set accepts any integer type or a string. Strings may be in any base
// accepted by strconv.ParseInt() with a base of zero.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case uint8:
		nv = int(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return curated.Errorf("prefs: not an integer value (%s)", v)
		}
		nv = int(n)
	default:
		return curated.Errorf("prefs: cannot use %T as an integer value", v)
	}

	p.crit.Lock()
	if p.ranged && (nv < p.min || nv > p.max) {
		p.crit.Unlock()
		return curated.Errorf("prefs: %d is outside the range %d to %d", nv, p.min, p.max)
	}
	p.value = nv
	p.crit.Unlock()

	return p.run(nv)
}

// Get returns the value as an int.
func (p *Int) Get() Value {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.value
}

// Reset sets the value to zero, or to the bottom of the range if zero is
// outside it.
func (p *Int) Reset() error {
	p.crit.RLock()
	v := 0
	if p.ranged && (v < p.min || v > p.max) {
		v = p.min
	}
	p.crit.RUnlock()
	return p.Set(v)
}
