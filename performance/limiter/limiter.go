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

// Package limiter is used to restrict the speed of the emulation to that of
// the real hardware. The emulation calls Wait() at regular intervals and the
// limiter blocks until the next tick.
package limiter

import (
	"time"
)

// Limiter ticks at a regular rate.
type Limiter struct {
	ticksPerSecond int
	interval       time.Duration

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less means a single tick per second.
func NewLimiter(ticksPerSecond int) *Limiter {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}

	lim := &Limiter{
		ticksPerSecond: ticksPerSecond,
		interval:       time.Second / time.Duration(ticksPerSecond),
		tick:           make(chan bool),
		quit:           make(chan bool),
	}

	go func() {
		// sleep duration is adjusted to account for the time spent outside
		// of the sleep
		adjusted := lim.interval
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			if adjusted > 0 {
				time.Sleep(adjusted)
			}
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.interval
			t = nt
		}
	}()

	return lim
}

// Rate returns the number of ticks per second.
func (lim *Limiter) Rate() int {
	return lim.ticksPerSecond
}

// Wait blocks until the next tick.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if a tick was pending. It never blocks.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	close(lim.quit)
}
