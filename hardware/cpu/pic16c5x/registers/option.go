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

import (
	"fmt"
)

// bits of the OPTION register.
const (
	OptionT0CS = 0x20
	OptionT0SE = 0x10
	OptionPSA  = 0x08
	OptionPS   = 0x07
)

// OptionReset is the value of the OPTION register after any reset.
const OptionReset = 0x3f

// Option is the OPTION register of the PIC16C5x. It is written only by the
// OPTION instruction and cannot be read by the program.
type Option struct {
	// timer0 clock source. true if the timer counts edges on the RTCC pin,
	// false if it counts instruction cycles
	T0CS bool

	// timer0 source edge. true to count falling edges on the RTCC pin
	T0SE bool

	// prescaler assignment. true if the prescaler is assigned to the
	// watchdog timer, false if it is assigned to timer0
	PSA bool

	// prescaler rate select
	PS uint8
}

// Label returns the canonical name for the option register.
func (op Option) Label() string {
	return "OPTION"
}

func (op Option) String() string {
	src := "int"
	if op.T0CS {
		src = "rtcc"
		if op.T0SE {
			src = "rtcc-"
		} else {
			src = "rtcc+"
		}
	}
	if op.PSA {
		return fmt.Sprintf("t0=%s wdt=1:%d", src, op.WatchdogPostscale())
	}
	return fmt.Sprintf("t0=%s 1:%d", src, op.TimerPrescale())
}

// Value returns the 6 bit value of the register.
func (op Option) Value() uint8 {
	v := op.PS & OptionPS
	if op.T0CS {
		v |= OptionT0CS
	}
	if op.T0SE {
		v |= OptionT0SE
	}
	if op.PSA {
		v |= OptionPSA
	}
	return v
}

// FromValue sets the register from the lower 6 bits of an 8 bit value.
func (op *Option) FromValue(v uint8) {
	op.T0CS = v&OptionT0CS == OptionT0CS
	op.T0SE = v&OptionT0SE == OptionT0SE
	op.PSA = v&OptionPSA == OptionPSA
	op.PS = v & OptionPS
}

// TimerPrescale is the prescaler ratio when the prescaler is assigned to
// timer0. Between 2 and 256.
func (op Option) TimerPrescale() int {
	return 2 << op.PS
}

// WatchdogPostscale is the postscaler ratio when the prescaler is assigned to
// the watchdog. Between 1 and 128.
func (op Option) WatchdogPostscale() int {
	return 1 << op.PS
}
