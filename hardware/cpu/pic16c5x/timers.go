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

package pic16c5x

// the watchdog times out after 18ms, which is 18000 instruction cycles with a
// 4MHz oscillator.
const watchdogPeriod = 0x4650

// updateTimer advances timer0 by the number of counts, through the prescaler
// if it is assigned to the timer.
func (mc *CPU) updateTimer(counts int) {
	if mc.Option.PSA {
		mc.tmr0 += uint8(counts)
		return
	}

	mc.prescaler += counts
	scale := mc.Option.TimerPrescale()
	if mc.prescaler >= scale {
		mc.tmr0 += uint8(mc.prescaler / scale)
		mc.prescaler %= scale
	}
}

// updateWatchdog advances the watchdog. when the prescaler is assigned to the
// watchdog it acts as a postscaler on the timeout.
func (mc *CPU) updateWatchdog(counts int) {
	mc.WDT += counts
	if mc.WDT < watchdogPeriod {
		return
	}
	mc.WDT -= watchdogPeriod

	if mc.Option.PSA {
		mc.prescaler++
		if mc.prescaler < mc.Option.WatchdogPostscale() {
			return
		}
		mc.prescaler = 0
	}

	mc.watchdogReset()
}

// TMR0 returns the value of the timer0 register.
func (mc *CPU) TMR0() uint8 {
	return mc.tmr0
}
