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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/govern"
	"github.com/jetsetilly/soundboard/hardware/board"
	"github.com/jetsetilly/soundboard/performance/limiter"
)

var timedOut = errors.New("performance timed out")

// Leadtime is the period the board runs before measurement begins.
var Leadtime = 2 * time.Second

// the number of quanta between checks of the timer channel
const performanceBrake = 100

// Check the performance of the board. The board runs for the leadtime and
// then for the specified duration. If uncapped is false the board is limited
// to the speed of the real hardware.
func Check(output io.Writer, profile Profile, brd *board.Board, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var lim *limiter.Limiter
	if !uncapped {
		lim = limiter.NewLimiter(brd.MCURate() / brd.Quantum() / performanceBrake)
		defer lim.Stop()
	}

	startCycles := brd.MCU.Cycles

	runner := func() error {
		// signals false when the leadtime has elapsed and true at the end
		// of the measurement period
		timerChan := make(chan bool, 2)
		time.AfterFunc(Leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		brake := 0

		return brd.Run(func(_ []int32) (govern.State, error) {
			brake++
			if brake < performanceBrake {
				return govern.Running, nil
			}
			brake = 0

			if lim != nil {
				lim.Wait()
			}

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startCycles = brd.MCU.Cycles
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	cycles := brd.MCU.Cycles - startCycles
	rate, accuracy := CalcRate(cycles, dur.Seconds(), brd.MCURate())
	output.Write([]byte(fmt.Sprintf("%.0f cycles/s (%d cycles in %.2f seconds) %.1f%%\n", rate, cycles, dur.Seconds(), accuracy)))

	return nil
}
