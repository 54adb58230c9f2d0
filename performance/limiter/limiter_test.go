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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/soundboard/performance/limiter"
	"github.com/jetsetilly/soundboard/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 100)

	start := time.Now()
	for i := 0; i < 11; i++ {
		lim.Wait()
	}

	// ten intervals of 10ms. allow a generous upper bound for slow machines
	el := time.Since(start)
	test.ExpectSuccess(t, el >= 80*time.Millisecond)
	test.ExpectSuccess(t, el < 2*time.Second)
}

func TestZeroRate(t *testing.T) {
	lim := limiter.NewLimiter(0)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 1)
}
