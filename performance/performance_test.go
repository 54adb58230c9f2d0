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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/soundboard/performance"
	"github.com/jetsetilly/soundboard/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile("cpu,heap")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	rate, acc := performance.CalcRate(2000000, 2.0, 1000000)
	test.ExpectEquality(t, rate, 1000000.0)
	test.ExpectEquality(t, acc, 100.0)

	rate, acc = performance.CalcRate(500000, 1.0, 1000000)
	test.ExpectEquality(t, rate, 500000.0)
	test.ExpectEquality(t, acc, 50.0)

	rate, _ = performance.CalcRate(100, 0, 1000000)
	test.ExpectEquality(t, rate, 0.0)
}

func TestRunProfilerNone(t *testing.T) {
	called := false
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		called = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, called, true)
}
