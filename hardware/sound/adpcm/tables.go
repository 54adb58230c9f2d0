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

package adpcm

import "math"

// number of entries in the step table.
const numSteps = 49

// step index adjustment for the magnitude part of a nibble.
var indexShift = [8]int32{-1, -1, -1, -1, 2, 4, 6, 8}

// diffLookup is the signal difference for every step/nibble combination. It is
// indexed by step*16 + nibble.
var diffLookup = buildDiffLookup()

// the sign and three magnitude bits of each nibble.
var nibbleToBits = [16][4]int32{
	{1, 0, 0, 0}, {1, 0, 0, 1}, {1, 0, 1, 0}, {1, 0, 1, 1},
	{1, 1, 0, 0}, {1, 1, 0, 1}, {1, 1, 1, 0}, {1, 1, 1, 1},
	{-1, 0, 0, 0}, {-1, 0, 0, 1}, {-1, 0, 1, 0}, {-1, 0, 1, 1},
	{-1, 1, 0, 0}, {-1, 1, 0, 1}, {-1, 1, 1, 0}, {-1, 1, 1, 1},
}

func buildDiffLookup() [numSteps * 16]int32 {
	var t [numSteps * 16]int32

	for step := 0; step < numSteps; step++ {
		// the step value grows by 10% for each step index
		stepval := int32(math.Floor(16.0 * math.Pow(11.0/10.0, float64(step))))

		for nib := 0; nib < 16; nib++ {
			b := nibbleToBits[nib]
			t[step*16+nib] = b[0] * (stepval*b[1] +
				stepval/2*b[2] +
				stepval/4*b[3] +
				stepval/8)
		}
	}

	return t
}

// StepValue returns the step size for the step index. Exposed for tooling.
func StepValue(step int32) int32 {
	if step < 0 || step >= numSteps {
		return 0
	}
	return diffLookup[step*16+4] - diffLookup[step*16]
}
