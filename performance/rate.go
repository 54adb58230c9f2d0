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

// CalcRate returns the number of cycles executed per second and how that
// compares to the target rate as a percentage.
func CalcRate(cycles uint64, duration float64, target int) (rate float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(cycles) / duration
	if target > 0 {
		accuracy = 100 * rate / float64(target)
	}
	return rate, accuracy
}
