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

import "fmt"

// Limits of the decoded signal and the step index.
const (
	SignalMin = -2048
	SignalMax = 2047
	StepMin   = 0
	StepMax   = numSteps - 1
)

// InitialSignal is the value of the signal after Reset(). The MSM6295 starts
// decoding from a small negative bias rather than zero.
const InitialSignal = -2

// State of an ADPCM decoder.
type State struct {
	Signal int32
	Step   int32
}

func (s State) String() string {
	return fmt.Sprintf("signal=%d step=%d", s.Signal, s.Step)
}

// Reset the decoder to its initial state.
func (s *State) Reset() {
	s.ResetTo(InitialSignal)
}

// ResetTo resets the decoder with the signal set to the supplied value. For
// decoders that do not share the MSM6295 starting bias.
func (s *State) ResetTo(signal int32) {
	s.Signal = clamp(signal, SignalMin, SignalMax)
	s.Step = 0
}

// Clock decodes one nibble and returns the new signal. Only the lower four
// bits of the nibble are used.
func (s *State) Clock(nibble uint8) int16 {
	nibble &= 0x0f

	s.Signal = clamp(s.Signal+diffLookup[s.Step*16+int32(nibble)], SignalMin, SignalMax)
	s.Step = clamp(s.Step+indexShift[nibble&0x07], StepMin, StepMax)

	return int16(s.Signal)
}

func clamp(v, min, max int32) int32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
