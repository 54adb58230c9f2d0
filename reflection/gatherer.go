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

package reflection

import (
	"github.com/jetsetilly/soundboard/hardware/board"
	"github.com/jetsetilly/soundboard/logger"
)

// DefaultHistory is the number of steps held by the gatherer before the
// renderer is called.
const DefaultHistory = 256

// Gatherer should be run (with the Step() function) after every call to
// board.Step().
type Gatherer struct {
	brd      *board.Board
	renderer Renderer

	// history of gathered reflections
	history []ReflectedStep

	// the next index to be used by Step()
	historyIdx int
}

// NewGatherer is the preferred method of initialisation for the Gatherer
// type.
func NewGatherer(brd *board.Board, history int) *Gatherer {
	if history <= 0 {
		history = DefaultHistory
	}
	return &Gatherer{
		brd:     brd,
		history: make([]ReflectedStep, history),
	}
}

// AddRenderer adds a renderer to the gatherer. Only one renderer is
// supported.
func (ref *Gatherer) AddRenderer(renderer Renderer) {
	ref.renderer = renderer
}

// Step records the state of the board. The samples argument should be the
// value returned by the most recent call to board.Step().
func (ref *Gatherer) Step(samples []int32) error {
	v := ReflectedStep{
		CPU:            ref.brd.MCU.LastResult,
		Cycles:         ref.brd.MCU.Cycles,
		Sleeping:       ref.brd.MCU.Sleeping(),
		CommandPending: ref.brd.CommandPending,
		OKIStatus:      ref.brd.OKI.ReadStatus(),
		Samples:        len(samples),
	}

	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > v.Peak {
			v.Peak = s
		}
	}

	ref.history[ref.historyIdx] = v
	ref.historyIdx++

	if ref.historyIdx >= len(ref.history) {
		return ref.Flush()
	}

	return nil
}

// Flush sends the gathered history to the renderer. The history is cleared
// whether or not there is a renderer.
func (ref *Gatherer) Flush() error {
	if ref.historyIdx == 0 {
		return nil
	}

	h := ref.history[:ref.historyIdx]
	ref.historyIdx = 0

	if ref.renderer == nil {
		return nil
	}

	if err := ref.renderer.Reflect(h); err != nil {
		logger.Log(logger.Allow, "reflection", err.Error())
		return err
	}

	return nil
}
