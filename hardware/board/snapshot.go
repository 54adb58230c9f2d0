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

package board

import (
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/sound/okim6295"
)

// State stores the board sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	MCU *pic16c5x.CPU
	RAM []uint8
	OKI *okim6295.OKIM6295

	mainLatch      uint8
	commandPending bool
	mcuLatch       uint8
	portA          uint8
	portB          uint8
	portC          uint8
	okiStatus      uint8
	accumulator    int
}

// Snapshot the state of the board.
func (brd *Board) Snapshot() *State {
	return &State{
		MCU:            brd.MCU.Snapshot(),
		RAM:            append([]uint8{}, brd.RAM.Peek()...),
		OKI:            brd.OKI.Snapshot(),
		mainLatch:      brd.mainLatch,
		commandPending: brd.CommandPending,
		mcuLatch:       brd.mcuLatch,
		portA:          brd.portA,
		portB:          brd.portB,
		portC:          brd.portC,
		okiStatus:      brd.okiStatus,
		accumulator:    brd.accumulator,
	}
}

// Plumb a previously snapshotted state into the board. Writes to the
// OKIM6295 that have not been delivered are lost.
func (brd *Board) Plumb(state *State) {
	if state == nil {
		panic("board: cannot plumb in a nil state")
	}

	brd.MCU = state.MCU.Snapshot()
	brd.OKI = state.OKI.Snapshot()
	brd.RAM.Restore(state.RAM)

	brd.MCU.Plumb(brd.program, brd.RAM, brd)

	brd.mainLatch = state.mainLatch
	brd.CommandPending = state.commandPending
	brd.mcuLatch = state.mcuLatch
	brd.portA = state.portA
	brd.portB = state.portB
	brd.portC = state.portC
	brd.okiStatus = state.okiStatus
	brd.accumulator = state.accumulator
	brd.okiQueue = brd.okiQueue[:0]
}
