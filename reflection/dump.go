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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/soundboard/hardware/board"
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x/registers"
	"github.com/jetsetilly/soundboard/hardware/sound/okim6295"
)

// MCU is the part of the MCU state included in the dump.
type MCU struct {
	Variant    string
	W          uint8
	PC         uint16
	PrevPC     uint16
	Stack      [2]uint16
	Status     registers.Status
	Option     registers.Option
	Config     registers.Config
	WDT        int
	ResetCause pic16c5x.ResetCause
	LastResult string
	Cycles     uint64
}

// View is the structure handed to memviz.
type View struct {
	MCU            *MCU
	RAM            []uint8
	Voices         *[okim6295.NumVoices]okim6295.Voice
	OKIStatus      uint8
	CommandPending bool
}

// NewView creates a View of the board. The view is built from a snapshot and
// does not change as the board continues to run.
func NewView(brd *board.Board) *View {
	st := brd.Snapshot()
	return &View{
		MCU: &MCU{
			Variant:    st.MCU.Variant().String(),
			W:          st.MCU.W,
			PC:         st.MCU.PC,
			PrevPC:     st.MCU.PrevPC,
			Stack:      st.MCU.Stack,
			Status:     st.MCU.Status,
			Option:     st.MCU.Option,
			Config:     st.MCU.Config,
			WDT:        st.MCU.WDT,
			ResetCause: st.MCU.ResetCause,
			LastResult: st.MCU.LastResult.String(),
			Cycles:     st.MCU.Cycles,
		},
		RAM:            st.RAM,
		Voices:         &st.OKI.Voices,
		OKIStatus:      st.OKI.ReadStatus(),
		CommandPending: brd.CommandPending,
	}
}

// Dump writes a DOT graph of the board's state to output.
func Dump(output io.Writer, brd *board.Board) {
	memviz.Map(output, NewView(brd))
}
