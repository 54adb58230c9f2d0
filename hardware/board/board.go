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
	"fmt"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/memory/picbus"
	"github.com/jetsetilly/soundboard/hardware/memory/picmem"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/sound/okim6295"
)

// bits of port C.
const (
	portCCommandRead = 0x01
	portCOKIWrite    = 0x40
	portCOKIRead     = 0x80
)

// bit of port A.
const portACommandPending = 0x01

// Board is the container for the emulated components of the sound board.
type Board struct {
	env *environment.Environment

	MCU *pic16c5x.CPU
	RAM *picmem.RAM
	OKI *okim6295.OKIM6295

	program *picmem.ProgramROM

	// the command latch written by the main CPU and the pending line
	mainLatch      uint8
	CommandPending bool

	// the value of the command latch as seen by the MCU. the value is copied
	// from the main latch when the MCU starts to read it
	mcuLatch uint8

	// state of the MCU's port pins
	portA uint8
	portB uint8
	portC uint8

	// status of the OKIM6295 as last seen by the scheduler
	okiStatus uint8

	// writes to the OKIM6295 made by the MCU but not yet delivered
	okiQueue []uint8

	// MCU cycles per second and OKIM6295 samples per second
	mcuRate int
	okiRate int

	// fractional part of the number of samples due
	accumulator int

	// the number of MCU cycles in each quantum
	quantum int

	// samples generated by the most recent call to Step()
	buffer []int32
}

// NewBoard is the preferred method of initialisation for the Board type. The
// clocks and quantum size are taken from the environment's preferences.
func NewBoard(env *environment.Environment, variant pic16c5x.Variant, program *picmem.ProgramROM, samples rom.Reader) (*Board, error) {
	if program.Size() < variant.ProgramSize() {
		return nil, curated.Errorf("board: program is too small for %s (%d words)", variant, program.Size())
	}

	brd := &Board{
		env:     env,
		program: program,
		RAM:     picmem.NewRAM(variant.RAMSize()),
		OKI:     okim6295.NewOKIM6295FromPrefs(env, samples),
	}

	brd.MCU = pic16c5x.NewCPU(env, variant, program, brd.RAM, brd)
	brd.Reset()

	return brd, nil
}

func (brd *Board) String() string {
	return fmt.Sprintf("%s\n%s", brd.MCU, brd.OKI)
}

// Reset the board to its power-on state. Clock preferences are read again.
func (brd *Board) Reset() {
	brd.portA = 0xff
	brd.portB = 0xff
	brd.portC = 0xff
	brd.mainLatch = 0
	brd.mcuLatch = 0
	brd.CommandPending = false
	brd.okiQueue = brd.okiQueue[:0]
	brd.accumulator = 0

	brd.quantum = brd.env.Prefs.Quantum.Get().(int)
	brd.mcuRate = brd.env.Prefs.PICClock.Get().(int) / 4
	brd.OKI.SetClock(brd.env.Prefs.OKIClock.Get().(int))
	brd.OKI.SetPin7(brd.env.Prefs.OKIPin7.Get().(bool))
	brd.okiRate = brd.OKI.SampleRate()

	if brd.env.Prefs.RandomState.Get().(bool) {
		brd.RAM.Randomise(brd.env.Prefs.RandSrc)
	}

	brd.OKI.Reset()
	brd.okiStatus = brd.OKI.ReadStatus()
	brd.MCU.Reset()
}

// SampleRate returns the rate of the samples produced by Step().
func (brd *Board) SampleRate() int {
	return brd.okiRate
}

// MCURate returns the number of MCU instruction cycles per second.
func (brd *Board) MCURate() int {
	return brd.mcuRate
}

// Quantum returns the number of MCU cycles executed by each call to Step().
func (brd *Board) Quantum() int {
	return brd.quantum
}

// SendCommand is the main CPU writing to the command latch.
func (brd *Board) SendCommand(data uint8) {
	brd.mainLatch = data
	brd.CommandPending = true
}

// ReadPort implements the picbus.Ports interface.
func (brd *Board) ReadPort(port picbus.Port) uint8 {
	switch port {
	case picbus.PortA:
		if brd.CommandPending {
			return 0xf0 | portACommandPending
		}
		return 0xf0
	case picbus.PortB:
		if brd.portC&portCCommandRead == 0 {
			return brd.mcuLatch
		}
		if brd.portC&portCOKIRead == 0 {
			return brd.okiStatus
		}
		return 0xff
	case picbus.PortC:
		return brd.portC
	}
	return 0xff
}

// WritePort implements the picbus.Ports interface. Only the pins in the mask
// are driven by the MCU.
func (brd *Board) WritePort(port picbus.Port, data uint8, mask uint8) {
	switch port {
	case picbus.PortA:
		brd.portA = (brd.portA &^ mask) | (data & mask)
	case picbus.PortB:
		brd.portB = (brd.portB &^ mask) | (data & mask)
	case picbus.PortC:
		prev := brd.portC
		brd.portC = (brd.portC &^ mask) | (data & mask)

		falling := prev &^ brd.portC
		rising := brd.portC &^ prev

		if falling&portCCommandRead != 0 {
			brd.mcuLatch = brd.mainLatch
			brd.CommandPending = false
		}
		if rising&portCOKIWrite != 0 {
			brd.okiQueue = append(brd.okiQueue, brd.portB)
		}
	}
}
