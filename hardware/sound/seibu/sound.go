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

package seibu

import (
	"fmt"

	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/irq"
	"github.com/jetsetilly/soundboard/hardware/latch"
	"github.com/jetsetilly/soundboard/logger"
)

// interrupt vectors presented to the Z80 by each source.
const (
	VectorRST10 = uint8(0xd7)
	VectorRST18 = uint8(0xdf)
)

// interrupt sources in the arbiter.
const (
	sourceRST10 = iota
	sourceRST18
)

// FM is implemented by the FM chip attached to the sound CPU.
type FM interface {
	Read(offset int) uint8
	Write(offset int, data uint8)
}

// Sound is the Seibu sound system interface.
type Sound struct {
	env *environment.Environment
	arb *irq.Arbiter
	fm  FM

	Main2Sub [2]uint8
	Sub2Main [2]uint8
	Pending  latch.Pending

	// selected bank of the sound CPU's program ROM
	Bank int

	// coin counters
	Coins     [2]int
	coinState uint8
}

// NewSound is the preferred method of initialisation for the Sound type. The
// target receives the combined interrupt request on line zero. The FM chip
// can be nil.
func NewSound(env *environment.Environment, target irq.InputLine, fm FM) *Sound {
	return &Sound{
		env: env,
		arb: irq.NewArbiter(env, target, 0, VectorRST10, VectorRST18),
		fm:  fm,
	}
}

func (snd *Sound) String() string {
	return fmt.Sprintf("m2s=%02x%02x s2m=%02x%02x %s irq=[%s]",
		snd.Main2Sub[1], snd.Main2Sub[0], snd.Sub2Main[1], snd.Sub2Main[0],
		snd.Pending, snd.arb)
}

// Reset clears both interrupt requests. The latches are unchanged.
func (snd *Sound) Reset() {
	snd.arb.Reset()
}

// Vector returns the vector that is currently presented to the sound CPU.
func (snd *Sound) Vector() uint8 {
	return snd.arb.Vector()
}

// IRQAsserted returns true if the sound CPU's interrupt line is asserted.
func (snd *Sound) IRQAsserted() bool {
	return snd.arb.Asserted()
}

// FMIRQ is connected to the interrupt output of the FM chip.
func (snd *Sound) FMIRQ(state bool) {
	snd.arb.SetSourceState(sourceRST10, state)
}

// IRQClear is written by the sound CPU. It does nothing. Clearing both
// interrupts here breaks the games that use it.
func (snd *Sound) IRQClear() {
}

// RST10Ack is written by the sound CPU. The FM interrupt is cleared by the FM
// chip so there is nothing to do.
func (snd *Sound) RST10Ack() {
}

// RST18Ack is written by the sound CPU to acknowledge the main CPU interrupt.
func (snd *Sound) RST18Ack() {
	snd.arb.SetSourceState(sourceRST18, false)
}

// BankWrite selects the bank of the sound CPU's program ROM.
func (snd *Sound) BankWrite(data uint8) {
	snd.Bank = int(data & 0x01)
}

// CoinWrite drives the two coin counters. A counter advances when its bit
// goes high.
func (snd *Sound) CoinWrite(data uint8) {
	rising := data &^ snd.coinState
	for i := range snd.Coins {
		if rising&(1<<i) != 0 {
			snd.Coins[i]++
		}
	}
	snd.coinState = data & 0x03
}

// FMRead reads from the FM chip.
func (snd *Sound) FMRead(offset int) uint8 {
	if snd.fm == nil {
		return 0
	}
	return snd.fm.Read(offset)
}

// FMWrite writes to the FM chip.
func (snd *Sound) FMWrite(offset int, data uint8) {
	if snd.fm == nil {
		return
	}
	snd.fm.Write(offset, data)
}

// SoundLatchRead is the sound CPU reading the command from the main CPU.
func (snd *Sound) SoundLatchRead(offset int) uint8 {
	return snd.Main2Sub[offset&0x01]
}

// MainDataPendingRead is the sound CPU reading the sub to main pending flag.
func (snd *Sound) MainDataPendingRead() uint8 {
	return snd.Pending.SubToMainValue()
}

// MainDataWrite is the sound CPU writing a reply for the main CPU.
func (snd *Sound) MainDataWrite(offset int, data uint8) {
	snd.Sub2Main[offset&0x01] = data
}

// PendingWrite is the sound CPU announcing that its reply is ready.
func (snd *Sound) PendingWrite() {
	snd.Pending.SubWrote()
}

// MainWordRead is a read by the main CPU of one of the 16 bit registers.
// Unmapped registers read as 0xffff.
func (snd *Sound) MainWordRead(offset int) uint16 {
	switch offset {
	case 2, 3:
		return uint16(snd.Sub2Main[offset-2])
	case 5:
		return uint16(snd.Pending.MainToSubValue())
	}
	return 0xffff
}

// MainWordWrite is a write by the main CPU to one of the 16 bit registers.
// Only the low byte is used.
func (snd *Sound) MainWordWrite(offset int, data uint16) {
	switch offset {
	case 0, 1:
		snd.Main2Sub[offset] = uint8(data)
	case 4:
		snd.arb.SetSourceState(sourceRST18, true)
	case 2, 6:
		snd.Pending.MainWrote()
	default:
		logger.Logf(snd.env, "seibu", "unmapped main word write (%d, %04x)", offset, data)
	}
}

// MainMustbWrite is used by boards that write both bytes of the command at
// once. The mask selects which bytes of the data are used. The sound CPU is
// always interrupted.
func (snd *Sound) MainMustbWrite(data uint16, mask uint16) {
	if mask&0x00ff != 0 {
		snd.Main2Sub[0] = uint8(data)
	}
	if mask&0xff00 != 0 {
		snd.Main2Sub[1] = uint8(data >> 8)
	}
	snd.arb.SetSourceState(sourceRST18, true)
}
