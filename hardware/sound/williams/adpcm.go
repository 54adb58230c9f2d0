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

package williams

import (
	"fmt"

	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/latch"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/sound/okim6295"
	"github.com/jetsetilly/soundboard/logger"
)

// the external IRQ state is held for 10us after the command is read.
const irqClearDelay = CPUClock / 100000

// the OKIM6295 on the ADPCM board is clocked at the CPU clock divided by
// eight.
const okiClockDivider = 8

// the lower half of the OKIM6295 address space is banked. the upper half is
// always the last 128K of the sample ROM.
const (
	okiBankWindow = 0x20000
	okiFixedBase  = 0x60000
)

// the sample ROM offset of each OKIM6295 bank. U12 is at 0x00000 and U13 is
// at 0x40000. every offset is a multiple of okiBankWindow.
var okiBankOffsets = [8]uint32{0x40000, 0x40000, 0x20000, 0x00000, 0xe0000, 0xc0000, 0xa0000, 0x80000}

// ADPCM represents the ADPCM sound board.
type ADPCM struct {
	env *environment.Environment

	Command  *latch.Command
	Talkback uint8

	// the IRQ state seen by the main board
	IRQState bool
	irqTimer int

	// bank of the CPU's program ROM
	Bank int

	OKI     *okim6295.OKIM6295
	okiROM  *okiROM
	OKIBank int
}

// okiROM is the address space of the OKIM6295 on the ADPCM board.
type okiROM struct {
	banked *rom.Bank
	fixed  *rom.Bank
}

func newOKIROM(samples rom.Reader) *okiROM {
	r := &okiROM{
		banked: rom.NewBank(samples, okiBankWindow),
		fixed:  rom.NewBank(samples, okiBankWindow),
	}
	r.fixed.SetBank(okiFixedBase / okiBankWindow)
	return r
}

func (r *okiROM) Read(offset uint32) uint8 {
	offset &= rom.OKIAddressSpace - 1
	if offset < okiBankWindow {
		return r.banked.Read(offset)
	}
	return r.fixed.Read(offset - okiBankWindow)
}

func (r *okiROM) Size() int {
	return rom.OKIAddressSpace
}

// NewADPCM is the preferred method of initialisation for the ADPCM type.
func NewADPCM(env *environment.Environment, cpu latch.Target, samples rom.Reader) *ADPCM {
	adp := &ADPCM{
		env:     env,
		Command: latch.NewCommand(cpu, latch.IRQ),
		okiROM:  newOKIROM(samples),
	}
	adp.OKI = okim6295.NewOKIM6295(env, adp.okiROM, CPUClock/okiClockDivider, true)
	adp.OKIBankSelect(0)
	return adp
}

func (adp *ADPCM) String() string {
	return fmt.Sprintf("cmd=%s talkback=%02x okibank=%d", adp.Command, adp.Talkback, adp.OKIBank)
}

// Reset clears the interrupt line and the OKIM6295.
func (adp *ADPCM) Reset() {
	adp.Command.Reset()
	adp.IRQState = false
	adp.irqTimer = 0
	adp.Bank = 0
	adp.OKI.Reset()
}

// Write is a command from the main board. The IRQ is asserted if bit 9 is
// low. A clear started by an earlier CommandRead() still happens.
func (adp *ADPCM) Write(data uint16) {
	if data&commandNoIRQ != 0 {
		adp.Command.Latch(uint8(data))
		return
	}
	adp.Command.Write(uint8(data))
	adp.IRQState = true
}

// IRQRead returns the IRQ state as seen by the main board.
func (adp *ADPCM) IRQRead() bool {
	return adp.IRQState
}

// CommandRead is the CPU reading the command. The CPU's IRQ line is cleared
// immediately but the state seen by the main board is held for a short time.
func (adp *ADPCM) CommandRead() uint8 {
	if adp.IRQState {
		adp.irqTimer = irqClearDelay
	}
	return adp.Command.Read()
}

// TalkbackWrite sets the talkback register.
func (adp *ADPCM) TalkbackWrite(data uint8) {
	adp.Talkback = data
	logger.Logf(adp.env, "adpcm", "talkback = %02x", data)
}

// BankSelect selects the bank of the CPU's program ROM.
func (adp *ADPCM) BankSelect(data uint8) {
	adp.Bank = int(data & 0x07)
}

// OKIBankSelect selects the bank of sample ROM seen in the lower half of the
// OKIM6295 address space.
func (adp *ADPCM) OKIBankSelect(data uint8) {
	adp.OKIBank = int(data & 0x07)
	adp.okiROM.banked.SetBank(int(okiBankOffsets[adp.OKIBank] / okiBankWindow))
}

// OKIROM returns the address space seen by the OKIM6295.
func (adp *ADPCM) OKIROM() rom.Reader {
	return adp.okiROM
}

// Tick advances time by the number of CPU cycles.
func (adp *ADPCM) Tick(cycles int) {
	if adp.irqTimer <= 0 {
		return
	}
	adp.irqTimer -= cycles
	if adp.irqTimer <= 0 {
		adp.irqTimer = 0
		adp.IRQState = false
	}
}
