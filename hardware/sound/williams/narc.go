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
	"github.com/jetsetilly/soundboard/logger"
)

// CPUClock is the frequency of the 6809 instruction clock on the NARC and
// ADPCM boards.
const CPUClock = 2000000

// a sync bit is held for the duration of a 74LS123 pulse with R=180K and
// C=1uF. 0.28 * R * C is 50.4ms.
const syncPulse = CPUClock * 504 / 10000

// sync bits.
const (
	SyncMaster = 0x01
	SyncSlave  = 0x02
)

// bits of a command written by the main board.
const (
	commandNoNMI = 0x100
	commandNoIRQ = 0x200
)

// NARC represents the latches of the NARC sound board.
type NARC struct {
	env *environment.Environment

	master      latch.Target
	Command     *latch.Command
	Command2    *latch.Command
	NMIAsserted bool

	Talkback uint8
	Sync     uint8

	// the number of cycles remaining before each sync bit is cleared
	syncTimer [2]int

	// banks selected by the master and slave CPUs
	MasterBank int
	SlaveBank  int
}

// NewNARC is the preferred method of initialisation for the NARC type. The
// master and slave arguments receive the interrupt lines of the two CPUs and
// can be nil.
func NewNARC(env *environment.Environment, master latch.Target, slave latch.Target) *NARC {
	return &NARC{
		env:      env,
		master:   master,
		Command:  latch.NewCommand(master, latch.IRQ),
		Command2: latch.NewCommand(slave, latch.FIRQ),
	}
}

func (narc *NARC) String() string {
	return fmt.Sprintf("cmd=%s cmd2=%s talkback=%02x sync=%d%d", narc.Command, narc.Command2,
		narc.Talkback, narc.Sync&SyncSlave>>1, narc.Sync&SyncMaster)
}

// Reset clears the interrupt lines of both CPUs and selects bank zero.
func (narc *NARC) Reset() {
	narc.Command.Reset()
	narc.Command2.Reset()
	narc.setNMI(false)
	narc.MasterBank = 0
	narc.SlaveBank = 0
}

// Read returns the talkback register with the sync bits in bits 8 and 9.
func (narc *NARC) Read() uint16 {
	return uint16(narc.Talkback) | uint16(narc.Sync)<<8
}

// Write is a command from the main board. The NMI follows bit 8 (low is
// asserted) and the IRQ is asserted if bit 9 is low.
func (narc *NARC) Write(data uint16) {
	if data&commandNoIRQ == 0 {
		narc.Command.Write(uint8(data))
	} else {
		narc.Command.Latch(uint8(data))
	}
	narc.setNMI(data&commandNoNMI == 0)
}

func (narc *NARC) setNMI(asserted bool) {
	narc.NMIAsserted = asserted
	if narc.master != nil {
		narc.master.SetInputLine(latch.NMI, asserted)
	}
}

// CommandRead is the master CPU reading the command. The IRQ is cleared.
func (narc *NARC) CommandRead() uint8 {
	return narc.Command.Read()
}

// Command2Write is the master CPU writing a command for the slave CPU.
func (narc *NARC) Command2Write(data uint8) {
	narc.Command2.Write(data)
}

// Command2Read is the slave CPU reading the command. The FIRQ is cleared.
func (narc *NARC) Command2Read() uint8 {
	return narc.Command2.Read()
}

// MasterBankSelect selects one of the sixteen banks of the master CPU's ROM.
func (narc *NARC) MasterBankSelect(data uint8) {
	narc.MasterBank = int(data & 0x0f)
}

// SlaveBankSelect selects one of the sixteen banks of the slave CPU's ROM.
func (narc *NARC) SlaveBankSelect(data uint8) {
	narc.SlaveBank = int(data & 0x0f)
}

// BankOffset returns the offset into the banked region of a CPU's ROM for the
// bank number. D0 is A15, D1 and D2 select the ROM and D3 is A16.
func BankOffset(bank int) int {
	return 0x8000*(bank&1) + 0x10000*((bank>>3)&1) + 0x20000*((bank>>1)&3)
}

// MasterTalkbackWrite sets the talkback register.
func (narc *NARC) MasterTalkbackWrite(data uint8) {
	narc.Talkback = data
	logger.Logf(narc.env, "narc", "master talkback = %02x", data)
}

// SlaveTalkbackWrite is not connected to the talkback register.
func (narc *NARC) SlaveTalkbackWrite(data uint8) {
	logger.Logf(narc.env, "narc", "slave talkback = %02x", data)
}

// MasterSyncWrite sets the master sync bit. The bit clears itself after the
// sync pulse.
func (narc *NARC) MasterSyncWrite() {
	narc.sync(SyncMaster)
}

// SlaveSyncWrite sets the slave sync bit. The bit clears itself after the
// sync pulse.
func (narc *NARC) SlaveSyncWrite() {
	narc.sync(SyncSlave)
}

func (narc *NARC) sync(bit uint8) {
	narc.Sync |= bit
	narc.syncTimer[bit>>1] = syncPulse
}

// Tick advances time by the number of CPU cycles.
func (narc *NARC) Tick(cycles int) {
	for i := range narc.syncTimer {
		if narc.syncTimer[i] <= 0 {
			continue
		}
		narc.syncTimer[i] -= cycles
		if narc.syncTimer[i] <= 0 {
			narc.syncTimer[i] = 0
			narc.Sync &^= 1 << i
		}
	}
}
