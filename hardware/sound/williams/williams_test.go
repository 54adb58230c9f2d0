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

package williams_test

import (
	"testing"

	"github.com/jetsetilly/soundboard/hardware/latch"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/sound/williams"
	"github.com/jetsetilly/soundboard/test"
)

type mock6809 struct {
	lines map[latch.Line]bool
}

func newMock6809() *mock6809 {
	return &mock6809{lines: make(map[latch.Line]bool)}
}

func (mc *mock6809) SetInputLine(line latch.Line, asserted bool) {
	mc.lines[line] = asserted
}

func TestNARCCommand(t *testing.T) {
	master := newMock6809()
	slave := newMock6809()
	narc := williams.NewNARC(nil, master, slave)

	// IRQ and NMI
	narc.Write(0x0042)
	test.ExpectEquality(t, master.lines[latch.IRQ], true)
	test.ExpectEquality(t, master.lines[latch.NMI], true)
	test.ExpectEquality(t, narc.CommandRead(), 0x42)
	test.ExpectEquality(t, master.lines[latch.IRQ], false)

	// NMI follows bit 8 on every write
	narc.Write(0x0143)
	test.ExpectEquality(t, master.lines[latch.NMI], false)
	test.ExpectEquality(t, master.lines[latch.IRQ], true)

	// no IRQ. the command is latched anyway
	narc.CommandRead()
	narc.Write(0x0344)
	test.ExpectEquality(t, master.lines[latch.IRQ], false)
	test.ExpectEquality(t, master.lines[latch.NMI], false)
	test.ExpectEquality(t, narc.CommandRead(), 0x44)

	// master to slave
	narc.Command2Write(0x99)
	test.ExpectEquality(t, slave.lines[latch.FIRQ], true)
	test.ExpectEquality(t, narc.Command2Read(), 0x99)
	test.ExpectEquality(t, slave.lines[latch.FIRQ], false)
}

func TestNARCSync(t *testing.T) {
	narc := williams.NewNARC(nil, nil, nil)
	narc.MasterTalkbackWrite(0x5a)
	test.ExpectEquality(t, narc.Read(), 0x005a)

	narc.MasterSyncWrite()
	test.ExpectEquality(t, narc.Read(), 0x015a)

	narc.Tick(50000)
	narc.SlaveSyncWrite()
	test.ExpectEquality(t, narc.Read(), 0x035a)
	test.ExpectEquality(t, narc.String(), "cmd=00 cmd2=00 talkback=5a sync=11")

	// master sync clears after 50.4ms
	narc.Tick(50800)
	test.ExpectEquality(t, narc.Read(), 0x025a)

	narc.Tick(50000)
	test.ExpectEquality(t, narc.Read(), 0x005a)

	// the slave talkback is not connected
	narc.SlaveTalkbackWrite(0x11)
	test.ExpectEquality(t, narc.Talkback, 0x5a)
}

func TestNARCReset(t *testing.T) {
	master := newMock6809()
	narc := williams.NewNARC(nil, master, nil)
	narc.Write(0x0000)
	narc.MasterBankSelect(0x1f)
	test.ExpectEquality(t, narc.MasterBank, 0x0f)

	narc.Reset()
	test.ExpectEquality(t, master.lines[latch.IRQ], false)
	test.ExpectEquality(t, master.lines[latch.NMI], false)
	test.ExpectEquality(t, narc.MasterBank, 0)
}

func TestBankOffset(t *testing.T) {
	test.ExpectEquality(t, williams.BankOffset(0), 0x00000)
	test.ExpectEquality(t, williams.BankOffset(1), 0x08000)
	test.ExpectEquality(t, williams.BankOffset(2), 0x20000)
	test.ExpectEquality(t, williams.BankOffset(8), 0x10000)
	test.ExpectEquality(t, williams.BankOffset(15), 0x78000)
}

func TestADPCMCommand(t *testing.T) {
	cpu := newMock6809()
	adp := williams.NewADPCM(nil, cpu, rom.NewROM(make([]byte, 0x100000)))

	adp.Write(0x0012)
	test.ExpectEquality(t, cpu.lines[latch.IRQ], true)
	test.ExpectEquality(t, adp.IRQRead(), true)

	// the CPU's line clears immediately. the main board sees the IRQ for a
	// further 10us
	test.ExpectEquality(t, adp.CommandRead(), 0x12)
	test.ExpectEquality(t, cpu.lines[latch.IRQ], false)
	test.ExpectEquality(t, adp.IRQRead(), true)
	adp.Tick(10)
	test.ExpectEquality(t, adp.IRQRead(), true)
	adp.Tick(10)
	test.ExpectEquality(t, adp.IRQRead(), false)

	adp.Write(0x0213)
	test.ExpectEquality(t, cpu.lines[latch.IRQ], false)
	test.ExpectEquality(t, adp.IRQRead(), false)
}

func TestADPCMIRQClearSurvivesCommand(t *testing.T) {
	cpu := newMock6809()
	adp := williams.NewADPCM(nil, cpu, rom.NewROM(make([]byte, 0x100000)))

	adp.Write(0x0001)
	adp.CommandRead()
	adp.Tick(10)

	// a second command arrives before the clear of the first has happened.
	// the clear still happens on time
	adp.Write(0x0002)
	test.ExpectEquality(t, cpu.lines[latch.IRQ], true)
	test.ExpectEquality(t, adp.IRQRead(), true)
	adp.Tick(10)
	test.ExpectEquality(t, adp.IRQRead(), false)
	test.ExpectEquality(t, cpu.lines[latch.IRQ], true)
}

func TestADPCMOKIBanking(t *testing.T) {
	data := make([]byte, 0x100000)

	// sample directory for sample zero in each of two banks
	data[0x00000+5] = 0x20
	data[0x20000+5] = 0x40

	// fixed upper half
	data[0x60000] = 0x77
	data[0x7ffff] = 0x88

	adp := williams.NewADPCM(nil, nil, rom.NewROM(data))
	test.ExpectEquality(t, adp.OKI.SampleRate(), 250000/132)

	adp.OKIBankSelect(3)
	adp.OKI.WriteCommand(0x80)
	adp.OKI.WriteCommand(0x10)
	test.ExpectEquality(t, adp.OKI.Voices[0].Count, 2*(0x20+1))

	adp.OKI.Reset()
	adp.OKIBankSelect(2)
	adp.OKI.WriteCommand(0x80)
	adp.OKI.WriteCommand(0x10)
	test.ExpectEquality(t, adp.OKI.Voices[0].Count, 2*(0x40+1))

	// the upper half of the address space does not change with the bank
	for _, b := range []uint8{0, 3, 7} {
		adp.OKIBankSelect(b)
		test.ExpectEquality(t, adp.OKIROM().Read(0x20000), uint8(0x77))
		test.ExpectEquality(t, adp.OKIROM().Read(0x3ffff), uint8(0x88))
	}

	// bank 4 is the top 128K of the 1MB ROM
	data[0xe0010] = 0x99
	adp.OKIBankSelect(4)
	test.ExpectEquality(t, adp.OKIROM().Read(0x10), uint8(0x99))
}
