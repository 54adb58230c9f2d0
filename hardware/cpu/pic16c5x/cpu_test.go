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

package pic16c5x_test

import (
	"testing"

	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/memory/picbus"
	"github.com/jetsetilly/soundboard/logger"
	"github.com/jetsetilly/soundboard/test"
)

func TestReset(t *testing.T) {
	mc, _, _, _ := newTestCPU(t, "16C57")
	mc.Reset()
	test.ExpectEquality(t, mc.PC, 0x7ff)
	test.ExpectEquality(t, mc.Status.TO, true)
	test.ExpectEquality(t, mc.Status.PD, true)
	test.ExpectEquality(t, mc.Status.PA, 0)
	test.ExpectEquality(t, mc.Option.Value(), 0x3f)
	test.ExpectEquality(t, mc.TRIS(picbus.PortB), 0xff)
	test.ExpectEquality(t, mc.ResetCause, pic16c5x.PowerOn)

	// unused bits of the FSR read as one
	test.ExpectEquality(t, mc.Peek(0x04), 0x80)

	mc, _, _, _ = newTestCPU(t, "16C54")
	mc.Reset()
	test.ExpectEquality(t, mc.PC, 0x1ff)
	test.ExpectEquality(t, mc.Peek(0x04), 0xe0)
}

func TestStackOverwrite(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0x000, 0x910) // CALL 0x10
	prog.putInstructions(0x010, 0x920) // CALL 0x20
	prog.putInstructions(0x011, 0x801) // RETLW 1
	prog.putInstructions(0x020, 0x930) // CALL 0x30
	prog.putInstructions(0x021, 0x802) // RETLW 2
	prog.putInstructions(0x030, 0x803) // RETLW 3

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC, 0x010)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x020)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x030)

	// the return address of the first CALL has been lost
	test.ExpectEquality(t, mc.Stack[0], 0x011)
	test.ExpectEquality(t, mc.Stack[1], 0x021)

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC, 0x021)
	test.ExpectEquality(t, mc.W, 3)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x011)
	test.ExpectEquality(t, mc.W, 2)

	// the third return uses the duplicated entry and returns to the second
	// CALL's return address again
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x011)
	test.ExpectEquality(t, mc.W, 1)
}

func TestSubtractBorrow(t *testing.T) {
	mc, prog, ram, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc10, // MOVLW 0x10
		0x028, // MOVWF 0x08
		0xc20, // MOVLW 0x20
		0x088, // SUBWF 0x08,W
		0xc05, // MOVLW 0x05
		0x088, // SUBWF 0x08,W
		0xc10, // MOVLW 0x10
		0x0a8, // SUBWF 0x08,F
	)

	steps(t, mc, 4)

	// 0x10 - 0x20 borrows. the carry flag is clear
	test.ExpectEquality(t, mc.W, 0xf0)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.DigitCarry, true)
	test.ExpectEquality(t, mc.Status.Zero, false)

	// 0x10 - 0x05 does not borrow but the lower nibble does
	steps(t, mc, 2)
	test.ExpectEquality(t, mc.W, 0x0b)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.DigitCarry, false)

	// result stored in the file register
	steps(t, mc, 2)
	ram.assert(t, 0x08, 0x00)
	test.ExpectEquality(t, mc.W, 0x10)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.DigitCarry, true)
	test.ExpectEquality(t, mc.Status.String(), "0TPZDC")
}

func TestAdd(t *testing.T) {
	mc, prog, ram, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xcff, // MOVLW 0xff
		0x029, // MOVWF 0x09
		0xc01, // MOVLW 0x01
		0x1e9, // ADDWF 0x09,F
		0xc0f, // MOVLW 0x0f
		0x1c9, // ADDWF 0x09,W
	)

	steps(t, mc, 4)
	ram.assert(t, 0x09, 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.DigitCarry, true)

	steps(t, mc, 2)
	test.ExpectEquality(t, mc.W, 0x0f)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.DigitCarry, false)
}

func TestLogic(t *testing.T) {
	mc, prog, ram, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc3c, // MOVLW 0x3c
		0x02a, // MOVWF 0x0a
		0xe0f, // ANDLW 0x0f
		0x1aa, // XORWF 0x0a,F
		0x24a, // COMF 0x0a,W
		0x38a, // SWAPF 0x0a,W
		0x040, // CLRW
		0xd00, // IORLW 0x00
	)

	steps(t, mc, 3)
	test.ExpectEquality(t, mc.W, 0x0c)
	step(t, mc)
	ram.assert(t, 0x0a, 0x30)
	step(t, mc)
	test.ExpectEquality(t, mc.W, 0xcf)
	step(t, mc)
	test.ExpectEquality(t, mc.W, 0x03)
	step(t, mc)
	test.ExpectEquality(t, mc.W, 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestRotate(t *testing.T) {
	mc, prog, ram, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc81, // MOVLW 0x81
		0x02b, // MOVWF 0x0b
		0x403, // BCF STATUS,C
		0x36b, // RLF 0x0b,F
		0x36b, // RLF 0x0b,F
		0x32b, // RRF 0x0b,F
	)

	steps(t, mc, 4)
	ram.assert(t, 0x0b, 0x02)
	test.ExpectEquality(t, mc.Status.Carry, true)
	step(t, mc)
	ram.assert(t, 0x0b, 0x05)
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc)
	ram.assert(t, 0x0b, 0x02)
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func TestSkips(t *testing.T) {
	mc, prog, ram, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0x06a, // CLRF 0x0a
		0x56a, // BSF 0x0a,3
		0x76a, // BTFSS 0x0a,3
		0xa00, // GOTO 0x000
		0x46a, // BCF 0x0a,3
		0x66a, // BTFSC 0x0a,3
		0xa00, // GOTO 0x000
		0x2ea, // DECFSZ 0x0a,F
		0x3ea, // INCFSZ 0x0a,F
		0xa00, // GOTO 0x000
	)

	steps(t, mc, 2)
	ram.assert(t, 0x0a, 0x08)

	// skipping takes an extra cycle
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC, 0x004)

	step(t, mc)
	ram.assert(t, 0x0a, 0x00)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC, 0x007)

	// decrement from zero does not skip
	test.ExpectEquality(t, step(t, mc), 1)
	ram.assert(t, 0x0a, 0xff)
	test.ExpectEquality(t, mc.PC, 0x008)

	// increment to zero does skip
	test.ExpectEquality(t, step(t, mc), 2)
	ram.assert(t, 0x0a, 0x00)
	test.ExpectEquality(t, mc.PC, 0x00a)
}

func TestIndirect(t *testing.T) {
	mc, prog, ram, _ := newTestCPU(t, "16C54")
	ram.data[0x11] = 0x77

	prog.putInstructions(0,
		0xc10, // MOVLW 0x10
		0x024, // MOVWF FSR
		0xc55, // MOVLW 0x55
		0x020, // MOVWF INDF
		0x2a4, // INCF FSR,F
		0x060, // CLRF INDF
		0x200, // MOVF INDF,W
	)

	steps(t, mc, 4)
	ram.assert(t, 0x10, 0x55)
	test.ExpectEquality(t, mc.Peek(0x04), 0xf0)

	steps(t, mc, 2)
	ram.assert(t, 0x11, 0x00)
	test.ExpectEquality(t, mc.Peek(0x04), 0xf1)

	step(t, mc)
	test.ExpectEquality(t, mc.W, 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestBanking(t *testing.T) {
	mc, prog, ram, _ := newTestCPU(t, "16C57")

	prog.putInstructions(0,
		0xc20, // MOVLW 0x20
		0x024, // MOVWF FSR
		0xcaa, // MOVLW 0xaa
		0x030, // MOVWF 0x10
		0xc00, // MOVLW 0x00
		0x024, // MOVWF FSR
		0xc55, // MOVLW 0x55
		0x030, // MOVWF 0x10
	)

	steps(t, mc, 8)
	ram.assert(t, 0x30, 0xaa)
	ram.assert(t, 0x10, 0x55)
	test.ExpectEquality(t, mc.Peek(0x30), 0xaa)
}

func TestPaging(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C57")

	prog.putInstructions(0,
		0x5a3, // BSF STATUS,PA0
		0xa10, // GOTO 0x010
	)
	prog.putInstructions(0x210,
		0x980, // CALL 0x080
	)

	steps(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x210)

	// CALL cannot reach the second half of a page
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x280)
	test.ExpectEquality(t, mc.Stack[1], 0x211)
}

func TestComputedGoto(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc04, // MOVLW 0x04
		0x1e2, // ADDWF PCL,F
	)

	steps(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x006)
}

func TestIllegal(t *testing.T) {
	logger.Clear()

	mc, prog, _, _ := newTestCPU(t, "16C54")
	prog.putInstructions(0,
		0xc42, // MOVLW 0x42
		0x001, // illegal
		0x008, // illegal
	)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 1)
	test.ExpectEquality(t, mc.PC, 0x002)
	test.ExpectEquality(t, mc.W, 0x42)
	test.ExpectEquality(t, mc.IllegalOpcodes, 1)

	tw := &test.CompareWriter{}
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("pic16c5x: illegal opcode 001 at 001\n"))

	step(t, mc)
	test.ExpectEquality(t, mc.IllegalOpcodes, 2)
}

func TestConfigLock(t *testing.T) {
	mc, _, _, _ := newTestCPU(t, "16C54")

	mc.SetConfig(0x004)
	mc.SetConfig(0x00c)
	test.ExpectEquality(t, mc.Config.WatchdogEnabled(), true)
	test.ExpectEquality(t, mc.Config.CodeProtect(), false)

	step(t, mc)

	// writes after the first fetch are ignored
	mc.SetConfig(0x000)
	test.ExpectEquality(t, mc.Config.WatchdogEnabled(), true)

	// and the config survives a reset
	mc.Reset()
	test.ExpectEquality(t, mc.Config.WatchdogEnabled(), true)
}

func TestTimerInternal(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc08, // MOVLW 0x08
		0x002, // OPTION
		0x061, // CLRF TMR0
		0x000, // NOP
		0x000, // NOP
		0x000, // NOP
		0x000, // NOP
	)

	steps(t, mc, 3)
	test.ExpectEquality(t, mc.TMR0(), 0)

	// the timer does not count for two cycles after a write
	steps(t, mc, 1)
	test.ExpectEquality(t, mc.TMR0(), 0)
	steps(t, mc, 1)
	test.ExpectEquality(t, mc.TMR0(), 1)
	steps(t, mc, 1)
	test.ExpectEquality(t, mc.TMR0(), 2)
}

func TestTimerPrescaler(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc00, // MOVLW 0x00
		0x002, // OPTION
		0x061, // CLRF TMR0
	)

	// CLRF and the remaining NOPs
	steps(t, mc, 3+6)
	test.ExpectEquality(t, mc.TMR0(), 2)
}

func TestRTCC(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc28, // MOVLW 0x28
		0x002, // OPTION
	)

	steps(t, mc, 2)
	test.ExpectEquality(t, mc.TMR0(), 0)

	// rising edges are counted
	mc.SetInput(pic16c5x.RTCC, true)
	step(t, mc)
	test.ExpectEquality(t, mc.TMR0(), 1)

	// no edge
	mc.SetInput(pic16c5x.RTCC, true)
	step(t, mc)
	test.ExpectEquality(t, mc.TMR0(), 1)

	// falling edge is not counted
	mc.SetInput(pic16c5x.RTCC, false)
	step(t, mc)
	test.ExpectEquality(t, mc.TMR0(), 1)

	mc.SetInput(pic16c5x.RTCC, true)
	step(t, mc)
	test.ExpectEquality(t, mc.TMR0(), 2)
}

func TestWatchdog(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")
	mc.SetConfig(0x004)

	prog.putInstructions(0,
		0xc08, // MOVLW 0x08
		0x002, // OPTION
		0xa02, // GOTO 0x002
	)

	mc.ExecuteCycles(17990)
	test.ExpectEquality(t, mc.ResetCause, pic16c5x.PowerOn)

	mc.ExecuteCycles(20)
	test.ExpectEquality(t, mc.ResetCause, pic16c5x.Watchdog)
	test.ExpectEquality(t, mc.Status.TO, false)
	test.ExpectEquality(t, mc.Status.PD, true)
}

func TestWatchdogCleared(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")
	mc.SetConfig(0x004)

	prog.putInstructions(0,
		0xc08, // MOVLW 0x08
		0x002, // OPTION
		0x004, // CLRWDT
		0xa02, // GOTO 0x002
	)

	mc.ExecuteCycles(40000)
	test.ExpectEquality(t, mc.ResetCause, pic16c5x.PowerOn)
	test.ExpectEquality(t, mc.Status.TO, true)
}

func TestWatchdogDisabled(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xa00, // GOTO 0x000
	)

	mc.ExecuteCycles(40000)
	test.ExpectEquality(t, mc.ResetCause, pic16c5x.PowerOn)
}

func TestSleep(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")
	mc.SetConfig(0x004)

	prog.putInstructions(0,
		0xc08, // MOVLW 0x08
		0x002, // OPTION
		0x003, // SLEEP
	)

	steps(t, mc, 3)
	test.ExpectEquality(t, mc.Sleeping(), true)
	test.ExpectEquality(t, mc.Status.PD, false)
	test.ExpectEquality(t, mc.Status.TO, true)
	test.ExpectEquality(t, mc.PC, 0x003)

	// nothing is executed while sleeping
	test.ExpectEquality(t, mc.ExecuteCycles(17999), 17999)
	test.ExpectEquality(t, mc.PC, 0x003)
	test.ExpectEquality(t, mc.Sleeping(), true)

	// the watchdog wakes the CPU with a reset
	mc.ExecuteCycles(1)
	test.ExpectEquality(t, mc.Sleeping(), false)
	test.ExpectEquality(t, mc.ResetCause, pic16c5x.WatchdogWake)
	test.ExpectEquality(t, mc.Status.TO, false)
	test.ExpectEquality(t, mc.Status.PD, false)
	test.ExpectEquality(t, mc.PC, 0x1ff)
}

func TestMasterClear(t *testing.T) {
	mc, prog, _, _ := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0x003, // SLEEP
	)

	step(t, mc)
	mc.MasterClear()
	test.ExpectEquality(t, mc.ResetCause, pic16c5x.External)
	test.ExpectEquality(t, mc.Sleeping(), false)
	test.ExpectEquality(t, mc.Status.TO, true)
	test.ExpectEquality(t, mc.Status.PD, false)
	test.ExpectEquality(t, mc.PC, 0x1ff)
}

func TestPorts(t *testing.T) {
	mc, prog, _, ports := newTestCPU(t, "16C55")
	ports.inputs[picbus.PortA] = 0xfc

	prog.putInstructions(0,
		0xc00, // MOVLW 0x00
		0x006, // TRIS PORTB
		0xca5, // MOVLW 0xa5
		0x026, // MOVWF PORTB
		0x205, // MOVF PORTA,W
	)

	steps(t, mc, 2)
	test.DemandEquality(t, len(ports.writes), 1)
	test.ExpectEquality(t, ports.writes[0], portWrite{port: picbus.PortB, data: 0x00, mask: 0xff})

	steps(t, mc, 2)
	test.DemandEquality(t, len(ports.writes), 2)
	test.ExpectEquality(t, ports.writes[1], portWrite{port: picbus.PortB, data: 0xa5, mask: 0xff})

	// port A is four bits wide
	step(t, mc)
	test.ExpectEquality(t, mc.W, 0x0c)
}

func TestPortMix(t *testing.T) {
	mc, prog, _, ports := newTestCPU(t, "16C55")
	ports.inputs[picbus.PortC] = 0xff

	prog.putInstructions(0,
		0xc00, // MOVLW 0x00
		0x027, // MOVWF PORTC
		0xc0f, // MOVLW 0x0f
		0x007, // TRIS PORTC
		0x207, // MOVF PORTC,W
	)

	steps(t, mc, 4)
	test.DemandEquality(t, len(ports.writes), 2)
	test.ExpectEquality(t, ports.writes[1], portWrite{port: picbus.PortC, data: 0x00, mask: 0xf0})

	// lower nibble is input and reads the external level. upper nibble is
	// output and reads the latch
	step(t, mc)
	test.ExpectEquality(t, mc.W, 0x0f)
}

func TestNoPortC(t *testing.T) {
	mc, prog, ram, ports := newTestCPU(t, "16C54")

	prog.putInstructions(0,
		0xc99, // MOVLW 0x99
		0x027, // MOVWF 0x07
	)

	steps(t, mc, 2)
	ram.assert(t, 0x07, 0x99)
	test.ExpectEquality(t, len(ports.writes), 0)
}

func TestLookup(t *testing.T) {
	test.ExpectEquality(t, pic16c5x.Lookup(0x1e9).Mnemonic, "ADDWF")
	test.ExpectEquality(t, pic16c5x.Lookup(0x040).Mnemonic, "CLRW")
	test.ExpectEquality(t, pic16c5x.Lookup(0x006).Mnemonic, "TRIS")
	test.ExpectEquality(t, pic16c5x.Lookup(0x001).Illegal, true)
	test.ExpectEquality(t, pic16c5x.Lookup(0x800).Cycles, 2)
	test.ExpectEquality(t, pic16c5x.Lookup(0xbff).Mnemonic, "GOTO")
	test.ExpectEquality(t, pic16c5x.Lookup(0xfff).Mnemonic, "XORLW")
}
