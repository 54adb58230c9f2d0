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

package pic16c5x

import (
	"github.com/jetsetilly/soundboard/hardware/memory/picbus"
	"github.com/jetsetilly/soundboard/logger"
)

// opcodes that are referred to by the execution loop.
const (
	opSLEEP  = 0x003
	opCLRWDT = 0x004
)

// the two return addresses are held in a two entry stack. a push discards the
// oldest entry and a pop duplicates it.
const stackMask = 0x7ff

func (mc *CPU) push(addr uint16) {
	mc.Stack[0] = mc.Stack[1]
	mc.Stack[1] = addr & stackMask
}

func (mc *CPU) pop() uint16 {
	addr := mc.Stack[1]
	mc.Stack[1] = mc.Stack[0]
	return addr
}

// storeResult writes the result of an operation to the file register or to W
// depending on the destination bit of the opcode.
func (mc *CPU) storeResult(addr uint8, data uint8) {
	if mc.opcode&0x20 == 0x20 {
		mc.writeRegister(addr, data)
	} else {
		mc.W = data
	}
}

// skip the next instruction. costs an extra cycle.
func (mc *CPU) skip() {
	mc.PC = (mc.PC + 1) & mc.variant.ProgramMask
	mc.pcl = uint8(mc.PC)
	mc.instCycles++
}

// literal value of the current opcode.
func (mc *CPU) literal() uint8 {
	return uint8(mc.opcode)
}

// bit number of the current opcode.
func (mc *CPU) bit() uint8 {
	return 1 << ((mc.opcode >> 5) & 0x07)
}

// carry and digit carry of an addition. the result is smaller than the
// original value if the addition overflowed.
func (mc *CPU) addFlags(old, result uint8) {
	mc.Status.Zero = result == 0
	mc.Status.Carry = old > result
	mc.Status.DigitCarry = old&0x0f > result&0x0f
}

// carry and digit carry of a subtraction. the flags are cleared on a borrow.
func (mc *CPU) subFlags(old, result uint8) {
	mc.Status.Zero = result == 0
	mc.Status.Carry = !(old < result)
	mc.Status.DigitCarry = !(old&0x0f < result&0x0f)
}

func (mc *CPU) illegal() {
	mc.IllegalOpcodes++
	logger.Logf(mc.env, "pic16c5x", "illegal opcode %03x at %03x", mc.opcode, mc.PrevPC)
}

func (mc *CPU) addwf() {
	addr := mc.fileAddress()
	old := mc.readRegister(addr)
	result := old + mc.W
	mc.storeResult(addr, result)
	mc.addFlags(old, result)
}

func (mc *CPU) andwf() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr) & mc.W
	mc.storeResult(addr, result)
	mc.Status.Zero = result == 0
}

func (mc *CPU) andlw() {
	mc.W &= mc.literal()
	mc.Status.Zero = mc.W == 0
}

func (mc *CPU) bcf() {
	addr := mc.fileAddress()
	mc.writeRegister(addr, mc.readRegister(addr)&^mc.bit())
}

func (mc *CPU) bsf() {
	addr := mc.fileAddress()
	mc.writeRegister(addr, mc.readRegister(addr)|mc.bit())
}

func (mc *CPU) btfsc() {
	if mc.readRegister(mc.fileAddress())&mc.bit() == 0 {
		mc.skip()
	}
}

func (mc *CPU) btfss() {
	if mc.readRegister(mc.fileAddress())&mc.bit() != 0 {
		mc.skip()
	}
}

// CALL can only reach the first half of a page.
func (mc *CPU) call() {
	mc.push(mc.PC)
	mc.PC = (mc.Status.Page() | uint16(mc.literal())) & 0x6ff & mc.variant.ProgramMask
	mc.pcl = uint8(mc.PC)
}

func (mc *CPU) clrw() {
	mc.W = 0
	mc.Status.Zero = true
}

func (mc *CPU) clrf() {
	mc.writeRegister(mc.fileAddress(), 0)
	mc.Status.Zero = true
}

func (mc *CPU) clrwdt() {
	mc.WDT = 0
	if mc.Option.PSA {
		mc.prescaler = 0
	}
	mc.Status.TO = true
	mc.Status.PD = true
}

func (mc *CPU) comf() {
	addr := mc.fileAddress()
	result := ^mc.readRegister(addr)
	mc.storeResult(addr, result)
	mc.Status.Zero = result == 0
}

func (mc *CPU) decf() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr) - 1
	mc.storeResult(addr, result)
	mc.Status.Zero = result == 0
}

func (mc *CPU) decfsz() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr) - 1
	mc.storeResult(addr, result)
	if result == 0 {
		mc.skip()
	}
}

func (mc *CPU) gotoop() {
	mc.PC = (mc.Status.Page() | (mc.opcode & 0x1ff)) & mc.variant.ProgramMask
	mc.pcl = uint8(mc.PC)
}

func (mc *CPU) incf() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr) + 1
	mc.storeResult(addr, result)
	mc.Status.Zero = result == 0
}

func (mc *CPU) incfsz() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr) + 1
	mc.storeResult(addr, result)
	if result == 0 {
		mc.skip()
	}
}

func (mc *CPU) iorlw() {
	mc.W |= mc.literal()
	mc.Status.Zero = mc.W == 0
}

func (mc *CPU) iorwf() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr) | mc.W
	mc.storeResult(addr, result)
	mc.Status.Zero = result == 0
}

func (mc *CPU) movf() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr)
	mc.storeResult(addr, result)
	mc.Status.Zero = result == 0
}

func (mc *CPU) movlw() {
	mc.W = mc.literal()
}

func (mc *CPU) movwf() {
	mc.writeRegister(mc.fileAddress(), mc.W)
}

func (mc *CPU) nop() {
}

func (mc *CPU) option() {
	mc.Option.FromValue(mc.W)
}

func (mc *CPU) retlw() {
	mc.W = mc.literal()
	mc.PC = mc.pop() & mc.variant.ProgramMask
	mc.pcl = uint8(mc.PC)
}

func (mc *CPU) rlf() {
	addr := mc.fileAddress()
	old := mc.readRegister(addr)
	result := old << 1
	if mc.Status.Carry {
		result |= 0x01
	}
	mc.Status.Carry = old&0x80 == 0x80
	mc.storeResult(addr, result)
}

func (mc *CPU) rrf() {
	addr := mc.fileAddress()
	old := mc.readRegister(addr)
	result := old >> 1
	if mc.Status.Carry {
		result |= 0x80
	}
	mc.Status.Carry = old&0x01 == 0x01
	mc.storeResult(addr, result)
}

func (mc *CPU) sleep() {
	if mc.Config.WatchdogEnabled() {
		mc.WDT = 0
		if mc.Option.PSA {
			mc.prescaler = 0
		}
	}
	mc.Status.TO = true
	mc.Status.PD = false
	mc.sleeping = true
}

func (mc *CPU) subwf() {
	addr := mc.fileAddress()
	old := mc.readRegister(addr)
	result := old - mc.W
	mc.storeResult(addr, result)
	mc.subFlags(old, result)
}

func (mc *CPU) swapf() {
	addr := mc.fileAddress()
	old := mc.readRegister(addr)
	mc.storeResult(addr, old<<4|old>>4)
}

// the TRIS registers are only written if the value has changed.
func (mc *CPU) tris() {
	switch mc.opcode & 0x07 {
	case regPORTA:
		if mc.trisA != mc.W {
			mc.trisA = mc.W | ^mc.variant.PortAMask
			mc.writePort(picbus.PortA, mc.trisA, mc.portA)
		}
	case regPORTB:
		if mc.trisB != mc.W {
			mc.trisB = mc.W
			mc.writePort(picbus.PortB, mc.trisB, mc.portB)
		}
	case regPORTC:
		if mc.trisC != mc.W {
			mc.trisC = mc.W
			mc.writePort(picbus.PortC, mc.trisC, mc.portC)
		}
	default:
		mc.illegal()
	}
}

func (mc *CPU) xorlw() {
	mc.W ^= mc.literal()
	mc.Status.Zero = mc.W == 0
}

func (mc *CPU) xorwf() {
	addr := mc.fileAddress()
	result := mc.readRegister(addr) ^ mc.W
	mc.storeResult(addr, result)
	mc.Status.Zero = result == 0
}
