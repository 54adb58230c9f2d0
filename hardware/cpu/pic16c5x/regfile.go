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

// addresses of the special function registers.
const (
	regINDF   = 0x00
	regTMR0   = 0x01
	regPCL    = 0x02
	regSTATUS = 0x03
	regFSR    = 0x04
	regPORTA  = 0x05
	regPORTB  = 0x06
	regPORTC  = 0x07
	regPORTD  = 0x08
)

// fileAddress returns the file register addressed by the current opcode.
// register zero addresses indirectly through the FSR. on banked parts the FSR
// supplies the bank bits for direct addressing too. the lower sixteen
// registers of every bank are mirrors of bank zero.
func (mc *CPU) fileAddress() uint8 {
	addr := uint8(mc.opcode & 0x1f)
	if addr == regINDF {
		addr = mc.fsr & mc.variant.RAMMask
	}
	if mc.variant.Banked {
		addr |= mc.fsr & 0x60
	}
	if addr&0x10 == 0 {
		addr &= 0x0f
	}
	return addr
}

// readRegister returns the value of the file register. addr should be a
// value returned by fileAddress().
func (mc *CPU) readRegister(addr uint8) uint8 {
	switch addr {
	case regINDF:
		// indirect addressing through an FSR of zero
		return 0
	case regTMR0:
		return mc.tmr0
	case regPCL:
		return mc.pcl
	case regSTATUS:
		return mc.Status.Value()
	case regFSR:
		return mc.fsr | ^mc.variant.RAMMask
	case regPORTA:
		return mc.readPort(picbus.PortA, mc.trisA, mc.portA) & mc.variant.PortAMask
	case regPORTB:
		return mc.readPort(picbus.PortB, mc.trisB, mc.portB)
	case regPORTC:
		if mc.variant.HasPortC {
			return mc.readPort(picbus.PortC, mc.trisC, mc.portC)
		}
	case regPORTD:
		if mc.variant.HasPortD {
			return mc.readPort(picbus.PortD, 0xff, mc.portD)
		}
	}

	v, err := mc.data.Read(addr)
	if err != nil {
		logger.Logf(mc.env, "pic16c5x", "%v", err)
		return 0
	}
	return v
}

// writeRegister writes a value to the file register. addr should be a value
// returned by fileAddress().
func (mc *CPU) writeRegister(addr uint8, data uint8) {
	switch addr {
	case regINDF:
		// indirect addressing through an FSR of zero
		return
	case regTMR0:
		mc.tmr0 = data
		mc.delayTimer = 2
		if !mc.Option.PSA {
			mc.prescaler = 0
		}
		return
	case regPCL:
		mc.PC = (mc.Status.Page() | uint16(data)) & mc.variant.ProgramMask
		mc.pcl = data
		return
	case regSTATUS:
		mc.Status.Write(data)
		return
	case regFSR:
		mc.fsr = data | ^mc.variant.RAMMask
		return
	case regPORTA:
		mc.portA = data & mc.variant.PortAMask
		mc.writePort(picbus.PortA, mc.trisA, mc.portA)
		return
	case regPORTB:
		mc.portB = data
		mc.writePort(picbus.PortB, mc.trisB, mc.portB)
		return
	case regPORTC:
		if mc.variant.HasPortC {
			mc.portC = data
			mc.writePort(picbus.PortC, mc.trisC, mc.portC)
			return
		}
	case regPORTD:
		if mc.variant.HasPortD {
			mc.portD = data
			mc.writePort(picbus.PortD, 0x00, mc.portD)
			return
		}
	}

	err := mc.data.Write(addr, data)
	if err != nil {
		logger.Logf(mc.env, "pic16c5x", "%v", err)
	}
}

// readPort combines the external level of the pins with the output latch.
// pins that are inputs (TRIS bit set) return the external level.
func (mc *CPU) readPort(port picbus.Port, tris uint8, latch uint8) uint8 {
	ext := mc.ports.ReadPort(port)
	if mc.variant.OpenDrain {
		return ext & latch
	}
	return (ext & tris) | (latch &^ tris)
}

// writePort presents the output latch to the host. only pins that are outputs
// (TRIS bit clear) are driven.
func (mc *CPU) writePort(port picbus.Port, tris uint8, latch uint8) {
	if mc.variant.OpenDrain {
		mc.ports.WritePort(port, latch, 0xff)
		return
	}
	if port == picbus.PortA {
		tris |= ^mc.variant.PortAMask
	}
	mc.ports.WritePort(port, latch&^tris, ^tris)
}

// Peek returns the value of a file register without side effects. The address
// is a direct address, including bank bits on banked parts. Ports return the
// value of the output latch.
func (mc *CPU) Peek(address uint8) uint8 {
	address &= mc.variant.RAMMask
	if address&0x10 == 0 {
		address &= 0x0f
	}
	switch address {
	case regPORTA:
		return mc.portA
	case regPORTB:
		return mc.portB
	case regPORTC:
		if mc.variant.HasPortC {
			return mc.portC
		}
	case regPORTD:
		if mc.variant.HasPortD {
			return mc.portD
		}
	}
	if address <= regFSR {
		return mc.readRegister(address)
	}
	v, _ := mc.data.Read(address)
	return v
}
