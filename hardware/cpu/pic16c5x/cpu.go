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
	"fmt"

	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x/registers"
	"github.com/jetsetilly/soundboard/hardware/memory/picbus"
	"github.com/jetsetilly/soundboard/logger"
)

// InputLine identifies an input pin of the CPU that can be driven by the
// host with SetInput().
type InputLine int

// List of valid InputLine values.
const (
	// external clock input for timer0. also known as T0CKI
	RTCC InputLine = iota
)

// ResetCause records the reason for the most recent reset.
type ResetCause int

// List of valid ResetCause values.
const (
	PowerOn ResetCause = iota
	External
	Watchdog
	WatchdogWake
)

func (r ResetCause) String() string {
	switch r {
	case PowerOn:
		return "power-on"
	case External:
		return "external"
	case Watchdog:
		return "watchdog"
	case WatchdogWake:
		return "watchdog wake"
	}
	return "unknown"
}

// Result is a summary of the most recently executed instruction.
type Result struct {
	Address uint16
	Opcode  uint16
	Defn    *Definition
	Cycles  int
}

func (r Result) String() string {
	if r.Defn == nil {
		return ""
	}
	return fmt.Sprintf("%03x %03x %s", r.Address, r.Opcode, r.Defn.Mnemonic)
}

// CPU implements a member of the PIC16C5x family.
type CPU struct {
	env     *environment.Environment
	variant Variant

	prog  picbus.ProgramMemory
	data  picbus.DataMemory
	ports picbus.Ports

	W      uint8
	PC     uint16
	PrevPC uint16

	// stack[1] is the most recent return address
	Stack [2]uint16

	Status registers.Status
	Option registers.Option
	Config registers.Config

	// special function registers held by the CPU
	tmr0 uint8
	pcl  uint8
	fsr  uint8

	// TRIS registers and output latches of the ports
	trisA uint8
	trisB uint8
	trisC uint8
	portA uint8
	portB uint8
	portC uint8
	portD uint8

	// the opcode being executed
	opcode uint16

	// number of cycles taken by the current instruction
	instCycles int

	// watchdog counter and the shared prescaler
	WDT       int
	prescaler int

	// timer0 does not increment for two cycles after it is written to
	delayTimer int

	// state of the RTCC pin and whether an edge is waiting to be counted
	rtcc         bool
	countPending bool

	// the CPU is in power-down mode after a SLEEP instruction. only a reset
	// will wake it
	sleeping bool

	// the value given to SetConfig() and whether the first instruction has
	// been fetched. the CONFIG register is loaded from burnedConfig on reset
	burnedConfig registers.Config
	configLocked bool

	// the reason for the most recent reset
	ResetCause ResetCause

	// the most recently executed instruction
	LastResult Result

	// total number of instruction cycles since power-on
	Cycles uint64

	// number of illegal opcodes encountered since power-on
	IllegalOpcodes int
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// should be Reset() before use.
func NewCPU(env *environment.Environment, variant Variant, prog picbus.ProgramMemory, data picbus.DataMemory, ports picbus.Ports) *CPU {
	mc := &CPU{
		env:     env,
		variant: variant,
		prog:    prog,
		data:    data,
		ports:   ports,
	}
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The buses are
// shared with the copy.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb new buses into the CPU.
func (mc *CPU) Plumb(prog picbus.ProgramMemory, data picbus.DataMemory, ports picbus.Ports) {
	mc.prog = prog
	mc.data = data
	mc.ports = ports
}

// Variant returns the variant of the CPU.
func (mc *CPU) Variant() Variant {
	return mc.variant
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%03x W=%02x %s=%s FSR=%02x TMR0=%02x %s=%s STK=%03x,%03x",
		mc.PC, mc.W, mc.Status.Label(), mc.Status, mc.fsr, mc.tmr0,
		mc.Option.Label(), mc.Option, mc.Stack[1], mc.Stack[0])
}

// SetConfig sets the CONFIG word. The value takes effect immediately and
// survives future resets. Calls made after the first instruction has been
// fetched are ignored.
func (mc *CPU) SetConfig(data uint16) {
	if mc.configLocked {
		return
	}
	mc.burnedConfig = registers.Config(data & 0x0fff)
	mc.Config = mc.burnedConfig
}

// the part of reset common to all reset causes.
func (mc *CPU) resetRegisters() {
	mc.PC = mc.variant.ResetVector
	mc.pcl = uint8(mc.PC)
	mc.Config = mc.burnedConfig
	mc.trisA = 0xff
	mc.trisB = 0xff
	mc.trisC = 0xff
	mc.Option.FromValue(registers.OptionReset)
	mc.fsr |= ^mc.variant.RAMMask
	mc.Status.PA = 0
	mc.WDT = 0
	mc.prescaler = 0
	mc.delayTimer = 0
	mc.countPending = false
	mc.instCycles = 0
	mc.sleeping = false
}

// Reset the CPU to its power-on state.
func (mc *CPU) Reset() {
	mc.resetRegisters()
	mc.Status.TO = true
	mc.Status.PD = true
	mc.Stack = [2]uint16{}
	mc.LastResult = Result{}
	mc.ResetCause = PowerOn

	// the env check is because it's possible for NewCPU to be called with a
	// nil environment (test package)
	if mc.env != nil && mc.env.Prefs != nil && mc.env.Prefs.RandomState.Get().(bool) {
		rnd := mc.env.Prefs.RandSrc
		mc.W = uint8(rnd.Intn(0x100))
		mc.tmr0 = uint8(rnd.Intn(0x100))
		mc.fsr = uint8(rnd.Intn(0x100)) | ^mc.variant.RAMMask
		mc.Status.Zero = rnd.Intn(2) == 1
		mc.Status.DigitCarry = rnd.Intn(2) == 1
		mc.Status.Carry = rnd.Intn(2) == 1
	} else {
		mc.W = 0
		mc.tmr0 = 0
		mc.fsr = ^mc.variant.RAMMask
		mc.Status.Zero = false
		mc.Status.DigitCarry = false
		mc.Status.Carry = false
	}
}

// MasterClear resets the CPU through the MCLR pin. The PD bit records whether
// the CPU was sleeping at the time.
func (mc *CPU) MasterClear() {
	if mc.sleeping {
		mc.Status.TO = true
		mc.Status.PD = false
	}
	mc.resetRegisters()
	mc.ResetCause = External
}

// called when the watchdog times out.
func (mc *CPU) watchdogReset() {
	sleeping := mc.sleeping
	mc.resetRegisters()
	mc.Status.TO = false
	mc.Status.PD = !sleeping
	if sleeping {
		mc.ResetCause = WatchdogWake
	} else {
		mc.ResetCause = Watchdog
	}
	logger.Logf(mc.env, "pic16c5x", "%s reset", mc.ResetCause)
}

// LoadPC sets the program counter. The value is masked to the width of the
// program counter.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC = address & mc.variant.ProgramMask
	mc.pcl = uint8(mc.PC)
}

// SetInput sets the state of an input line. Only the RTCC line is supported.
// When timer0 is counting external edges, an edge of the selected polarity is
// counted at the start of the next instruction.
func (mc *CPU) SetInput(line InputLine, state bool) {
	switch line {
	case RTCC:
		if mc.Option.T0CS && state != mc.rtcc {
			if mc.Option.T0SE != state {
				mc.countPending = true
			}
		}
		mc.rtcc = state
	default:
		logger.Logf(mc.env, "pic16c5x", "unsupported input line (%d)", line)
	}
}

// Sleeping returns true if the CPU is in power-down mode.
func (mc *CPU) Sleeping() bool {
	return mc.sleeping
}

// ExecuteCycles runs the CPU for at least the number of instruction cycles
// specified. Instructions are not interrupted so the CPU may run for one cycle
// longer than requested. Returns the number of cycles run.
func (mc *CPU) ExecuteCycles(cycles int) int {
	budget := cycles

	for budget > 0 {
		if mc.Sleeping() {
			mc.instCycles = 1
			if mc.Config.WatchdogEnabled() {
				mc.updateWatchdog(1)
			}
		} else {
			if mc.countPending {
				mc.countPending = false
				mc.updateTimer(1)
			}

			mc.configLocked = true

			mc.PrevPC = mc.PC
			mc.opcode = mc.fetch(mc.PC)
			mc.PC = (mc.PC + 1) & mc.variant.ProgramMask
			mc.pcl = uint8(mc.PC)

			defn := decode(mc.opcode)
			mc.instCycles = defn.Cycles
			defn.execute(mc)

			if !mc.Option.T0CS {
				if mc.delayTimer > 0 {
					mc.delayTimer--
				} else {
					mc.updateTimer(mc.instCycles)
				}
			}

			// CLRWDT and SLEEP have already cleared the watchdog
			if mc.Config.WatchdogEnabled() && mc.opcode != opSLEEP && mc.opcode != opCLRWDT {
				mc.updateWatchdog(mc.instCycles)
			}

			mc.LastResult = Result{
				Address: mc.PrevPC,
				Opcode:  mc.opcode,
				Defn:    defn,
				Cycles:  mc.instCycles,
			}
		}

		// a watchdog reset clears instCycles. the cycle was still spent
		if mc.instCycles == 0 {
			mc.instCycles = 1
		}

		budget -= mc.instCycles
		mc.Cycles += uint64(mc.instCycles)
	}

	return cycles - budget
}

func (mc *CPU) fetch(address uint16) uint16 {
	op, err := mc.prog.ReadOpcode(address)
	if err != nil {
		logger.Logf(mc.env, "pic16c5x", "%v", err)
		return 0
	}
	return op & 0x0fff
}


// TRIS returns the value of the TRIS register for a port.
func (mc *CPU) TRIS(port picbus.Port) uint8 {
	switch port {
	case picbus.PortA:
		return mc.trisA
	case picbus.PortB:
		return mc.trisB
	case picbus.PortC:
		return mc.trisC
	}
	return 0x00
}
