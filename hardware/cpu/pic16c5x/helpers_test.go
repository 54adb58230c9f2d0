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
	"fmt"
	"testing"

	"github.com/jetsetilly/soundboard/hardware/cpu/pic16c5x"
	"github.com/jetsetilly/soundboard/hardware/memory/picbus"
)

type mockProgram struct {
	words []uint16
}

func (mem *mockProgram) ReadOpcode(address uint16) (uint16, error) {
	if int(address) >= len(mem.words) {
		return 0, fmt.Errorf("address out of range (%03x)", address)
	}
	return mem.words[address], nil
}

func (mem *mockProgram) putInstructions(origin uint16, opcodes ...uint16) uint16 {
	for i, op := range opcodes {
		mem.words[int(origin)+i] = op
	}
	return origin + uint16(len(opcodes))
}

type mockRAM struct {
	data []uint8
}

func (mem *mockRAM) Read(address uint8) (uint8, error) {
	if int(address) >= len(mem.data) {
		return 0, fmt.Errorf("address out of range (%02x)", address)
	}
	return mem.data[address], nil
}

func (mem *mockRAM) Write(address uint8, data uint8) error {
	if int(address) >= len(mem.data) {
		return fmt.Errorf("address out of range (%02x)", address)
	}
	mem.data[address] = data
	return nil
}

func (mem *mockRAM) assert(t *testing.T, address uint8, value uint8) {
	t.Helper()
	if mem.data[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %02x)", mem.data[address], value, address)
	}
}

type portWrite struct {
	port picbus.Port
	data uint8
	mask uint8
}

type mockPorts struct {
	inputs [4]uint8
	writes []portWrite
}

func (p *mockPorts) ReadPort(port picbus.Port) uint8 {
	return p.inputs[port]
}

func (p *mockPorts) WritePort(port picbus.Port, data uint8, mask uint8) {
	p.writes = append(p.writes, portWrite{port: port, data: data, mask: mask})
}

func newTestCPU(t *testing.T, model string) (*pic16c5x.CPU, *mockProgram, *mockRAM, *mockPorts) {
	t.Helper()

	v, ok := pic16c5x.VariantByName(model)
	if !ok {
		t.Fatalf("unknown variant (%s)", model)
	}

	prog := &mockProgram{words: make([]uint16, v.ProgramSize())}
	ram := &mockRAM{data: make([]uint8, v.RAMSize())}
	ports := &mockPorts{}

	mc := pic16c5x.NewCPU(nil, v, prog, ram, ports)
	mc.Reset()
	mc.LoadPC(0)

	return mc, prog, ram, ports
}

// step executes a single instruction and returns the number of cycles it
// took.
func step(t *testing.T, mc *pic16c5x.CPU) int {
	t.Helper()
	return mc.ExecuteCycles(1)
}

func steps(t *testing.T, mc *pic16c5x.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		step(t, mc)
	}
}
