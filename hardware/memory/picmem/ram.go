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

package picmem

import (
	"fmt"
	"math/rand"

	"github.com/jetsetilly/soundboard/curated"
)

// RAMError is the pattern used for errors returned by RAM.
const RAMError = "ram: %v"

// RAM is the general purpose register file of a PIC. It implements the
// picbus.DataMemory interface.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Size
// should be one more than the RAM mask of the PIC variant.
func NewRAM(size int) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Randomise fills the RAM with values from the random source. The register
// file of a real PIC powers up in an unknown state.
func (r *RAM) Randomise(src *rand.Rand) {
	for i := range r.data {
		r.data[i] = uint8(src.Intn(0x100))
	}
}

// Read implements the picbus.DataMemory interface.
func (r *RAM) Read(address uint8) (uint8, error) {
	if int(address) >= len(r.data) {
		return 0, curated.Errorf(RAMError, fmt.Sprintf("read address out of range (%#02x)", address))
	}
	return r.data[address], nil
}

// Write implements the picbus.DataMemory interface.
func (r *RAM) Write(address uint8, data uint8) error {
	if int(address) >= len(r.data) {
		return curated.Errorf(RAMError, fmt.Sprintf("write address out of range (%#02x)", address))
	}
	r.data[address] = data
	return nil
}

// Peek returns the RAM contents as a slice. The slice should not be modified.
func (r *RAM) Peek() []uint8 {
	return r.data
}

// Restore copies data into the RAM. Used when plumbing in a snapshot.
func (r *RAM) Restore(data []uint8) {
	copy(r.data, data)
}
