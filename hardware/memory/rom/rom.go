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

// Package rom provides read-only sample memory for the sound chips. All reads
// wrap modulo the size of the ROM, in the same way that unconnected high
// address lines wrap on a real board.
package rom

// Reader is the interface used by the sound chips to read sample data.
type Reader interface {
	Read(offset uint32) uint8
	Size() int
}

// ROM is a byte slice that implements the Reader interface.
type ROM struct {
	data []byte
}

// NewROM is the preferred method of initialisation for the ROM type. The data
// is not copied.
func NewROM(data []byte) *ROM {
	return &ROM{data: data}
}

// Read implements the Reader interface. An empty ROM reads as zero.
func (r *ROM) Read(offset uint32) uint8 {
	if len(r.data) == 0 {
		return 0
	}
	return r.data[offset%uint32(len(r.data))]
}

// Size implements the Reader interface.
func (r *ROM) Size() int {
	return len(r.data)
}

// Data returns the underlying byte slice.
func (r *ROM) Data() []byte {
	return r.data
}
