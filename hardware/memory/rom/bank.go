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

package rom

// OKIAddressSpace is the size of the address space seen by the OKIM6295. Sample
// ROMs larger than this are reached through a Bank.
const OKIAddressSpace = 0x40000

// Bank presents a fixed size window onto a larger Reader.
type Bank struct {
	rom    Reader
	window uint32
	base   uint32
	bank   int
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank(rom Reader, window uint32) *Bank {
	return &Bank{
		rom:    rom,
		window: window,
	}
}

// SetBank selects the window. Banks beyond the end of the ROM wrap.
func (b *Bank) SetBank(bank int) {
	b.bank = bank
	b.base = uint32(bank) * b.window
}

// GetBank returns the currently selected bank.
func (b *Bank) GetBank() int {
	return b.bank
}

// NumBanks returns the number of whole windows in the underlying ROM. Always
// at least one.
func (b *Bank) NumBanks() int {
	n := b.rom.Size() / int(b.window)
	if n == 0 {
		return 1
	}
	return n
}

// Read implements the Reader interface.
func (b *Bank) Read(offset uint32) uint8 {
	return b.rom.Read(b.base + offset%b.window)
}

// Size implements the Reader interface.
func (b *Bank) Size() int {
	return int(b.window)
}
