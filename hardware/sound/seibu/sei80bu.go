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

package seibu

// bitswap8 rearranges the bits of v. The arguments name the source bit for
// each bit of the result, from bit 7 down to bit 0.
func bitswap8(v uint8, b7, b6, b5, b4, b3, b2, b1, b0 uint) uint8 {
	bit := func(n uint) uint8 {
		return (v >> n) & 0x01
	}
	return bit(b7)<<7 | bit(b6)<<6 | bit(b5)<<5 | bit(b4)<<4 |
		bit(b3)<<3 | bit(b2)<<2 | bit(b1)<<1 | bit(b0)
}

// address bit n as a 0 or 1.
func abit(a uint16, n uint) uint16 {
	return (a >> n) & 0x01
}

// DecryptData decrypts a byte read from the program ROM as data.
func DecryptData(a uint16, src uint8) uint8 {
	if abit(a, 9)&abit(a, 8) != 0 {
		src ^= 0x80
	}
	if abit(a, 11)&abit(a, 4)&abit(a, 1) != 0 {
		src ^= 0x40
	}
	if abit(a, 11)&^abit(a, 8)&abit(a, 1) != 0 {
		src ^= 0x04
	}
	if abit(a, 13)&^abit(a, 6)&abit(a, 4) != 0 {
		src ^= 0x02
	}
	if ^abit(a, 11)&abit(a, 9)&abit(a, 2) != 0 {
		src ^= 0x01
	}

	if abit(a, 13)&abit(a, 4) != 0 {
		src = bitswap8(src, 7, 6, 5, 4, 3, 2, 0, 1)
	}
	if abit(a, 8)&abit(a, 4) != 0 {
		src = bitswap8(src, 7, 6, 5, 4, 2, 3, 1, 0)
	}

	return src
}

// DecryptOpcode decrypts a byte read from the program ROM during an opcode
// fetch.
func DecryptOpcode(a uint16, src uint8) uint8 {
	if abit(a, 9)&abit(a, 8) != 0 {
		src ^= 0x80
	}
	if abit(a, 11)&abit(a, 4)&abit(a, 1) != 0 {
		src ^= 0x40
	}
	if ^abit(a, 13)&abit(a, 12) != 0 {
		src ^= 0x20
	}
	if ^abit(a, 6)&abit(a, 1) != 0 {
		src ^= 0x10
	}
	if ^abit(a, 12)&abit(a, 2) != 0 {
		src ^= 0x08
	}
	if abit(a, 11)&^abit(a, 8)&abit(a, 1) != 0 {
		src ^= 0x04
	}
	if abit(a, 13)&^abit(a, 6)&abit(a, 4) != 0 {
		src ^= 0x02
	}
	if ^abit(a, 11)&abit(a, 9)&abit(a, 2) != 0 {
		src ^= 0x01
	}

	if abit(a, 13)&abit(a, 4) != 0 {
		src = bitswap8(src, 7, 6, 5, 4, 3, 2, 0, 1)
	}
	if abit(a, 8)&abit(a, 4) != 0 {
		src = bitswap8(src, 7, 6, 5, 4, 2, 3, 1, 0)
	}
	if abit(a, 12)&abit(a, 9) != 0 {
		src = bitswap8(src, 7, 6, 4, 5, 3, 2, 1, 0)
	}
	if abit(a, 11)&^abit(a, 6) != 0 {
		src = bitswap8(src, 6, 7, 5, 4, 3, 2, 1, 0)
	}

	return src
}

// DecryptProgram returns the decrypted data and opcode views of a program
// ROM. The ROM is not changed.
func DecryptProgram(rom []byte) (data []byte, opcodes []byte) {
	data = make([]byte, len(rom))
	opcodes = make([]byte, len(rom))
	for i, b := range rom {
		data[i] = DecryptData(uint16(i), b)
		opcodes[i] = DecryptOpcode(uint16(i), b)
	}
	return data, opcodes
}
