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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the length of the buffer isn't really important. that said, it needs to be
// at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to create digests on audio streams longer than audioBufferLength, the
// previous digest value is stuffed into the first part of the buffer array
// and included in the next digest value
const audioBufferStart = sha1.Size

// Audio implements the mix.Mixer interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements the digest.Digest interface. Samples that have not yet
// filled the buffer are included.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	for i := range dig.buffer {
		dig.buffer[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the mix.Mixer interface.
func (dig *Audio) SetAudio(samples []int32) error {
	for _, s := range samples {
		if dig.bufferCt+4 > audioBufferLength {
			dig.flush()
		}
		binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], uint32(s))
		dig.bufferCt += 4
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// EndMixing implements the mix.Mixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
