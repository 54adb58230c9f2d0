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

package otoaudio

import (
	"testing"

	"github.com/jetsetilly/soundboard/test"
)

func TestQueue(t *testing.T) {
	q := &queue{}
	q.push([]byte{1, 2, 3, 4})
	test.ExpectEquality(t, q.len(), 4)

	p := make([]byte, 3)
	n, err := q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, p[2], uint8(3))
	test.ExpectEquality(t, q.len(), 1)

	// short reads are padded with silence
	p = []byte{0xff, 0xff, 0xff}
	n, err = q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, p[0], uint8(4))
	test.ExpectEquality(t, p[1], uint8(0))
	test.ExpectEquality(t, p[2], uint8(0))
	test.ExpectEquality(t, q.underflow, 2)

	q.push([]byte{5, 6})
	q.clear()
	test.ExpectEquality(t, q.len(), 0)
}
