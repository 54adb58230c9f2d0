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
	"sync"
)

// queue of little endian 16 bit samples shared between SetAudio() and the
// oto player's Read().
type queue struct {
	crit sync.Mutex
	data []byte

	// number of bytes read while the queue was empty
	underflow int
}

func (q *queue) push(p []byte) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.data = append(q.data, p...)
}

func (q *queue) len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.data)
}

func (q *queue) clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.data = q.data[:0]
}

// Read implements the io.Reader interface. The player must never be starved
// so missing data is replaced with silence.
func (q *queue) Read(p []byte) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := copy(p, q.data)
	q.data = append(q.data[:0], q.data[n:]...)

	if n < len(p) {
		clear(p[n:])
		q.underflow += len(p) - n
	}

	return len(p), nil
}
