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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/soundboard/test"
	"github.com/jetsetilly/soundboard/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 8000)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]int32{0, 100, -100}))
	test.ExpectSuccess(t, aw.SetAudio([]int32{50000, -50000}))
	test.ExpectEquality(t, aw.Len(), 5)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)
	test.ExpectEquality(t, dec.SampleRate, uint32(8000))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 5)

	// samples outside the 16 bit range are clipped
	test.ExpectEquality(t, buf.Data[1], 100)
	test.ExpectEquality(t, buf.Data[2], -100)
	test.ExpectEquality(t, buf.Data[3], 32767)
	test.ExpectEquality(t, buf.Data[4], -32768)
}

func TestBadRate(t *testing.T) {
	_, err := wavwriter.New("", 0)
	test.ExpectFailure(t, err)
}
