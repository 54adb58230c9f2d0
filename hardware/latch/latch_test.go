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

package latch_test

import (
	"testing"

	"github.com/jetsetilly/soundboard/hardware/latch"
	"github.com/jetsetilly/soundboard/test"
)

type mockCPU struct {
	lines map[latch.Line]bool
	count int
}

func newMockCPU() *mockCPU {
	return &mockCPU{lines: make(map[latch.Line]bool)}
}

func (mc *mockCPU) SetInputLine(line latch.Line, asserted bool) {
	mc.lines[line] = asserted
	mc.count++
}

func TestPending(t *testing.T) {
	var p latch.Pending
	test.ExpectEquality(t, p.MainToSub, false)
	test.ExpectEquality(t, p.SubToMain, false)

	p.MainWrote()
	test.ExpectEquality(t, p.MainToSubValue(), 1)
	test.ExpectEquality(t, p.SubToMainValue(), 0)

	// writing twice makes no difference
	p.MainWrote()
	test.ExpectEquality(t, p.MainToSubValue(), 1)

	p.SubWrote()
	test.ExpectEquality(t, p.MainToSubValue(), 0)
	test.ExpectEquality(t, p.SubToMainValue(), 1)
	test.ExpectEquality(t, p.String(), "main2sub=0 sub2main=1")

	p.Reset()
	test.ExpectEquality(t, p.SubToMain, false)
}

func TestPendingExclusive(t *testing.T) {
	var p latch.Pending
	for i := 0; i < 16; i++ {
		if i%3 == 0 {
			p.SubWrote()
		} else {
			p.MainWrote()
		}
		test.ExpectInequality(t, p.MainToSub, p.SubToMain, i)
	}
}

func TestCommand(t *testing.T) {
	mc := newMockCPU()
	cmd := latch.NewCommand(mc, latch.FIRQ)

	cmd.Write(0x42)
	test.ExpectEquality(t, mc.lines[latch.FIRQ], true)
	test.ExpectEquality(t, cmd.String(), "42 (FIRQ)")

	test.ExpectEquality(t, cmd.Read(), 0x42)
	test.ExpectEquality(t, mc.lines[latch.FIRQ], false)
	test.ExpectEquality(t, cmd.Asserted, false)

	// reading again returns the same value
	test.ExpectEquality(t, cmd.Read(), 0x42)

	// latching does not interrupt
	n := mc.count
	cmd.Latch(0x99)
	test.ExpectEquality(t, mc.count, n)
	test.ExpectEquality(t, cmd.Data, 0x99)
	test.ExpectEquality(t, cmd.String(), "99")
}

func TestCommandNoTarget(t *testing.T) {
	cmd := latch.NewCommand(nil, latch.IRQ)
	cmd.Write(0x01)
	test.ExpectEquality(t, cmd.Asserted, true)
	cmd.Reset()
	test.ExpectEquality(t, cmd.Asserted, false)
	test.ExpectEquality(t, cmd.Data, 0x01)
}
