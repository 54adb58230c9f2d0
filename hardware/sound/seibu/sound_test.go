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

package seibu_test

import (
	"testing"

	"github.com/jetsetilly/soundboard/hardware/sound/seibu"
	"github.com/jetsetilly/soundboard/test"
)

type mockZ80 struct {
	asserted bool
	vector   uint8
	updates  int
}

func (mc *mockZ80) SetInputLineAndVector(line int, asserted bool, vector uint8) {
	mc.asserted = asserted
	mc.vector = vector
	mc.updates++
}

type mockFM struct {
	regs [2]uint8
}

func (fm *mockFM) Read(offset int) uint8 {
	return fm.regs[offset&1]
}

func (fm *mockFM) Write(offset int, data uint8) {
	fm.regs[offset&1] = data
}

func TestInterrupts(t *testing.T) {
	z80 := &mockZ80{}
	snd := seibu.NewSound(nil, z80, nil)

	snd.FMIRQ(true)
	test.ExpectEquality(t, z80.asserted, true)
	test.ExpectEquality(t, z80.vector, seibu.VectorRST10)

	// RST18 from the main CPU. both vectors ANDed together
	snd.MainWordWrite(4, 0)
	test.ExpectEquality(t, z80.asserted, true)
	test.ExpectEquality(t, z80.vector, 0xd7)

	snd.FMIRQ(false)
	test.ExpectEquality(t, z80.vector, seibu.VectorRST18)

	// the general clear does nothing
	snd.IRQClear()
	snd.RST10Ack()
	test.ExpectEquality(t, z80.asserted, true)

	snd.RST18Ack()
	test.ExpectEquality(t, z80.asserted, false)
	test.ExpectEquality(t, z80.vector, 0xff)
	test.ExpectEquality(t, snd.IRQAsserted(), false)
}

func TestReset(t *testing.T) {
	z80 := &mockZ80{}
	snd := seibu.NewSound(nil, z80, nil)
	snd.MainMustbWrite(0x1234, 0xffff)
	test.ExpectEquality(t, snd.Vector(), 0xdf)

	snd.Reset()
	test.ExpectEquality(t, z80.asserted, false)
	test.ExpectEquality(t, snd.SoundLatchRead(1), 0x12)
}

func TestCommandHandshake(t *testing.T) {
	z80 := &mockZ80{}
	snd := seibu.NewSound(nil, z80, nil)

	// main CPU sends a command
	snd.MainWordWrite(0, 0x0034)
	snd.MainWordWrite(1, 0x0012)
	snd.MainWordWrite(6, 0)
	test.ExpectEquality(t, snd.MainWordRead(5), 0x0001)
	test.ExpectEquality(t, snd.MainDataPendingRead(), 0x00)

	// sound CPU reads the command. reading does not clear the pending flag
	test.ExpectEquality(t, snd.SoundLatchRead(0), 0x34)
	test.ExpectEquality(t, snd.SoundLatchRead(1), 0x12)
	test.ExpectEquality(t, snd.MainWordRead(5), 0x0001)

	// sound CPU replies
	snd.MainDataWrite(0, 0x56)
	snd.MainDataWrite(1, 0x78)
	snd.PendingWrite()
	test.ExpectEquality(t, snd.MainWordRead(5), 0x0000)
	test.ExpectEquality(t, snd.MainDataPendingRead(), 0x01)
	test.ExpectEquality(t, snd.MainWordRead(2), 0x0056)
	test.ExpectEquality(t, snd.MainWordRead(3), 0x0078)

	// unmapped
	test.ExpectEquality(t, snd.MainWordRead(0), 0xffff)
	test.ExpectEquality(t, snd.MainWordRead(7), 0xffff)

	// offset 2 is an alternative pending write
	snd.MainWordWrite(2, 0)
	test.ExpectEquality(t, snd.Pending.MainToSub, true)
	test.ExpectEquality(t, snd.Pending.SubToMain, false)
}

func TestMustb(t *testing.T) {
	snd := seibu.NewSound(nil, nil, nil)
	snd.MainMustbWrite(0xabcd, 0x00ff)
	test.ExpectEquality(t, snd.Main2Sub, [2]uint8{0xcd, 0x00})
	snd.MainMustbWrite(0x1200, 0xff00)
	test.ExpectEquality(t, snd.Main2Sub, [2]uint8{0xcd, 0x12})
	test.ExpectEquality(t, snd.IRQAsserted(), true)
}

func TestPeripherals(t *testing.T) {
	fm := &mockFM{}
	snd := seibu.NewSound(nil, nil, fm)

	snd.FMWrite(1, 0x20)
	test.ExpectEquality(t, snd.FMRead(1), 0x20)
	test.ExpectEquality(t, seibu.NewSound(nil, nil, nil).FMRead(0), 0x00)

	snd.BankWrite(0x03)
	test.ExpectEquality(t, snd.Bank, 1)

	snd.CoinWrite(0x01)
	snd.CoinWrite(0x03)
	snd.CoinWrite(0x00)
	snd.CoinWrite(0x01)
	test.ExpectEquality(t, snd.Coins, [2]int{2, 1})
}
