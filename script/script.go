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

package script

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/environment"
	"github.com/jetsetilly/soundboard/hardware/memory/rom"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
	"github.com/jetsetilly/soundboard/hardware/sound/okim6295"
	"github.com/jetsetilly/soundboard/hardware/sound/seibu"
	"github.com/jetsetilly/soundboard/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern used for errors returned by the script
// package.
const ScriptError = "script: %v"

// the largest number of samples advance() will generate in one call. about
// ten minutes of audio at the highest sample rate
const maxAdvance = 60 * 10 * 8000 * 4

// Runner executes scripts.
type Runner struct {
	env *environment.Environment

	OKI   *okim6295.OKIM6295
	Seibu *seibu.ADPCM

	out mix.Mixer

	okiBuffer   []int32
	seibuBuffer []int32

	elapsed int
}

// NewRunner is the preferred method of initialisation for the Runner type.
// The OKIM6295 clock and pin 7 state are taken from the environment's
// preferences. The output mixer can be nil.
//
// The Seibu ADPCM device is given a copy of the sample ROM. A different ROM
// can be given with SetSeibuROM().
func NewRunner(env *environment.Environment, samples *rom.ROM, out mix.Mixer) *Runner {
	r := &Runner{
		env: env,
		out: out,
	}
	r.OKI = okim6295.NewOKIM6295FromPrefs(env, samples)
	r.SetSeibuROM(rom.NewROM(bytes.Clone(samples.Data())))
	return r
}

// SetSeibuROM replaces the Seibu ADPCM device with one reading from the
// ROM. Should be called before the script is run.
func (r *Runner) SetSeibuROM(samples *rom.ROM) {
	r.Seibu = seibu.NewADPCM(r.env, samples, r.OKI.SampleRate())
}

// Elapsed returns the number of samples generated.
func (r *Runner) Elapsed() int {
	return r.elapsed
}

// SampleRate of the audio sent to the mixer.
func (r *Runner) SampleRate() int {
	return r.OKI.SampleRate()
}

// RunFile executes the named script.
func (r *Runner) RunFile(ctx context.Context, filename string) error {
	return r.run(ctx, func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

// RunString executes the script in the string.
func (r *Runner) RunString(ctx context.Context, source string) error {
	return r.run(ctx, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func (r *Runner) run(ctx context.Context, do func(L *lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	L.SetContext(ctx)
	r.register(L)

	err := do(L)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

func (r *Runner) register(L *lua.LState) {
	fns := map[string]lua.LGFunction{
		"oki_write":   r.okiWrite,
		"oki_status":  r.okiStatus,
		"oki_pin7":    r.okiPin7,
		"seibu_adpcm": r.seibuADPCM,
		"seibu_stop":  r.seibuStop,
		"advance":     r.advance,
		"elapsed":     r.elapsedFn,
		"sample_rate": r.sampleRate,
		"log":         r.log,
	}
	for n, f := range fns {
		L.SetGlobal(n, L.NewFunction(f))
	}
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%d)", v))
	}
	return uint8(v)
}

func (r *Runner) okiWrite(L *lua.LState) int {
	r.OKI.WriteCommand(checkByte(L, 1))
	return 0
}

func (r *Runner) okiStatus(L *lua.LState) int {
	L.Push(lua.LNumber(r.OKI.ReadStatus()))
	return 1
}

// the sample rate of the mixer is fixed once audio has been generated
func (r *Runner) okiPin7(L *lua.LState) int {
	pin7 := L.CheckBool(1)
	if r.elapsed > 0 {
		L.RaiseError("oki_pin7() cannot be called after advance()")
		return 0
	}
	r.OKI.SetPin7(pin7)
	r.Seibu.SetClock(r.OKI.SampleRate())
	return 0
}

func (r *Runner) seibuADPCM(L *lua.LState) int {
	start := checkByte(L, 1)
	end := checkByte(L, 2)
	r.Seibu.AddressWrite(0, start)
	r.Seibu.AddressWrite(1, end)
	r.Seibu.ControlWrite(0x00)
	r.Seibu.ControlWrite(0x02)
	r.Seibu.ControlWrite(0x01)
	return 0
}

func (r *Runner) seibuStop(L *lua.LState) int {
	r.Seibu.ControlWrite(0x00)
	return 0
}

func (r *Runner) advance(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > maxAdvance {
		L.ArgError(1, fmt.Sprintf("number of samples out of range (%d)", n))
	}

	if cap(r.okiBuffer) < n {
		r.okiBuffer = make([]int32, n)
		r.seibuBuffer = make([]int32, n)
	}
	r.okiBuffer = r.okiBuffer[:n]
	r.seibuBuffer = r.seibuBuffer[:n]

	for i := range r.okiBuffer {
		r.okiBuffer[i] = 0
	}
	r.OKI.Generate(r.okiBuffer)
	r.Seibu.Generate(r.seibuBuffer)
	mix.Add(r.okiBuffer, r.seibuBuffer)

	r.elapsed += n

	if r.out != nil {
		if err := r.out.SetAudio(r.okiBuffer); err != nil {
			L.RaiseError("%v", err)
		}
	}

	return 0
}

func (r *Runner) elapsedFn(L *lua.LState) int {
	L.Push(lua.LNumber(r.elapsed))
	return 1
}

func (r *Runner) sampleRate(L *lua.LState) int {
	L.Push(lua.LNumber(r.OKI.SampleRate()))
	return 1
}

func (r *Runner) log(L *lua.LState) int {
	logger.Log(r.env, "script", L.CheckString(1))
	return 0
}
