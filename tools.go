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

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/digest"
	"github.com/jetsetilly/soundboard/disassembly"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
	"github.com/jetsetilly/soundboard/hardware/sound/seibu"
	"github.com/jetsetilly/soundboard/modalflag"
	"github.com/jetsetilly/soundboard/script"
	"github.com/jetsetilly/soundboard/wavwriter"
)

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	variant := md.AddString("variant", "16C57", "PIC variant")
	bytecode := md.AddBool("bytecode", false, "including bytecode in disassembly")
	skipNOP := md.AddBool("skipnop", true, "collapse runs of NOP instructions")
	grep := md.AddString("grep", "", "only list instructions containing the string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(1, 1); err != nil {
		return curated.Errorf("PIC program required for %s mode", md)
	}

	prog, v, err := loadProgram(md.GetArg(0), *variant)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromProgram(v, prog)
	if err != nil {
		return err
	}

	if *grep != "" {
		return dsm.Grep(os.Stdout, disassembly.GrepAll, *grep, false)
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowInfo: true,
		SkipNOP:  *skipNOP,
	}
	return dsm.Write(os.Stdout, attr)
}

func decrypt(md *modalflag.Modes) error {
	md.NewMode()
	output := md.AddString("out", "", "prefix of output files. defaults to the name of the input file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(1, 1); err != nil {
		return curated.Errorf("encrypted Z80 program required for %s mode", md)
	}

	ld, err := loadROM(md.GetArg(0))
	if err != nil {
		return err
	}

	prefix := *output
	if prefix == "" {
		prefix = ld.ShortName()
	}

	data, opcodes := seibu.DecryptProgram(ld.Data)

	for _, f := range []struct {
		suffix string
		data   []byte
	}{
		{suffix: "data", data: data},
		{suffix: "opcodes", data: opcodes},
	} {
		fn := fmt.Sprintf("%s_%s.bin", prefix, f.suffix)
		err := os.WriteFile(fn, f.data, 0644)
		if err != nil {
			return curated.Errorf("decrypt: %v", err)
		}
		fmt.Printf("%s written\n", fn)
	}

	return nil
}

func runScript(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	output := md.AddString("out", "", "name of WAV file to write. defaults to the name of the script")
	decryptSamples := md.AddBool("decrypt", false, "undo the line swapping of the Seibu ADPCM sample ROM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := md.ExpectArgs(2, 3); err != nil {
		return curated.Errorf("Lua script, OKIM6295 sample ROM and optional Seibu ADPCM ROM required for %s mode", md)
	}

	scr := md.GetArg(0)

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	samples, err := loadSamples(md.GetArg(1))
	if err != nil {
		return err
	}

	fn := *output
	if fn == "" {
		fn = fmt.Sprintf("%s.wav", strings.TrimSuffix(scr, ".lua"))
	}

	rec := &deferredMixer{filename: fn}
	dig := digest.NewAudio()
	run := script.NewRunner(env, samples, mix.NewMulti(rec, dig))
	rec.sampleRate = run.SampleRate

	if md.NArg() == 3 {
		seibuSamples, err := loadSamples(md.GetArg(2))
		if err != nil {
			return err
		}
		run.SetSeibuROM(seibuSamples)
	}

	if *decryptSamples {
		run.Seibu.Decrypt()
	}

	err = run.RunFile(ctx, scr)
	if err != nil {
		return err
	}

	if err := rec.EndMixing(); err != nil {
		return err
	}

	fmt.Printf("%d samples at %dHz written to %s\n", run.Elapsed(), run.SampleRate(), fn)
	printHash("audio digest", dig.Hash())

	return nil
}

// deferredMixer creates a WavWriter when the first audio arrives. The script
// may change the sample rate before that point.
type deferredMixer struct {
	filename   string
	sampleRate func() int
	aw         *wavwriter.WavWriter
}

func (m *deferredMixer) create() error {
	if m.aw != nil {
		return nil
	}
	var err error
	m.aw, err = wavwriter.New(m.filename, m.sampleRate())
	return err
}

func (m *deferredMixer) SetAudio(samples []int32) error {
	if err := m.create(); err != nil {
		return err
	}
	return m.aw.SetAudio(samples)
}

func (m *deferredMixer) EndMixing() error {
	if err := m.create(); err != nil {
		return err
	}
	return m.aw.EndMixing()
}
