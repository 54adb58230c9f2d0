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
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/digest"
	"github.com/jetsetilly/soundboard/govern"
	"github.com/jetsetilly/soundboard/hardware/board"
	"github.com/jetsetilly/soundboard/hardware/sound/mix"
	"github.com/jetsetilly/soundboard/modalflag"
	"github.com/jetsetilly/soundboard/performance"
	"github.com/jetsetilly/soundboard/reflection"
	"github.com/jetsetilly/soundboard/statsview"
	"github.com/jetsetilly/soundboard/wavwriter"
)

// parseCommands converts a comma separated list of numbers to bytes.
func parseCommands(s string) ([]uint8, error) {
	var cmds []uint8
	for _, c := range strings.Split(s, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		v, err := strconv.ParseUint(c, 0, 8)
		if err != nil {
			return nil, curated.Errorf("invalid command (%s)", c)
		}
		cmds = append(cmds, uint8(v))
	}
	return cmds, nil
}

// newBoard creates a board from the program and sample files.
func newBoard(variant string, programFile string, samplesFile string) (*board.Board, error) {
	env, err := newEnvironment()
	if err != nil {
		return nil, err
	}

	prog, v, err := loadProgram(programFile, variant)
	if err != nil {
		return nil, err
	}

	samples, err := loadSamples(samplesFile)
	if err != nil {
		return nil, err
	}

	return board.NewBoard(env, v, prog, samples)
}

func runBoard(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	variant := md.AddString("variant", "16C57", "PIC variant")
	commands := md.AddString("commands", "", "comma separated list of commands sent by the main CPU")
	duration := md.AddDuration("duration", 5*time.Second, "duration of output")
	output := md.AddString("out", "out.wav", "name of WAV file to write")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	progFile, samplesFile, err := programArgs(md)
	if err != nil {
		return err
	}

	cmds, err := parseCommands(*commands)
	if err != nil {
		return err
	}

	brd, err := newBoard(*variant, progFile, samplesFile)
	if err != nil {
		return err
	}

	aw, err := wavwriter.New(*output, brd.SampleRate())
	if err != nil {
		return err
	}
	dig := digest.NewAudio()
	out := mix.NewMulti(aw, dig)

	limit := int(duration.Seconds() * float64(brd.SampleRate()))
	n := 0

	err = brd.Run(func(samples []int32) (govern.State, error) {
		select {
		case <-ctx.Done():
			return govern.Ending, nil
		default:
		}

		// the next command is sent when the MCU has read the previous one
		if len(cmds) > 0 && !brd.CommandPending {
			brd.SendCommand(cmds[0])
			cmds = cmds[1:]
		}

		if err := out.SetAudio(samples); err != nil {
			return govern.Ending, err
		}

		n += len(samples)
		if n >= limit {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if err := out.EndMixing(); err != nil {
		return err
	}

	if len(cmds) > 0 {
		fmt.Printf("%d command(s) not read by the MCU\n", len(cmds))
	}
	fmt.Printf("%d samples at %dHz written to %s\n", n, brd.SampleRate(), *output)
	printHash("audio digest", dig.Hash())

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	variant := md.AddString("variant", "16C57", "PIC variant")
	duration := md.AddString("duration", "5s", "run duration (with an additional 2 second lead-in)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	uncapped := md.AddBool("uncapped", true, "run without limiting the speed to that of the real hardware")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	progFile, samplesFile, err := programArgs(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(os.Stdout, "")
		defer stop()
	}

	brd, err := newBoard(*variant, progFile, samplesFile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, brd, *uncapped, *duration)
}

func dump(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	variant := md.AddString("variant", "16C57", "PIC variant")
	quanta := md.AddInt("quanta", 1000, "number of quanta to run before dumping")
	trace := md.AddBool("trace", false, "print the state of the board after every quantum")
	output := md.AddString("out", "board.dot", "name of the DOT file to write")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	progFile, samplesFile, err := programArgs(md)
	if err != nil {
		return err
	}

	brd, err := newBoard(*variant, progFile, samplesFile)
	if err != nil {
		return err
	}

	ref := reflection.NewGatherer(brd, reflection.DefaultHistory)
	if *trace {
		ref.AddRenderer(reflection.NewTextRenderer(os.Stdout))
	}

	n := 0
	err = brd.Run(func(samples []int32) (govern.State, error) {
		if err := ref.Step(samples); err != nil {
			return govern.Ending, err
		}

		select {
		case <-ctx.Done():
			return govern.Ending, nil
		default:
		}

		n++
		if n >= *quanta {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if err := ref.Flush(); err != nil {
		return err
	}

	f, err := os.Create(*output)
	if err != nil {
		return curated.Errorf("dump: %v", err)
	}
	defer f.Close()

	reflection.Dump(f, brd)
	fmt.Printf("state after %d quanta written to %s\n", n, *output)

	return nil
}
