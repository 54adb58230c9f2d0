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
	"os/signal"

	"github.com/jetsetilly/soundboard/logger"
	"github.com/jetsetilly/soundboard/modalflag"
	"github.com/jetsetilly/soundboard/prefs"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// the launched mode handles interrupt signals itself. the first
	// interrupt cancels the context given to the mode and no longer
	// ends the program.
	//
	// takes no arguments.
	reqGracefulIntSig stateReq = "GRACEFULINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	graceful := false

	go launch(ctx, sync)

	done := false
	for !done {
		select {
		case <-intChan:
			if graceful {
				// ask the mode to stop. a further interrupt ends the program
				graceful = false
				cancel()
			} else {
				fmt.Println("\r")
				done = true
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqGracefulIntSig:
				graceful = true
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(ctx context.Context, sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddModes("RENDER", "PLAY", "SOUNDTEST", "SCRIPT", "BOARD", "DISASM", "DECRYPT", "PERFORMANCE", "DUMP")
	prefsOverride := md.AddString("prefs", "", "preference overrides. eg. \"okim6295.clock::1000000; okim6295.pin7::false\"")
	echoLog := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	if *echoLog {
		logger.SetEcho(os.Stdout, false)
	}

	// every mode except the quick tools handles interrupts by stopping
	// cleanly
	switch md.Mode() {
	case "DISASM", "DECRYPT":
	default:
		sync.state <- stateRequest{req: reqGracefulIntSig}
	}

	switch md.Mode() {
	case "RENDER":
		err = render(ctx, md)

	case "PLAY":
		err = play(ctx, md)

	case "SOUNDTEST":
		err = soundtest(ctx, md)

	case "SCRIPT":
		err = runScript(ctx, md)

	case "BOARD":
		err = runBoard(ctx, md)

	case "DISASM":
		err = disasm(md)

	case "DECRYPT":
		err = decrypt(md)

	case "PERFORMANCE":
		err = perform(ctx, md)

	case "DUMP":
		err = dump(ctx, md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("* unused preferences: %s\n", unused)
		}
	}

	sync.state <- stateRequest{req: reqQuit}
}
