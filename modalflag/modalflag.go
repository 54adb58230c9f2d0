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

package modalflag

import (
	"flag"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/soundboard/curated"
)

// Error patterns returned by Parse() and ExpectArgs().
const (
	NoMode      = "mode required: %s"
	UnknownMode = "unknown mode (%s)"
	WrongArgs   = "%s: %d argument(s) required, %d given"
)

// Modes handles a command line made up of global flags, a mode name and the
// flags and arguments of that mode. Output should be set before Parse() is
// called or help messages are lost.
type Modes struct {
	Output io.Writer

	args  []string
	flags *flag.FlagSet

	// mode names accepted by the next Parse()
	modes []string

	// the mode selected by the most recent Parse() that had modes
	mode string

	additionalHelp string
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// carry on. if modes were added then Mode() gives the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned alongside
	ParseError
)

func (md *Modes) String() string {
	return md.mode
}

// Mode returns the mode selected by Parse(). Empty if no modes were added.
func (md *Modes) Mode() string {
	return md.mode
}

// NewArgs starts parsing a new argument list.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.mode = ""
	md.flags = nil
	md.NewMode()
}

// NewMode discards the flags and modes added for the previous Parse(). The
// arguments left over from the previous Parse() are parsed next.
func (md *Modes) NewMode() {
	if md.flags != nil && md.flags.Parsed() {
		md.args = md.flags.Args()
		if len(md.modes) > 0 && len(md.args) > 0 {
			md.args = md.args[1:]
		}
	}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.modes = nil
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the list of flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddModes sets the mode names accepted by the next Parse(). Names are case
// insensitive.
func (md *Modes) AddModes(modes ...string) {
	for _, m := range modes {
		md.modes = append(md.modes, strings.ToUpper(m))
	}
}

// Parse the flags added since NewMode(). If modes have been added, the first
// argument after the flags must name one of them.
func (md *Modes) Parse() (ParseResult, error) {
	usage := &strings.Builder{}
	md.flags.SetOutput(usage)

	if err := md.flags.Parse(md.args); err != nil {
		if err == flag.ErrHelp {
			writeHelp(md.Output, md.mode, usage.String(), md.modes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.modes) == 0 {
		return ParseContinue, nil
	}

	if md.flags.NArg() == 0 {
		return ParseError, curated.Errorf(NoMode, strings.Join(md.modes, ", "))
	}

	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.modes {
		if m == arg {
			md.mode = m
			return ParseContinue, nil
		}
	}

	return ParseError, curated.Errorf(UnknownMode, md.flags.Arg(0))
}

// GetArg returns the numbered argument left after the flags. The mode name
// is not counted.
func (md *Modes) GetArg(i int) string {
	if len(md.modes) > 0 {
		i++
	}
	return md.flags.Arg(i)
}

// NArg returns the number of arguments left after the flags. The mode name
// is not counted.
func (md *Modes) NArg() int {
	n := md.flags.NArg()
	if len(md.modes) > 0 && n > 0 {
		n--
	}
	return n
}

// ExpectArgs returns a WrongArgs error if NArg() is outside the range min to
// max.
func (md *Modes) ExpectArgs(min int, max int) error {
	n := md.NArg()
	if n < min || n > max {
		return curated.Errorf(WrongArgs, strings.ToLower(md.mode), min, n)
	}
	return nil
}

// AddBool adds a flag for the next Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration adds a flag for the next Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt adds a flag for the next Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a flag for the next Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddHex adds an integer flag that also accepts 0x prefixed values.
func (md *Modes) AddHex(name string, value int, usage string) *int {
	v := hexValue(value)
	md.flags.Var(&v, name, usage)
	return (*int)(&v)
}

type hexValue int

func (h *hexValue) String() string {
	if h == nil {
		return "0x00"
	}
	return "0x" + strconv.FormatInt(int64(*h), 16)
}

func (h *hexValue) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return err
	}
	*h = hexValue(v)
	return nil
}
