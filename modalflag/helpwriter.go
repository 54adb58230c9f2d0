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
	"fmt"
	"io"
	"strings"
)

// writeHelp amends the usage text produced by the flag package with the
// mode name, the list of modes and any additional help.
func writeHelp(output io.Writer, mode string, usage string, modes []string, additionalHelp string) {
	if output == nil {
		return
	}

	// the flag package writes "Usage:" followed by one or more lines for
	// each flag
	flags := strings.TrimPrefix(usage, "Usage:\n")

	if flags == "" && len(modes) == 0 && additionalHelp == "" {
		if mode == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s mode\n", mode)
		}
		return
	}

	if mode == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", mode)
	}
	io.WriteString(output, flags)

	if len(modes) > 0 {
		if flags != "" {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  modes: %s\n", strings.Join(modes, ", "))
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
