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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/soundboard/curated"
)

// PerformanceError is the pattern used for errors returned by the
// performance package.
const PerformanceError = "performance: %v"

// Profile specifies which profiling (if any) should be performed.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	s := make([]string, 0, 3)
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// ParseProfile converts a comma separated string of profile types to a
// Profile value. Valid types are "cpu", "mem", "trace", "all" and "none".
func ParseProfile(profile string) (Profile, error) {
	p := ProfileNone
	for _, s := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(PerformanceError, fmt.Sprintf("unknown profile type (%s)", s))
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function "through" the requested Profile
// types. Profile files are written to the working directory and are prefixed
// with filenameHeader.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf(PerformanceError, err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf(PerformanceError, err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf(PerformanceError, err)
			}
		}()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	return nil
}
