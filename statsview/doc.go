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

// Package statsview offers runtime statistics of the emulator through a
// local HTTP server. The server is only included in the binary when the
// statsview build tag is present. Without the tag Available() returns false
// and Launch() does nothing.
//
// Underlying funcionality provided by "github.com/go-echarts/statsview".
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12650/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12650/debug/pprof/
package statsview

// DefaultAddress of the statistics server.
const DefaultAddress = "localhost:12650"

const url = "/debug/statsview"
