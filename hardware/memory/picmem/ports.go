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

package picmem

import "github.com/jetsetilly/soundboard/hardware/memory/picbus"

// OpenPorts is an implementation of picbus.Ports with nothing connected. Input
// pins float high and output is discarded.
type OpenPorts struct{}

// ReadPort implements the picbus.Ports interface.
func (OpenPorts) ReadPort(_ picbus.Port) uint8 {
	return 0xff
}

// WritePort implements the picbus.Ports interface.
func (OpenPorts) WritePort(_ picbus.Port, _ uint8, _ uint8) {
}
