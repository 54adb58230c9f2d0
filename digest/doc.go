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

// Package digest contains an implementation of the mix.Mixer interface that
// produces a cryptographic hash of the audio stream. The hash can then be
// used to compare output from subsequent emulation executions. If a new hash
// differs from a previously recorded value then something has changed. This
// is the basis for regression tests of the sound chips.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}
