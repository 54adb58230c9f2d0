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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern and
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. The Has() function is similar but checks
// the entire error chain.
//
//	const LoaderError = "romloader: %v"
//
//	err := curated.Errorf(LoaderError, io.EOF)
//	curated.Is(err, LoaderError) // true
//
// Adjacent duplicate parts of an error message are removed when the error is
// printed, so that errors wrapped in a pattern with the same prefix do not
// stutter. For example "romloader: romloader: file not found" becomes
// "romloader: file not found".
//
// The chips in the hardware package never return errors from their emulation
// paths. Curated errors are used by the tools that surround them.
package curated
