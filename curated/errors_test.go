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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/soundboard/curated"
	"github.com/jetsetilly/soundboard/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"
const loaderError = "romloader: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	g := curated.Errorf(loaderError, curated.Errorf(loaderError, "file not found"))
	test.ExpectEquality(t, g.Error(), "romloader: file not found")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() should fail because we haven't included testErrorB anywhere in
	// the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing testErrorB inside a testError
	f := curated.Errorf(testError, curated.Errorf(testErrorB, "bar"))
	test.ExpectSuccess(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// plain errors are not curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(loaderError, io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
}
