// This file is part of PWMGen.
//
// PWMGen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PWMGen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PWMGen.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/test"
)

const testPattern = "test error: %s"
const testPatternB = "test error B: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.Equate(t, e.Error(), "test error: foo")

	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, testPatternB))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))

	// a plain error is never a curated error
	p := errors.New("test error: foo")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(testPatternB, e)

	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPatternB))
	test.ExpectedFailure(t, curated.Has(e, testPatternB))
}

func TestDeduplication(t *testing.T) {
	// wrapping an error in the same pattern should not repeat the message
	e := curated.Errorf("test error: %v", curated.Errorf("test error: %v", "foo"))
	test.Equate(t, e.Error(), "test error: foo")
}
