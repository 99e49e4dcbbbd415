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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pwmgen/logger"
	"github.com/jetsetilly/pwmgen/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	test.ExpectedFailure(t, logger.Write(s))
	test.Equate(t, s.String(), "")

	logger.Log("test", "this is a test")
	test.ExpectedSuccess(t, logger.Write(s))
	test.Equate(t, s.String(), "test: this is a test\n")

	// consecutive identical entries are folded not appended
	s.Reset()
	logger.Log("test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test (repeat x2)\n")

	s.Reset()
	logger.Logf("test", "%d plus %d equals %d", 1, 2, 1+2)
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test: 1 plus 2 equals 3\n")
}
