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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/pwmgen/hardware/pwm"
	"github.com/jetsetilly/pwmgen/performance"
	"github.com/jetsetilly/pwmgen/test"
)

func TestCalcRate(t *testing.T) {
	conf, err := pwm.Resolve(512, 3, 64, 0)
	test.ExpectedSuccess(t, err)

	// servicing ten seconds worth of ticks in ten seconds is running at
	// exactly the configured clock rate
	tickRate, periodRate, speed := performance.CalcRate(conf, 5120, 10.0)
	test.Equate(t, tickRate, 512.0)
	test.Equate(t, periodRate, 64.0)
	test.Equate(t, speed, 100.0)

	// twice as many ticks in the same time is 200% speed
	tickRate, periodRate, speed = performance.CalcRate(conf, 10240, 10.0)
	test.Equate(t, tickRate, 1024.0)
	test.Equate(t, periodRate, 128.0)
	test.Equate(t, speed, 200.0)
}
