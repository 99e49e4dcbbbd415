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

package pwm_test

import (
	"testing"

	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/hardware/clocks"
	"github.com/jetsetilly/pwmgen/hardware/pwm"
	"github.com/jetsetilly/pwmgen/test"
)

func TestResolve(t *testing.T) {
	// 100MHz clock, 8 bit resolution, 2kHz target
	conf, err := pwm.Resolve(clocks.Crystal100MHz, 8, 2000, 500)
	test.ExpectedSuccess(t, err)
	test.Equate(t, conf.MaxCount, 256)
	test.Equate(t, conf.ClockDivider, 194)

	// 100MHz / (256 * 195) = 2003.2051...Hz
	if conf.AchievableFreqHz < 2003.20 || conf.AchievableFreqHz > 2003.21 {
		t.Errorf("unexpected achievable frequency (%f)", conf.AchievableFreqHz)
	}

	// the tolerance invariant itself
	if conf.AchievableFreqHz < float64(conf.TargetFreqHz-conf.ToleranceHz) ||
		conf.AchievableFreqHz > float64(conf.TargetFreqHz+conf.ToleranceHz) {
		t.Errorf("achievable frequency outside tolerance (%f)", conf.AchievableFreqHz)
	}
}

func TestResolveSlowTarget(t *testing.T) {
	// a very slow target relative to the clock requires a large divider.
	// 100MHz / (256 * 55803) = 7.00007...Hz, within 1Hz of target
	conf, err := pwm.Resolve(clocks.Crystal100MHz, 8, 7, 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, conf.ClockDivider, 55802)

	if conf.AchievableFreqHz < 6.0 || conf.AchievableFreqHz > 8.0 {
		t.Errorf("unexpected achievable frequency (%f)", conf.AchievableFreqHz)
	}
}

func TestResolveExact(t *testing.T) {
	// divider of zero: the clock rate is already the PWM tick rate
	conf, err := pwm.Resolve(512, 3, 64, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, conf.MaxCount, 8)
	test.Equate(t, conf.ClockDivider, 0)
	test.Equate(t, conf.AchievableFreqHz, 64.0)
	test.Equate(t, conf.TickRateHz(), 512)
}

func TestResolveInfeasible(t *testing.T) {
	// a 1MHz clock cannot produce 100kHz with an 8 bit counter; the best
	// that can be achieved is 1MHz/256 = 3906.25Hz
	_, err := pwm.Resolve(clocks.Crystal1MHz, 8, 100_000, 10)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, pwm.FreqOutOfTolerance))

	// construction must fail too, never producing an inaccurate generator
	gen, err := pwm.New(clocks.Crystal1MHz, 8, 100_000, 10)
	test.ExpectedFailure(t, err)
	if gen != nil {
		t.Errorf("generator created from an infeasible configuration")
	}
}

func TestResolveValidation(t *testing.T) {
	_, err := pwm.Resolve(clocks.Crystal1MHz, 0, 100, 10)
	test.ExpectedSuccess(t, curated.Is(err, pwm.InvalidResolution))

	_, err = pwm.Resolve(clocks.Crystal1MHz, 31, 100, 10)
	test.ExpectedSuccess(t, curated.Is(err, pwm.InvalidResolution))

	_, err = pwm.Resolve(0, 8, 100, 10)
	test.ExpectedSuccess(t, curated.Is(err, pwm.InvalidClockFreq))

	_, err = pwm.Resolve(clocks.Crystal1MHz, 8, 0, 10)
	test.ExpectedSuccess(t, curated.Is(err, pwm.InvalidTargetFreq))

	_, err = pwm.Resolve(clocks.Crystal1MHz, 8, 100, -1)
	test.ExpectedSuccess(t, curated.Is(err, pwm.InvalidTolerance))
}
