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

package pwm

import (
	"fmt"

	"github.com/jetsetilly/pwmgen/curated"
)

// curated error patterns raised by Resolve(). FreqOutOfTolerance carries the
// achievable frequency followed by the lower and upper tolerance bounds, all
// in hertz.
const (
	FreqOutOfTolerance = "pwm: frequency out of tolerance: achievable %.4fHz outside %.4fHz to %.4fHz"
	InvalidResolution  = "pwm: resolution of %d bits is outside the supported range of 1 to 30 bits"
	InvalidClockFreq   = "pwm: clock frequency must be a positive number of hertz (%d)"
	InvalidTargetFreq  = "pwm: target frequency must be a positive number of hertz (%d)"
	InvalidTolerance   = "pwm: tolerance must not be a negative number of hertz (%d)"
)

// the practical limits for the resolution argument of Resolve(). one bit is
// the smallest meaningful period counter; beyond thirty bits MaxCount no
// longer fits the uint32 duty domain.
const (
	MinResolution = 1
	MaxResolution = 30
)

// Config is the resolved, immutable configuration of a PWM generator. It is
// created with Resolve() (or indirectly with New()) and never changes for the
// lifetime of the generator.
type Config struct {
	ClockFreqHz    int
	ResolutionBits int
	TargetFreqHz   int
	ToleranceHz    int

	// the number of tick enable events in one PWM period. equal to
	// 2^ResolutionBits. the duty cycle domain is [0, MaxCount] with MaxCount
	// meaning 100% duty
	MaxCount int

	// the clock division factor. a tick enable event occurs once every
	// ClockDivider+1 clock ticks. zero means the PWM tick rate is the clock
	// rate itself
	ClockDivider int

	// the output frequency actually produced by the above, in fractional
	// hertz. guaranteed to be within ToleranceHz of TargetFreqHz
	AchievableFreqHz float64
}

func (conf Config) String() string {
	return fmt.Sprintf("clk=%dHz bits=%d div=%d achievable=%.4fHz",
		conf.ClockFreqHz, conf.ResolutionBits, conf.ClockDivider, conf.AchievableFreqHz,
	)
}

// Resolve derives the clock division factor that brings the PWM output
// frequency as close as possible to targetFreqHz, given the system clock and
// the counter resolution.
//
// The divider is the truncated value of clockFreqHz/(maxCount*targetFreqHz),
// less one and clamped at zero. Truncation rather than nearest-rounding is
// deliberate: it matches the hardware's integer conversion and any resulting
// error is judged against the tolerance, not against a rounding rule.
//
// Resolve fails with FreqOutOfTolerance if the achievable frequency is
// outside targetFreqHz±toleranceHz. It is the single validation gate for the
// generator: a Config is only ever produced for a feasible request.
func Resolve(clockFreqHz, resolutionBits, targetFreqHz, toleranceHz int) (Config, error) {
	if resolutionBits < MinResolution || resolutionBits > MaxResolution {
		return Config{}, curated.Errorf(InvalidResolution, resolutionBits)
	}
	if clockFreqHz <= 0 {
		return Config{}, curated.Errorf(InvalidClockFreq, clockFreqHz)
	}
	if targetFreqHz <= 0 {
		return Config{}, curated.Errorf(InvalidTargetFreq, targetFreqHz)
	}
	if toleranceHz < 0 {
		return Config{}, curated.Errorf(InvalidTolerance, toleranceHz)
	}

	maxCount := 1 << resolutionBits

	div := clockFreqHz/(maxCount*targetFreqHz) - 1
	if div < 0 {
		div = 0
	}

	// fractional arithmetic from here on. judging the achievable frequency
	// with integer division would introduce a truncation bias of its own
	achievable := float64(clockFreqHz) / (float64(maxCount) * float64(div+1))

	lo := float64(targetFreqHz - toleranceHz)
	hi := float64(targetFreqHz + toleranceHz)
	if achievable < lo || achievable > hi {
		return Config{}, curated.Errorf(FreqOutOfTolerance, achievable, lo, hi)
	}

	return Config{
		ClockFreqHz:      clockFreqHz,
		ResolutionBits:   resolutionBits,
		TargetFreqHz:     targetFreqHz,
		ToleranceHz:      toleranceHz,
		MaxCount:         maxCount,
		ClockDivider:     div,
		AchievableFreqHz: achievable,
	}, nil
}

// TickRateHz returns the rate of tick enable events in hertz. This is the
// rate at which the period counter advances and, for observers sampling the
// output once per enable event, the natural sample rate of the waveform.
func (conf Config) TickRateHz() int {
	return conf.ClockFreqHz / (conf.ClockDivider + 1)
}
