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

	"github.com/jetsetilly/pwmgen/logger"
)

// PWM is a single-channel PWM generator. All of its state belongs to the one
// instance and is mutated only by Step(); it is not safe for concurrent use
// and does not need to be, there being a single clock domain.
type PWM struct {
	Config Config

	div divider
	per period
	lat latch
	cmp comparator
}

// New is the preferred method of initialisation for the PWM type. The
// configuration is resolved and validated once, here; if the achievable
// output frequency is not within toleranceHz of targetFreqHz no generator is
// created and the error says what was achievable.
func New(clockFreqHz, resolutionBits, targetFreqHz, toleranceHz int) (*PWM, error) {
	conf, err := Resolve(clockFreqHz, resolutionBits, targetFreqHz, toleranceHz)
	if err != nil {
		return nil, err
	}

	gen := &PWM{Config: conf}
	gen.div.limit = conf.ClockDivider
	gen.per.max = conf.MaxCount

	logger.Logf("pwm", "%s", conf.String())

	return gen, nil
}

func (gen PWM) String() string {
	return fmt.Sprintf("%s %s %s %s", gen.div.String(), gen.per.String(), gen.lat.String(), gen.cmp.String())
}

// Step advances the generator by one clock tick. It is the software
// equivalent of a rising clock edge: every component evaluates against the
// signal values registered by the previous Step() and the new values are
// committed together. No partial update is ever visible to the caller.
//
// The reset argument is the synchronous, level-sensitive reset line. While
// it is held true every component takes its reset branch; releasing it
// resumes free-running operation from the zero state.
//
// The duty argument is the externally presented duty cycle value. It is
// sampled every tick but adopted only at a period boundary. Values are
// defined for the domain [0, Config.MaxCount]; anything larger is a caller
// contract violation.
//
// The first return value pulses true for the single tick on which a duty
// value is adopted at a period boundary. The second return value is the PWM
// output level.
func (gen *PWM) Step(reset bool, duty uint32) (bool, bool) {
	// registered signals as they stood at the end of the previous tick. the
	// components must all see these values, not the values committed below
	enable := gen.div.enable
	boundary := gen.per.boundary()
	count := gen.per.count
	latched := gen.lat.duty

	gen.div.step(reset)
	gen.per.step(reset, enable)
	gen.lat.step(reset, enable, boundary, int(duty))
	gen.cmp.step(reset, enable, count, latched)

	return gen.lat.trigger, gen.cmp.level
}

// TickEnable returns the registered tick enable signal. It is the value that
// the period counter, duty latch and output comparator will act on during
// the *next* call to Step(). Observers that sample the output once per
// resolution step should read this before clocking the generator.
func (gen *PWM) TickEnable() bool {
	return gen.div.enable
}

// PeriodCount returns the current value of the period counter.
func (gen *PWM) PeriodCount() int {
	return gen.per.count
}

// DutyLatched returns the currently applied duty cycle value.
func (gen *PWM) DutyLatched() uint32 {
	return uint32(gen.lat.duty)
}

// Level returns the current output level without advancing the generator.
func (gen *PWM) Level() bool {
	return gen.cmp.level
}

// Trigger returns the current state of the trigger pulse without advancing
// the generator.
func (gen *PWM) Trigger() bool {
	return gen.lat.trigger
}
