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

// Package pwm implements a parameterizable pulse-width-modulation signal
// generator driven by a single clock. The generator is the software
// equivalent of a small synchronous hardware design and is modelled the same
// way: a handful of registered signals that all update atomically on every
// clock tick.
//
// A generator is created with New(), which derives the clock division needed
// to hit the requested output frequency from the given system clock and
// resolution. If the closest achievable frequency is outside the requested
// tolerance then New() fails and no generator is created. There is no way to
// reach the per-tick interface with an invalid configuration, just as an
// invalid hardware elaboration never reaches simulation.
//
// Once created, the caller clocks the generator with Step(), once per clock
// period:
//
//	trigger, level := gen.Step(false, duty)
//
// The level return value is the instantaneous PWM output. The trigger return
// value pulses for one tick when a newly presented duty value has been
// latched at a period boundary; it is the caller's cue that the next duty
// value can be presented. The duty value is sampled on every tick but only
// takes effect at a period boundary (or while reset is held).
//
// The internal signals divide into four components, each of which mirrors a
// process in the hardware description: the tick divider, the period counter,
// the duty latch and the output comparator. The tick enable signal produced
// by the divider is registered, meaning it is visible to the other components
// one tick after the divider condition that raised it. Step() preserves that
// latency exactly by evaluating every component against the signal values
// registered by the previous call.
package pwm
