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

import "fmt"

// period counts the resolution steps of one PWM period, advancing only on
// tick enable events and wrapping at max. wrapping, not saturating: the
// counter cycles 0 to max-1 continuously for the lifetime of the generator.
type period struct {
	// copy of Config.MaxCount
	max int

	count int
}

func (pc period) String() string {
	return fmt.Sprintf("prd=%d/%d", pc.count, pc.max-1)
}

// boundary is true when the counter is on the last step of the period. a
// coincident tick enable wraps the counter and is the condition on which the
// duty latch accepts a new value.
func (pc period) boundary() bool {
	return pc.count == pc.max-1
}

// step advances the counter by one clock tick. enable is the registered tick
// enable from the previous tick.
func (pc *period) step(reset bool, enable bool) {
	if reset {
		pc.count = 0
		return
	}
	if enable {
		pc.count++
		if pc.count >= pc.max {
			pc.count = 0
		}
	}
}
