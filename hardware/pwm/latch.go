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

// latch double-buffers the duty cycle value. the externally presented value
// is sampled on every clock tick but is only adopted at a period boundary
// (or while reset is held). a mid-period change to the presented value is
// therefore invisible until the boundary next fires.
//
// the duty domain is [0, max] where max is Config.MaxCount. the upper value
// means 100% duty, which is why the domain is one count wider than the
// period counter.
type latch struct {
	duty int

	// trigger pulses for one tick when the latch adopts a value because of
	// the period boundary. adoption because of reset does not pulse it
	trigger bool
}

func (lt latch) String() string {
	return fmt.Sprintf("duty=%d trg=%v", lt.duty, lt.trigger)
}

// step advances the latch by one clock tick. enable and boundary are the
// registered tick enable and period boundary condition from the previous
// tick. pending is the externally presented duty value sampled this tick.
func (lt *latch) step(reset bool, enable bool, boundary bool, pending int) {
	if reset {
		lt.duty = pending
		lt.trigger = false
		return
	}
	if enable && boundary {
		lt.duty = pending
		lt.trigger = true
		return
	}
	lt.trigger = false
}
