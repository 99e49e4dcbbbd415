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

// divider produces one tick enable pulse every limit+1 clock ticks. the
// counter runs 0 to limit inclusive. the enable field is a registered
// signal: it reflects the divider condition evaluated on the *previous*
// clock tick. downstream components read it before step() is called for the
// current tick.
type divider struct {
	// copy of Config.ClockDivider
	limit int

	count  int
	enable bool
}

func (dv divider) String() string {
	return fmt.Sprintf("div=%d/%d enb=%v", dv.count, dv.limit, dv.enable)
}

// step advances the divider by one clock tick.
//
// the reset branch zeroes the counter and, like the terminal-count branch,
// asserts the enable for the following tick. with reset held the enable is
// therefore asserted every tick but every consumer of the signal is in its
// own reset branch so the assertion is not observable until reset releases.
func (dv *divider) step(reset bool) {
	if reset || dv.limit == 0 || dv.count == dv.limit {
		dv.count = 0
		dv.enable = true
		return
	}
	dv.count++
	dv.enable = false
}
