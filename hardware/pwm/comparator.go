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

// comparator derives the output level from the period counter and the
// latched duty value. the level is registered and only re-evaluated on tick
// enable events; between enable events it holds.
type comparator struct {
	level bool
}

func (cm comparator) String() string {
	return fmt.Sprintf("out=%v", cm.level)
}

// step advances the comparator by one clock tick. count and duty are the
// registered period count and latched duty from the previous tick. the
// output is high while count is below duty: a duty of zero gives a
// constantly low period and a duty of MaxCount a constantly high one.
func (cm *comparator) step(reset bool, enable bool, count int, duty int) {
	if reset {
		cm.level = false
		return
	}
	if enable {
		cm.level = count < duty
	}
}
