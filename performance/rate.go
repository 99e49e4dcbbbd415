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

package performance

import "github.com/jetsetilly/pwmgen/hardware/pwm"

// CalcRate takes the number of clock ticks serviced and the duration (in
// seconds) it took to service them, and returns the tick rate, the
// equivalent rate of full PWM periods and the speed as a percentage of the
// real clock the generator is configured for.
func CalcRate(conf pwm.Config, ticks uint64, duration float64) (tickRate float64, periodRate float64, speed float64) {
	tickRate = float64(ticks) / duration
	periodRate = tickRate / float64((conf.ClockDivider+1)*conf.MaxCount)
	speed = 100 * tickRate / float64(conf.ClockFreqHz)
	return tickRate, periodRate, speed
}
