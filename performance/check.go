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

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/hardware/pwm"
)

// CheckFailure is the curated error pattern for errors raised by Check().
const CheckFailure = "performance: %v"

// the number of clock ticks between checks of the duration timer. checking
// the timer channel is expensive relative to a Step() and would dominate
// the measurement if done every tick.
const performanceBrake = 1_000_000

// Check runs the generator flat out for the specified duration and writes a
// summary of the measured rates to output. The duty value is presented on
// every tick, as a real caller would.
func Check(output io.Writer, cpuprofile bool, memprofile bool, gen *pwm.PWM, duty uint32, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckFailure, err)
	}

	var ticks uint64
	var elapsed float64

	runner := func() error {
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0
		start := time.Now()

		for {
			gen.Step(false, duty)
			ticks++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					elapsed = time.Since(start).Seconds()
					return nil
				default:
				}
			}
		}
	}

	err = cpuProfile(cpuprofile, cpuProfileFile, runner)
	if err != nil {
		return err
	}

	err = memProfile(memprofile, memProfileFile)
	if err != nil {
		return err
	}

	tickRate, periodRate, speed := CalcRate(gen.Config, ticks, elapsed)

	output.Write([]byte(fmt.Sprintf("%.2f million ticks/sec\n", tickRate/1_000_000)))
	output.Write([]byte(fmt.Sprintf("%.2f PWM periods/sec\n", periodRate)))
	output.Write([]byte(fmt.Sprintf("%.2f%% the speed of a %dHz clock\n", speed, gen.Config.ClockFreqHz)))

	return nil
}
