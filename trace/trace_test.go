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

package trace_test

import (
	"testing"

	"github.com/jetsetilly/pwmgen/hardware/pwm"
	"github.com/jetsetilly/pwmgen/test"
	"github.com/jetsetilly/pwmgen/trace"
)

// record a generator with an 8 step period and a divider of zero for the
// given number of clock ticks.
func record(t *testing.T, rec *trace.Recorder, numTicks int, duty uint32) {
	t.Helper()

	gen, err := pwm.New(512, 3, 64, 0)
	test.ExpectedSuccess(t, err)

	for i := 0; i < numTicks; i++ {
		adv := gen.TickEnable()
		trg, lvl := gen.Step(false, duty)
		rec.Add(adv, lvl, trg)
	}
}

func TestWaveform(t *testing.T) {
	rec := trace.NewRecorder(0)

	// 17 ticks: one registration tick plus sixteen enable events, spanning
	// the initial (duty not yet latched) period and one full duty=4 period
	record(t, rec, 17, 4)
	test.Equate(t, rec.Len(), 16)

	test.Equate(t, rec.Waveform(16), "_______|----___|")
	test.Equate(t, rec.Waveform(8), "----___|")
}

func TestPeriods(t *testing.T) {
	rec := trace.NewRecorder(0)

	// no complete period is seen until the second trigger
	record(t, rec, 16, 4)
	test.Equate(t, len(rec.Periods()), 0)

	rec = trace.NewRecorder(0)
	record(t, rec, 17, 4)
	test.Equate(t, len(rec.Periods()), 1)
	test.Equate(t, rec.Periods()[0].Total, 8)
	test.Equate(t, rec.Periods()[0].High, 4)

	// three more periods
	rec = trace.NewRecorder(0)
	record(t, rec, 17+24, 4)
	test.Equate(t, len(rec.Periods()), 4)
	for _, p := range rec.Periods() {
		test.Equate(t, p.Total, 8)
		test.Equate(t, p.High, 4)
	}
}

func TestRecorderLimit(t *testing.T) {
	rec := trace.NewRecorder(4)

	record(t, rec, 17, 4)
	test.Equate(t, rec.Len(), 4)
	test.Equate(t, rec.Waveform(4), "___|")

	// period statistics are unaffected by the sample limit
	test.Equate(t, len(rec.Periods()), 1)
	test.Equate(t, rec.Periods()[0].High, 4)
}

func TestLevels(t *testing.T) {
	rec := trace.NewRecorder(0)
	record(t, rec, 17, 4)

	levels := rec.Levels()
	test.Equate(t, len(levels), 16)

	high := 0
	for _, l := range levels {
		if l {
			high++
		}
	}
	test.Equate(t, high, 4)
}
