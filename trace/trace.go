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

// Package trace records the output of a PWM generator as it is clocked and
// makes the recording available as an ASCII waveform and as per-period
// statistics.
//
// The recorder is a passive observer. The caller clocks the generator and
// forwards what it sees, once per clock tick:
//
//	adv := gen.TickEnable()
//	trg, lvl := gen.Step(false, duty)
//	rec.Add(adv, lvl, trg)
//
// Only ticks on which the tick enable was consumed are recorded, giving one
// sample per resolution step of the PWM period. Clock ticks between enable
// events carry no new information, the output level being held.
package trace

import (
	"strings"
)

// sample is the generator output at one tick enable event.
type sample struct {
	level   bool
	trigger bool
}

// Period summarises one complete PWM period: the number of samples for which
// the output was high and the total number of samples.
type Period struct {
	High  int
	Total int
}

// Recorder accumulates samples from a PWM generator. Use NewRecorder() to
// create an instance.
type Recorder struct {
	// maximum number of samples kept. oldest samples are dropped first.
	// period statistics are unaffected by the limit
	limit int

	samples []sample
	periods []Period

	// the period currently being accumulated. periods are only counted once
	// the first trigger has been seen; before that the phase of the period
	// counter is unknown to the recorder
	cur  Period
	open bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. A limit of zero keeps every sample.
func NewRecorder(limit int) *Recorder {
	return &Recorder{
		limit:   limit,
		samples: make([]sample, 0),
	}
}

// Add a new observation. enable should be the registered tick enable read
// before the generator was clocked; level and trigger are the Step() return
// values. Observations without the enable are discarded.
func (rec *Recorder) Add(enable bool, level bool, trigger bool) {
	if !enable {
		return
	}

	rec.samples = append(rec.samples, sample{level: level, trigger: trigger})
	if rec.limit > 0 && len(rec.samples) > rec.limit {
		rec.samples = rec.samples[len(rec.samples)-rec.limit:]
	}

	// the trigger sample is the last sample of the period being closed
	if rec.open {
		rec.cur.Total++
		if level {
			rec.cur.High++
		}
	}

	if trigger {
		if rec.open {
			rec.periods = append(rec.periods, rec.cur)
		}
		rec.cur = Period{}
		rec.open = true
	}
}

// Len returns the number of samples currently held.
func (rec *Recorder) Len() int {
	return len(rec.samples)
}

// Levels returns the recorded output levels, one per tick enable event.
func (rec *Recorder) Levels() []bool {
	l := make([]bool, len(rec.samples))
	for i, s := range rec.samples {
		l[i] = s.level
	}
	return l
}

// Periods returns the statistics for every complete period seen so far.
func (rec *Recorder) Periods() []Period {
	return rec.periods
}

// Waveform returns an ASCII rendering of the most recent num samples. A high
// sample is drawn as '-', a low sample as '_' and a sample on which the
// trigger pulsed as '|'.
func (rec *Recorder) Waveform(num int) string {
	if num > len(rec.samples) {
		num = len(rec.samples)
	}

	s := strings.Builder{}
	for _, smp := range rec.samples[len(rec.samples)-num:] {
		switch {
		case smp.trigger:
			s.WriteRune('|')
		case smp.level:
			s.WriteRune('-')
		default:
			s.WriteRune('_')
		}
	}
	return s.String()
}
