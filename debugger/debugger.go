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

// Package debugger is an interactive console for the PWM generator. It owns
// the reset line and the presented duty value, and clocks the generator in
// response to user commands while recording the output for the WAVE command.
package debugger

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/debugger/terminal"
	"github.com/jetsetilly/pwmgen/hardware/pwm"
	"github.com/jetsetilly/pwmgen/trace"
)

// Failure is the curated error pattern for errors originating in the
// debugger itself. Command errors are printed, not returned.
const Failure = "debugger: %v"

// the number of samples kept for the WAVE command.
const recorderDepth = 4096

// Debugger is the connection between the user interface (a terminal.Terminal
// implementation) and a PWM generator.
type Debugger struct {
	gen  *pwm.PWM
	term terminal.Terminal
	rec  *trace.Recorder

	// the state of the input lines presented to the generator on every tick
	reset bool
	duty  uint32

	// number of ticks serviced since the debugger started
	ticks uint64

	running bool
}

// New is the preferred method of initialisation for the Debugger type.
func New(gen *pwm.PWM, term terminal.Terminal) *Debugger {
	return &Debugger{
		gen:  gen,
		term: term,
		rec:  trace.NewRecorder(recorderDepth),
	}
}

// SetDuty sets the duty value presented to the generator on every tick, as
// though the user had issued the DUTY command.
func (dbg *Debugger) SetDuty(duty uint32) {
	dbg.duty = duty
}

// Start the main debugger loop. Returns when the user quits or interrupts
// the session.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf(Failure, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.gen.Config.String())
	dbg.term.TermPrintLine(terminal.StyleFeedback, "type HELP for a list of commands")

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead("[pwm] ")
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(Failure, err)
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// step the generator by the specified number of clock ticks, recording what
// an observer on the output lines would see.
func (dbg *Debugger) step(numTicks int) {
	for i := 0; i < numTicks; i++ {
		adv := dbg.gen.TickEnable()
		trg, lvl := dbg.gen.Step(dbg.reset, dbg.duty)
		dbg.rec.Add(adv, lvl, trg)
		dbg.ticks++
	}
}

// stepPeriod steps the generator until the trigger pulse is seen, meaning a
// new duty value has just been latched. the search is bounded; with the
// reset line held the trigger never fires.
func (dbg *Debugger) stepPeriod() bool {
	bound := 2 * (dbg.gen.Config.ClockDivider + 1) * dbg.gen.Config.MaxCount
	for i := 0; i < bound; i++ {
		adv := dbg.gen.TickEnable()
		trg, lvl := dbg.gen.Step(dbg.reset, dbg.duty)
		dbg.rec.Add(adv, lvl, trg)
		dbg.ticks++
		if trg {
			return true
		}
	}
	return false
}

func (dbg *Debugger) printState() {
	dbg.term.TermPrintLine(terminal.StyleFeedback,
		fmt.Sprintf("tick=%d %s", dbg.ticks, dbg.gen.String()),
	)
}
