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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/pwmgen/debugger"
	"github.com/jetsetilly/pwmgen/debugger/terminal"
	"github.com/jetsetilly/pwmgen/hardware/pwm"
	"github.com/jetsetilly/pwmgen/test"
)

// mockTerm implements the terminal.Terminal interface, feeding a script of
// commands to the debugger and accumulating everything printed.
type mockTerm struct {
	script []string
	output strings.Builder
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) TermRead(prompt string) (string, error) {
	if len(trm.script) == 0 {
		return "", io.EOF
	}
	s := trm.script[0]
	trm.script = trm.script[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	trm.output.WriteString(s)
	trm.output.WriteString("\n")
}

func startDebugger(t *testing.T, script ...string) *mockTerm {
	t.Helper()

	gen, err := pwm.New(512, 3, 64, 0)
	test.ExpectedSuccess(t, err)

	trm := &mockTerm{script: script}
	dbg := debugger.New(gen, trm)
	test.ExpectedSuccess(t, dbg.Start())

	return trm
}

func TestQuit(t *testing.T) {
	trm := startDebugger(t, "QUIT")
	if !strings.Contains(trm.output.String(), "type HELP") {
		t.Errorf("no welcome message printed")
	}
}

func TestStepAndState(t *testing.T) {
	trm := startDebugger(t, "STEP", "STEP 7", "STATE", "QUIT")

	// eight ticks with a divider of zero: one registration tick and seven
	// period counter advances
	if !strings.Contains(trm.output.String(), "tick=8") {
		t.Errorf("unexpected tick count in output:\n%s", trm.output.String())
	}
	if !strings.Contains(trm.output.String(), "prd=7/7") {
		t.Errorf("unexpected period count in output:\n%s", trm.output.String())
	}
}

func TestDutyAndWave(t *testing.T) {
	trm := startDebugger(t, "DUTY 4", "PERIOD", "WAVE 8", "PERIOD", "WAVE 8", "QUIT")

	// the first PERIOD command runs to the end of the initial period,
	// before the duty value has been applied
	if !strings.Contains(trm.output.String(), "_______|\n") {
		t.Errorf("unexpected initial waveform:\n%s", trm.output.String())
	}

	// the second shows the 50% duty cycle in effect
	if !strings.Contains(trm.output.String(), "----___|\n") {
		t.Errorf("unexpected waveform:\n%s", trm.output.String())
	}
}

func TestCommandErrors(t *testing.T) {
	trm := startDebugger(t, "FOO", "DUTY 99", "RESET MAYBE", "QUIT")

	out := trm.output.String()
	if !strings.Contains(out, "unknown command: FOO") {
		t.Errorf("no error for unknown command:\n%s", out)
	}
	if !strings.Contains(out, "range 0 to 8") {
		t.Errorf("no error for out of range duty:\n%s", out)
	}
	if !strings.Contains(out, "ON or OFF") {
		t.Errorf("no error for bad reset argument:\n%s", out)
	}
}

func TestResetLine(t *testing.T) {
	trm := startDebugger(t, "RESET ON", "PERIOD", "QUIT")

	// with the reset line held the trigger never fires
	if !strings.Contains(trm.output.String(), "no trigger seen") {
		t.Errorf("PERIOD command did not report the held reset line:\n%s", trm.output.String())
	}
}
