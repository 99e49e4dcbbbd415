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

package debugger

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/debugger/terminal"
)

// curated error patterns for command errors.
const (
	UnknownCommand  = "unknown command: %s"
	CommandArgument = "%s: %s"
)

// the list of debugger commands and the help text for each.
var help = map[string]string{
	"STEP":   "step the generator by one clock tick (or by the number of ticks given)",
	"PERIOD": "step the generator until the next trigger pulse",
	"DUTY":   "print or set the duty value presented to the generator",
	"RESET":  "print or set the state of the reset line (ON or OFF)",
	"STATE":  "print the registered signals of the generator",
	"WAVE":   "print the waveform of the last 64 (or the number given) resolution steps",
	"MEMVIZ": "write a graphviz visualisation of the generator state to the named file",
	"HELP":   "print this help",
	"QUIT":   "quit the debugger",
}

// parseInput splits input into individual commands (separated by semicolons)
// and runs each in turn.
func (dbg *Debugger) parseInput(input string) error {
	for _, cmd := range strings.Split(input, ";") {
		err := dbg.parseCommand(strings.Fields(cmd))
		if err != nil {
			return err
		}
	}
	return nil
}

func (dbg *Debugger) parseCommand(toks []string) error {
	if len(toks) == 0 {
		return nil
	}

	cmd := strings.ToUpper(toks[0])
	args := toks[1:]

	switch cmd {
	case "STEP":
		num := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf(CommandArgument, cmd, "number of ticks required")
			}
			num = n
		}
		dbg.step(num)
		dbg.printState()

	case "PERIOD":
		if !dbg.stepPeriod() {
			return curated.Errorf(CommandArgument, cmd, "no trigger seen (reset line held?)")
		}
		dbg.printState()

	case "DUTY":
		if len(args) == 0 {
			dbg.term.TermPrintLine(terminal.StyleFeedback,
				fmt.Sprintf("latched=%d pending=%d", dbg.gen.DutyLatched(), dbg.duty),
			)
			return nil
		}
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 || v > dbg.gen.Config.MaxCount {
			return curated.Errorf(CommandArgument, cmd,
				fmt.Sprintf("value in the range 0 to %d required", dbg.gen.Config.MaxCount),
			)
		}
		dbg.duty = uint32(v)

	case "RESET":
		if len(args) == 0 {
			dbg.term.TermPrintLine(terminal.StyleFeedback,
				fmt.Sprintf("reset line is %v", dbg.reset),
			)
			return nil
		}
		switch strings.ToUpper(args[0]) {
		case "ON":
			dbg.reset = true
		case "OFF":
			dbg.reset = false
		default:
			return curated.Errorf(CommandArgument, cmd, "ON or OFF required")
		}

	case "STATE":
		dbg.printState()

	case "WAVE":
		num := 64
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf(CommandArgument, cmd, "number of samples required")
			}
			num = n
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.rec.Waveform(num))

	case "MEMVIZ":
		if len(args) == 0 {
			return curated.Errorf(CommandArgument, cmd, "output filename required")
		}
		buf := &bytes.Buffer{}
		memviz.Map(buf, dbg.gen)
		err := os.WriteFile(args[0], buf.Bytes(), 0644)
		if err != nil {
			return curated.Errorf(CommandArgument, cmd, err.Error())
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("dot graph written to %s", args[0]),
		)

	case "HELP":
		keys := make([]string, 0, len(help))
		for k := range help {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-8s %s", k, help[k]))
		}

	case "QUIT":
		dbg.running = false

	default:
		return curated.Errorf(UnknownCommand, toks[0])
	}

	return nil
}
