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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/debugger"
	"github.com/jetsetilly/pwmgen/debugger/terminal"
	"github.com/jetsetilly/pwmgen/debugger/terminal/colorterm"
	"github.com/jetsetilly/pwmgen/debugger/terminal/plainterm"
	"github.com/jetsetilly/pwmgen/hardware/clocks"
	"github.com/jetsetilly/pwmgen/hardware/pwm"
	"github.com/jetsetilly/pwmgen/logger"
	"github.com/jetsetilly/pwmgen/performance"
	"github.com/jetsetilly/pwmgen/statsview"
	"github.com/jetsetilly/pwmgen/trace"
	"github.com/jetsetilly/pwmgen/wavwriter"
)

// curated error patterns raised by the main program.
const (
	UnknownMode = "pwmgen: unknown sub-mode: %s (available: %s)"
	InvalidDuty = "pwmgen: duty value %d is outside 0 to %d"
)

const availableModes = "RUN, DEBUG, PERFORMANCE, WAV"

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch picks the sub-mode from the command line and runs it. The first
// argument, if it isn't a flag, names the mode; RUN is the default.
func launch(output io.Writer, args []string) int {
	mode := "RUN"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode = strings.ToUpper(args[0])
		args = args[1:]
	}

	var err error

	switch mode {
	case "RUN":
		err = run(output, args)
	case "DEBUG":
		err = debug(output, args)
	case "PERFORMANCE":
		err = perform(output, args)
	case "WAV":
		err = wavExport(output, args)
	default:
		err = curated.Errorf(UnknownMode, mode, availableModes)
	}

	if err != nil {
		// a help request has been dealt with by the flag package already
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "* %s\n", err)
		return 10
	}

	return 0
}

// genFlags are the flags common to every sub-mode: the construction
// arguments of the generator and the duty value to present.
type genFlags struct {
	clock int
	bits  int
	freq  int
	tol   int
	duty  int
}

func addGenFlags(flags *flag.FlagSet) *genFlags {
	gf := &genFlags{}
	flags.IntVar(&gf.clock, "clock", clocks.Crystal100MHz, "system clock frequency (Hz)")
	flags.IntVar(&gf.bits, "bits", 8, "counter resolution (bits)")
	flags.IntVar(&gf.freq, "freq", 2000, "target PWM frequency (Hz)")
	flags.IntVar(&gf.tol, "tol", 500, "acceptable frequency tolerance (Hz)")
	flags.IntVar(&gf.duty, "duty", 128, "duty cycle value (0 to 2^bits)")
	return gf
}

// create the generator from the parsed flags. out-of-range duty values are
// caught here, at the caller boundary, rather than inside the generator.
func (gf genFlags) create() (*pwm.PWM, uint32, error) {
	gen, err := pwm.New(gf.clock, gf.bits, gf.freq, gf.tol)
	if err != nil {
		return nil, 0, err
	}
	if gf.duty < 0 || gf.duty > gen.Config.MaxCount {
		return nil, 0, curated.Errorf(InvalidDuty, gf.duty, gen.Config.MaxCount)
	}
	return gen, uint32(gf.duty), nil
}

// run clocks the generator for a number of PWM periods and prints the
// resulting waveform and per-period statistics.
func run(output io.Writer, args []string) error {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	gf := addGenFlags(flags)
	periods := flags.Int("periods", 3, "number of PWM periods to run for")
	wave := flags.Int("wave", 64, "number of waveform samples to print")
	log := flags.Bool("log", false, "echo log entries as they are raised")

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(output)
	}

	gen, duty, err := gf.create()
	if err != nil {
		return err
	}

	fmt.Fprintln(output, gen.Config.String())

	rec := trace.NewRecorder(0)

	// the extra tick accounts for the registration delay of the first tick
	// enable after construction
	numTicks := *periods*(gen.Config.ClockDivider+1)*gen.Config.MaxCount + 1

	for i := 0; i < numTicks; i++ {
		adv := gen.TickEnable()
		trg, lvl := gen.Step(false, duty)
		rec.Add(adv, lvl, trg)
	}

	fmt.Fprintln(output, rec.Waveform(*wave))

	for i, p := range rec.Periods() {
		fmt.Fprintf(output, "period %d: high for %d of %d steps\n", i, p.High, p.Total)
	}

	return nil
}

// debug starts the interactive console.
func debug(output io.Writer, args []string) error {
	flags := flag.NewFlagSet("debug", flag.ContinueOnError)
	gf := addGenFlags(flags)
	termType := flags.String("term", "color", "terminal type to use (color or plain)")

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	gen, duty, err := gf.create()
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch *termType {
	case "color":
		term = &colorterm.ColorTerminal{}
	case "plain":
		term = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("pwmgen: unknown terminal type: %s", *termType)
	}

	dbg := debugger.New(gen, term)
	dbg.SetDuty(duty)

	return dbg.Start()
}

// perform measures how fast the generator can be clocked on this machine.
func perform(output io.Writer, args []string) error {
	flags := flag.NewFlagSet("performance", flag.ContinueOnError)
	gf := addGenFlags(flags)
	duration := flags.String("duration", "5s", "run duration (time.Duration format)")
	cpuprofile := flags.Bool("cpuprofile", false, "write a CPU profile of the run")
	memprofile := flags.Bool("memprofile", false, "write a heap profile of the run")
	stats := flags.Bool("statsview", false, "run the statsview HTTP server during the run")

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	gen, duty, err := gf.create()
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	return performance.Check(output, *cpuprofile, *memprofile, gen, duty, *duration)
}

// wavExport runs the generator and writes the output waveform to a WAV
// file, one sample per resolution step.
func wavExport(output io.Writer, args []string) error {
	flags := flag.NewFlagSet("wav", flag.ContinueOnError)
	gf := addGenFlags(flags)
	outFile := flags.String("o", "pwm.wav", "output filename")
	periods := flags.Int("periods", 100, "number of PWM periods to record")

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	gen, duty, err := gf.create()
	if err != nil {
		return err
	}

	ww, err := wavwriter.New(*outFile, gen.Config.TickRateHz())
	if err != nil {
		return err
	}

	numTicks := *periods*(gen.Config.ClockDivider+1)*gen.Config.MaxCount + 1

	for i := 0; i < numTicks; i++ {
		adv := gen.TickEnable()
		_, lvl := gen.Step(false, duty)
		if adv {
			ww.Add(lvl)
		}
	}

	err = ww.End()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d samples written to %s\n", ww.Len(), *outFile)

	return nil
}
