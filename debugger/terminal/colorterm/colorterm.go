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

// Package colorterm implements the Terminal interface for the PWMGen
// debugger. It provides coloured output and command history. The terminal is
// put into raw mode for the duration of every read and restored afterwards.
package colorterm

import (
	"io"
	"os"

	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/debugger/terminal"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Failure is the curated error pattern for terminal failures.
const Failure = "colorterm: %v"

// control bytes recognised by the input loop.
const (
	byteCtrlC     = 0x03
	byteCtrlD     = 0x04
	byteBackspace = 0x08
	byteEsc       = 0x1b
	byteDelete    = 0x7f
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	input  *os.File
	output *os.File

	// terminal attributes as they were when Initialise() ran and with the
	// raw flags applied. the raw attributes are only in force during
	// TermRead()
	canAttr unix.Termios
	rawAttr unix.Termios

	history    []string
	historyIdx int
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	ct.input = os.Stdin
	ct.output = os.Stdout

	err := termios.Tcgetattr(ct.input.Fd(), &ct.canAttr)
	if err != nil {
		return curated.Errorf(Failure, err)
	}

	ct.rawAttr = ct.canAttr
	termios.Cfmakeraw(&ct.rawAttr)

	ct.history = make([]string, 0)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.canAttr)
	ct.output.WriteString("\r")
}

// TermRead implements the terminal.Input interface. The terminal is in raw
// mode while the user types; the line editor handles backspace and up/down
// history navigation.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	err := termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.rawAttr)
	if err != nil {
		return "", curated.Errorf(Failure, err)
	}
	defer func() {
		_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.canAttr)
	}()

	ct.print("%s%s%s", ansiPrompt, prompt, ansiNormal)

	line := make([]byte, 0, 255)
	ct.historyIdx = len(ct.history)

	b := make([]byte, 1)
	for {
		_, err := ct.input.Read(b)
		if err != nil {
			return "", curated.Errorf(Failure, err)
		}

		switch b[0] {
		case byteCtrlC:
			ct.print("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case byteCtrlD:
			ct.print("\r\n")
			return "", io.EOF

		case '\r', '\n':
			ct.print("\r\n")
			s := string(line)
			if s != "" {
				ct.history = append(ct.history, s)
			}
			return s, nil

		case byteBackspace, byteDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				ct.print("\b \b")
			}

		case byteEsc:
			// a two byte CSI sequence follows. anything that isn't an
			// up/down cursor key is discarded
			seq := make([]byte, 2)
			_, err := ct.input.Read(seq)
			if err != nil {
				return "", curated.Errorf(Failure, err)
			}
			if seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A':
				if ct.historyIdx > 0 {
					ct.historyIdx--
					line = ct.replaceLine(line, ct.history[ct.historyIdx])
				}
			case 'B':
				if ct.historyIdx < len(ct.history)-1 {
					ct.historyIdx++
					line = ct.replaceLine(line, ct.history[ct.historyIdx])
				} else if ct.historyIdx == len(ct.history)-1 {
					ct.historyIdx++
					line = ct.replaceLine(line, "")
				}
			}

		default:
			if b[0] >= 0x20 && b[0] < 0x7f {
				line = append(line, b[0])
				ct.print("%c", b[0])
			}
		}
	}
}

// replaceLine erases the currently displayed input and replaces it with the
// replacement string, returning the new line buffer.
func (ct *ColorTerminal) replaceLine(line []byte, replace string) []byte {
	for range line {
		ct.print("\b \b")
	}
	ct.print("%s", replace)
	return append(line[:0], replace...)
}
