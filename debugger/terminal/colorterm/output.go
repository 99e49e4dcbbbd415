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

package colorterm

import (
	"fmt"

	"github.com/jetsetilly/pwmgen/debugger/terminal"
)

// ANSI sequences for the terminal styles.
const (
	ansiNormal = "\033[0m"
	ansiPrompt = "\033[1m"
	ansiHelp   = "\033[2m"
	ansiError  = "\033[31m"
)

func (ct *ColorTerminal) print(format string, a ...interface{}) {
	ct.output.WriteString(fmt.Sprintf(format, a...))
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	// the raw mode line editor has echoed the input already
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleHelp:
		ct.print("%s%s%s\n", ansiHelp, s, ansiNormal)
	case terminal.StyleError:
		ct.print("%s* %s%s\n", ansiError, s, ansiNormal)
	default:
		ct.print("%s\n", s)
	}
}
