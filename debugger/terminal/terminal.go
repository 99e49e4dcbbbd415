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

// Package terminal defines the operations required for user/debugger
// interaction. Two implementations ship with this repository: plainterm, a
// bare-bones terminal that leaves the terminal in whatever mode it found it;
// and colorterm, which puts the terminal into raw mode and adds colour and
// command history.
package terminal

// UserInterrupt is the curated error pattern returned by TermRead() when the
// user has interrupted the session (with ctrl-c for example). It is an
// instruction to the debugging loop, not a fault.
const UserInterrupt = "user interrupt"

// Style is used by the TermPrintLine() function to decorate output.
type Style int

// List of valid Style values.
const (
	// input that has been echoed back to the user. terminals that echo as
	// the user types should ignore lines of this style
	StyleEcho Style = iota

	// information from the debugger in response to a command
	StyleFeedback

	// help text
	StyleHelp

	// command errors
	StyleError
)

// Input defines the operations required for reading user input.
type Input interface {
	// TermRead presents the prompt and waits for a line of user input
	TermRead(prompt string) (string, error)
}

// Output defines the operations required for printing to the user.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the debugger for user
// interaction.
type Terminal interface {
	Input
	Output

	// Initialise performs any setting up required for the terminal
	Initialise() error

	// CleanUp performs any tidying up required for the terminal, returning
	// it to the state Initialise() found it in
	CleanUp()
}
