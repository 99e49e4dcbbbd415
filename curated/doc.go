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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like Errorf() in the fmt
// package, but the pattern is kept and used to differentiate curated errors:
//
//	e := curated.Errorf("pwm: bad value of %d", 10)
//
//	if curated.Is(e, "pwm: bad value of %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in a chain of wrapped curated errors. Packages in this repository
// declare their error patterns as exported string constants so that callers
// have something concrete to test against.
package curated
