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

// Package clocks defines constant values for the system clock rates commonly
// found driving PWM peripherals. The values are in hertz and are suitable for
// the clock frequency argument of pwm.New().
//
// They are a convenience only. Any positive clock frequency is accepted by
// the pwm package.
package clocks

const (
	Crystal1MHz   = 1_000_000
	Crystal8MHz   = 8_000_000
	Crystal12MHz  = 12_000_000
	Crystal16MHz  = 16_000_000
	Crystal25MHz  = 25_000_000
	Crystal48MHz  = 48_000_000
	Crystal50MHz  = 50_000_000
	Crystal100MHz = 100_000_000
	Crystal125MHz = 125_000_000
	Crystal200MHz = 200_000_000
)
