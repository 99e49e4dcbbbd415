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

// Package performance measures how fast the PWM generator can be clocked on
// the host machine. The Check() function runs a generator flat out for a
// given duration and reports the tick rate, the equivalent PWM period rate
// and the speed relative to the real clock the generator was configured
// with. CPU and memory profiles can be requested for the measured run.
package performance
