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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/pwmgen/curated"
)

// default filenames for profiles written by the Check() function.
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

// cpuProfile wraps the run function with CPU profiling when enabled.
func cpuProfile(enabled bool, outFile string, run func() error) error {
	if enabled {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(CheckFailure, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(CheckFailure, err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

// memProfile writes a heap profile when enabled. Call after the measured
// run has completed.
func memProfile(enabled bool, outFile string) error {
	if enabled {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(CheckFailure, err)
		}
		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(CheckFailure, err)
		}
		f.Close()
	}

	return nil
}
