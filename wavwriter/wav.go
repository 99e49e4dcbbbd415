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

// Package wavwriter allows writing of a recorded PWM waveform to disk as a
// WAV file, one 8-bit sample per tick enable event, so that the signal can
// be eyeballed in any audio editor or waveform viewer. Note that samples are
// buffered in memory in their entirety and written to disk by the End()
// function. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/logger"
)

// sample values for the two output levels. full scale for an unsigned 8-bit
// PCM stream
const (
	levelLow  = 0
	levelHigh = 255
)

// curated error patterns raised by the wavwriter package.
const (
	InvalidSampleRate = "wavwriter: sample rate must be a positive number of hertz (%d)"
	WriteFailure      = "wavwriter: %v"
)

// WavWriter buffers PWM output levels and encodes them on demand.
type WavWriter struct {
	filename string
	rate     int
	samples  []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// sample rate should be the tick enable rate of the generator being
// recorded (pwm.Config.TickRateHz()).
func New(filename string, sampleRateHz int) (*WavWriter, error) {
	if sampleRateHz <= 0 {
		return nil, curated.Errorf(InvalidSampleRate, sampleRateHz)
	}

	return &WavWriter{
		filename: filename,
		rate:     sampleRateHz,
		samples:  make([]int, 0),
	}, nil
}

// Add one output level to the buffer. Call once per tick enable event.
func (ww *WavWriter) Add(level bool) {
	v := levelLow
	if level {
		v = levelHigh
	}
	ww.samples = append(ww.samples, v)
}

// Len returns the number of samples buffered so far.
func (ww *WavWriter) Len() int {
	return len(ww.samples)
}

// End writes the buffered samples to disk.
func (ww *WavWriter) End() (rerr error) {
	f, err := os.Create(ww.filename)
	if err != nil {
		return curated.Errorf(WriteFailure, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WriteFailure, err)
		}
	}()

	enc := wav.NewEncoder(f, ww.rate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  ww.rate,
		},
		Data:           ww.samples,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WriteFailure, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WriteFailure, err)
	}

	logger.Logf("wavwriter", "%d samples (%dHz) written to %s", len(ww.samples), ww.rate, ww.filename)

	return nil
}
