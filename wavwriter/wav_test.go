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

package wavwriter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pwmgen/curated"
	"github.com/jetsetilly/pwmgen/test"
	"github.com/jetsetilly/pwmgen/wavwriter"
)

func TestInvalidSampleRate(t *testing.T) {
	_, err := wavwriter.New("out.wav", 0)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, wavwriter.InvalidSampleRate))
}

func TestEncode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	ww, err := wavwriter.New(fn, 512)
	test.ExpectedSuccess(t, err)

	// one full period of a 50% duty square wave
	for i := 0; i < 8; i++ {
		ww.Add(i < 4)
	}
	test.Equate(t, ww.Len(), 8)

	test.ExpectedSuccess(t, ww.End())

	d, err := os.ReadFile(fn)
	test.ExpectedSuccess(t, err)

	if !bytes.HasPrefix(d, []byte("RIFF")) {
		t.Errorf("output file does not start with a RIFF header")
	}
	if !bytes.Contains(d[:16], []byte("WAVE")) {
		t.Errorf("output file does not identify as a WAVE file")
	}
}
