// This file is part of Kestrel.
//
// Kestrel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kestrel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Kestrel.  If not, see <https://www.gnu.org/licenses/>.

package performance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/kestrel/performance"
	"github.com/jetsetilly/kestrel/test"
)

func TestCalcFPS(t *testing.T) {
	fps, acc := performance.CalcFPS(120, 2.0, 60)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, acc, 100.0)

	fps, acc = performance.CalcFPS(30, 1.0, 0)
	test.ExpectEquality(t, fps, 30.0)
	test.ExpectEquality(t, acc, 0.0)

	fps, _ = performance.CalcFPS(30, 0, 60)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("trace")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "snap")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectFailure(t, err)
}
