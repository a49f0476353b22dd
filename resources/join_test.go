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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/kestrel/resources"
	"github.com/jetsetilly/kestrel/test"
)

func TestJoinPath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "base")
	t.Setenv(resources.EnvOverride, base)

	p, err := resources.JoinPath("screenshots", "frame.png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(base, "screenshots", "frame.png"))

	// parent directories are created but the file is not
	st, err := os.Stat(filepath.Join(base, "screenshots"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, st.IsDir())
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// the base is not prepended twice
	q, err := resources.JoinPath(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, p)
}

func TestBasePath(t *testing.T) {
	t.Setenv(resources.EnvOverride, "elsewhere")
	b, err := resources.BasePath()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, "elsewhere")
}
