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

package imguiui

import (
	"testing"

	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/test"
)

func TestMouseButtonIndex(t *testing.T) {
	idx, ok := mouseButtonIndex(event.ButtonLeft)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, idx, 0)

	idx, ok = mouseButtonIndex(event.ButtonRight)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, idx, 1)

	idx, ok = mouseButtonIndex(event.ButtonMiddle)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, idx, 2)

	_, ok = mouseButtonIndex(event.Button6)
	test.ExpectFailure(t, ok)
}

func TestMouseButtonLatch(t *testing.T) {
	var mb mouseButtons

	// press and release between frames is still seen as a press
	mb.set(0, true)
	mb.set(0, false)
	st := mb.frame()
	test.ExpectSuccess(t, st[0])
	test.ExpectFailure(t, st[1])

	// and only for one frame
	st = mb.frame()
	test.ExpectFailure(t, st[0])

	// a held button remains down
	mb.set(1, true)
	st = mb.frame()
	test.ExpectSuccess(t, st[1])
	st = mb.frame()
	test.ExpectSuccess(t, st[1])

	mb.set(1, false)
	st = mb.frame()
	test.ExpectFailure(t, st[1])
}

func TestWheelDelta(t *testing.T) {
	dx, dy := wheelDelta(0, 3.5)
	test.ExpectEquality(t, dx, 0.0)
	test.ExpectEquality(t, dy, 1.0)

	dx, dy = wheelDelta(-0.1, -12)
	test.ExpectEquality(t, dx, -1.0)
	test.ExpectEquality(t, dy, -1.0)
}

func TestDisplaySize(t *testing.T) {
	sz := displaySize(1600, 1200, 2.0)
	test.ExpectEquality(t, sz.X, 800.0)
	test.ExpectEquality(t, sz.Y, 600.0)

	sz = displaySize(800, 600, 0)
	test.ExpectEquality(t, sz.X, 800.0)
	test.ExpectEquality(t, sz.Y, 600.0)
}

func TestKeyMapping(t *testing.T) {
	seen := make(map[event.Key]bool)
	for _, k := range keyMapping {
		test.ExpectSuccess(t, k > event.KeyUnknown && int(k) < event.NumKeys)
		test.ExpectFailure(t, seen[k], k)
		seen[k] = true
	}
}
