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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/kestrel/prefs"
	"github.com/jetsetilly/kestrel/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1.0))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestNumbersAndStrings(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	var red prefs.Float
	var title prefs.String
	test.ExpectSuccess(t, dsk.Add("window.fps", &fps))
	test.ExpectSuccess(t, dsk.Add("window.background.r", &red))
	test.ExpectSuccess(t, dsk.Add("window.title", &title))

	test.ExpectSuccess(t, fps.Set("60"))
	test.ExpectFailure(t, fps.Set("sixty"))
	test.ExpectSuccess(t, red.Set(float32(0.5)))
	title.SetMaxLen(7)
	test.ExpectSuccess(t, title.Set("Kestrel viewer"))
	test.ExpectEquality(t, title.String(), "Kestrel")

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "window.background.r :: 0.500\nwindow.fps :: 60\nwindow.title :: Kestrel\n")

	// load into fresh values
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps2 prefs.Int
	var red2 prefs.Float
	test.ExpectSuccess(t, dsk.Add("window.fps", &fps2))
	test.ExpectSuccess(t, dsk.Add("window.background.r", &red2))
	test.DemandSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, fps2.Get().(int), 60)
	test.ExpectEquality(t, red2.Get().(float64), 0.5)

	// saving the smaller disk keeps the title entry of the larger one
	test.ExpectSuccess(t, fps2.Set(30))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "window.background.r :: 0.500\nwindow.fps :: 30\nwindow.title :: Kestrel\n")
}

func TestDiskErrors(t *testing.T) {
	_, err := prefs.NewDisk("")
	test.ExpectFailure(t, err)

	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectSuccess(t, errors.Is(dsk.Add("key", &v), prefs.DuplicateKey))
	test.ExpectFailure(t, dsk.Add("bad::key", &v))
	test.ExpectFailure(t, dsk.Add(" padded", &v))

	// file does not exist yet
	test.ExpectSuccess(t, errors.Is(dsk.Load(true), prefs.NoPrefsFile))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook prevents the value from changing
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, post, 0)
}

func TestCommandLine(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	var vsync prefs.Bool
	test.ExpectSuccess(t, dsk.Add("window.fps", &fps))
	test.ExpectSuccess(t, dsk.Add("canvas.vsync", &vsync))

	test.ExpectSuccess(t, fps.Set(60))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("window.fps::25; canvas.vsync :: true; unknown::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, fps.Get().(int), 25)
	test.ExpectEquality(t, vsync.Get().(bool), true)

	// only the unused entry remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
