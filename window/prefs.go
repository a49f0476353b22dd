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

package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/kestrel/prefs"
)

// Preferences binds values in a preferences file to a window. Changing a
// value changes the window immediately.
type Preferences struct {
	w   *Window
	dsk *prefs.Disk

	BackgroundR prefs.Float
	BackgroundG prefs.Float
	BackgroundB prefs.Float

	// a limit of zero means no limit
	FPS prefs.Int

	Title prefs.String
}

// the preferences group used for window keys.
const prefsGroup = "window"

// NewPreferences creates a Preferences instance for the window, stored in the
// file at path. The values are initialised from the window and the file is
// not read until Load() is called.
func NewPreferences(w *Window, path string) (*Preferences, error) {
	p := &Preferences{w: w}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	bg := w.BackgroundColor()
	_ = p.BackgroundR.Set(float64(bg[0]))
	_ = p.BackgroundG.Set(float64(bg[1]))
	_ = p.BackgroundB.Set(float64(bg[2]))

	fps := 0
	if l := w.FramerateLimit(); l > 0 {
		fps = int(time.Second / l)
	}
	_ = p.FPS.Set(fps)
	_ = p.Title.Set(w.Title())

	colour := func(_ prefs.Value) error {
		r := p.BackgroundR.Get().(float64)
		g := p.BackgroundG.Get().(float64)
		b := p.BackgroundB.Get().(float64)
		p.w.SetBackgroundColor(float32(r), float32(g), float32(b))
		return nil
	}
	p.BackgroundR.SetHookPost(colour)
	p.BackgroundG.SetHookPost(colour)
	p.BackgroundB.SetHookPost(colour)

	inRange := func(v prefs.Value) error {
		if f := v.(float64); f < 0 || f > 1 {
			return fmt.Errorf("window: colour component out of range (%v)", f)
		}
		return nil
	}
	p.BackgroundR.SetHookPre(inRange)
	p.BackgroundG.SetHookPre(inRange)
	p.BackgroundB.SetHookPre(inRange)

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("window: negative frame limit (%d)", v)
		}
		return nil
	})
	p.FPS.SetHookPost(func(v prefs.Value) error {
		if fps := v.(int); fps > 0 {
			p.w.SetFramerateLimit(uint(fps))
		} else {
			p.w.RemoveFramerateLimit()
		}
		return nil
	})

	p.Title.SetMaxLen(256)
	p.Title.SetHookPost(func(v prefs.Value) error {
		p.w.SetTitle(v.(string))
		return nil
	})

	err = p.dsk.Add(fmt.Sprintf("%s.background.r", prefsGroup), &p.BackgroundR)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	err = p.dsk.Add(fmt.Sprintf("%s.background.g", prefsGroup), &p.BackgroundG)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	err = p.dsk.Add(fmt.Sprintf("%s.background.b", prefsGroup), &p.BackgroundB)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	err = p.dsk.Add(fmt.Sprintf("%s.fps", prefsGroup), &p.FPS)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	err = p.dsk.Add(fmt.Sprintf("%s.title", prefsGroup), &p.Title)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	return p, nil
}

// Load the preferences from disk and apply them to the window. A missing
// preferences file is not an error.
func (p *Preferences) Load() error {
	err := p.dsk.Load(false)
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Save the preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
