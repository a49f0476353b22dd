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
	"time"

	"github.com/jetsetilly/kestrel/framebuffer"
)

// PostProcessTarget returns the offscreen target used when a frame has a
// post-processing effect.
func (w *Window) PostProcessTarget() *framebuffer.RenderTarget {
	return w.postProcess
}

// SetClock replaces the clock used for frame timing and the function used by
// the frame limiter to sleep.
func (w *Window) SetClock(now func() time.Time, sleep func(time.Duration)) {
	w.pacer.SetClock(now, sleep)
	w.prevFrame = now()
}
