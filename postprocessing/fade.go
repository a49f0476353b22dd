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

package postprocessing

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/framebuffer"
	"github.com/jetsetilly/kestrel/gfx"
)

// Fade darkens the source towards black and back again over a period.
type Fade struct {
	ctx    gfx.Context
	period float32
	floor  float32

	t      float32
	width  float32
	height float32
}

// NewFade creates a fade effect with the period in seconds. The brightness
// never drops below floor, which is in the range zero to one.
func NewFade(ctx gfx.Context, period float32, floor float32) *Fade {
	return &Fade{
		ctx:    ctx,
		period: max(period, 0.001),
		floor:  mgl32.Clamp(floor, 0, 1),
	}
}

// Brightness returns the multiplier applied to the source colour by the next
// call to Draw().
func (e *Fade) Brightness() float32 {
	c := float32(math.Cos(2 * math.Pi * float64(e.t/e.period)))
	return e.floor + (1-e.floor)*(0.5+0.5*c)
}

// Update implements the Effect interface.
func (e *Fade) Update(dt, width, height, _, _ float32) {
	e.t = float32(math.Mod(float64(e.t+dt), float64(e.period)))
	e.width = width
	e.height = height
}

// Draw implements the Effect interface.
func (e *Fade) Draw(source *framebuffer.RenderTarget) {
	b := e.Brightness()

	// the source is blended with whatever is already on the screen so the
	// screen is cleared to opaque black first
	e.ctx.ClearColor(0, 0, 0, 1)
	e.ctx.Clear(gfx.ColorBufferBit)
	e.ctx.DrawTexture(source.Texture(), 0, 0, e.width, e.height, mgl32.Vec4{b, b, b, 1})
}
