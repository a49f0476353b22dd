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

package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/event"
)

// FixedPlanar is a 2D camera centred on a point. The mouse wheel zooms in and
// out.
type FixedPlanar struct {
	at     mgl32.Vec2
	zoom   float32
	width  float32
	height float32
}

// NewFixedPlanar creates a 2D camera centred on the point with a zoom of one.
func NewFixedPlanar(at mgl32.Vec2) *FixedPlanar {
	return &FixedPlanar{
		at:     at,
		zoom:   1,
		width:  800,
		height: 600,
	}
}

// Zoom returns the current zoom. A zoom of one maps one world unit to one
// pixel.
func (c *FixedPlanar) Zoom() float32 {
	return c.zoom
}

// HandleEvent implements the PlanarCamera interface.
func (c *FixedPlanar) HandleEvent(_ Surface, ev event.Event) {
	switch ev := ev.(type) {
	case event.EventFramebufferSize:
		if ev.Width > 0 && ev.Height > 0 {
			c.width = float32(ev.Width)
			c.height = float32(ev.Height)
		}
	case event.EventScroll:
		c.zoom *= float32(math.Pow(1.1, ev.Y))
		c.zoom = mgl32.Clamp(c.zoom, 0.01, 100)
	}
}

// Update implements the PlanarCamera interface.
func (c *FixedPlanar) Update(_ Surface) {
}

// ToScreen converts a point in the world to a framebuffer position, with the
// origin in the bottom-left corner.
func (c *FixedPlanar) ToScreen(p mgl32.Vec2) mgl32.Vec2 {
	return p.Sub(c.at).Mul(c.zoom).Add(mgl32.Vec2{c.width / 2, c.height / 2})
}

// Transformation returns the matrix that maps world coordinates to normalised
// device coordinates.
func (c *FixedPlanar) Transformation() mgl32.Mat3 {
	return mgl32.Scale2D(2*c.zoom/c.width, 2*c.zoom/c.height).Mul3(mgl32.Translate2D(-c.at.X(), -c.at.Y()))
}
