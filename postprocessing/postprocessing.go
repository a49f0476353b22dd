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

// Package postprocessing defines the effect slot of the render loop and two
// simple effects.
//
// When an effect is attached to a frame, the scene is drawn into an
// offscreen render target. The screen is then selected and the effect is
// given the offscreen target to draw from.
package postprocessing

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/framebuffer"
	"github.com/jetsetilly/kestrel/gfx"
)

// Effect reads a render target and writes the currently selected target.
type Effect interface {
	// Update is called once per frame, before Draw(). The dt value is the
	// time in seconds since the previous frame. The width and height are the
	// dimensions of the screen and the clip planes are those of the active
	// camera.
	Update(dt, width, height, znear, zfar float32)

	// Draw the effect using the source render target.
	Draw(source *framebuffer.RenderTarget)
}

var opaque = mgl32.Vec4{1, 1, 1, 1}

// Passthrough copies the source to the screen unchanged.
type Passthrough struct {
	ctx    gfx.Context
	width  float32
	height float32
}

// NewPassthrough is the preferred method of initialisation for the
// Passthrough type.
func NewPassthrough(ctx gfx.Context) *Passthrough {
	return &Passthrough{ctx: ctx}
}

// Update implements the Effect interface.
func (e *Passthrough) Update(_, width, height, _, _ float32) {
	e.width = width
	e.height = height
}

// Draw implements the Effect interface.
func (e *Passthrough) Draw(source *framebuffer.RenderTarget) {
	// translucent source pixels must not reveal the previous frame
	e.ctx.ClearColor(0, 0, 0, 1)
	e.ctx.Clear(gfx.ColorBufferBit)
	e.ctx.DrawTexture(source.Texture(), 0, 0, e.width, e.height, opaque)
}
