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

package text

import (
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type draw struct {
	s     string
	pos   mgl32.Vec2
	scale float32
	font  *Font
	col   mgl32.Vec3
}

type faceKey struct {
	font  *Font
	scale float32
}

// Renderer accumulates strings and draws them at the end of a frame.
type Renderer struct {
	ctx     gfx.Context
	texture uint32

	queue []draw
	faces map[faceKey]font.Face

	// the canvas is reused between frames if the size doesn't change
	canvas *image.NRGBA
	upload []byte
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(ctx gfx.Context) *Renderer {
	return &Renderer{
		ctx:     ctx,
		texture: ctx.CreateTexture(),
		faces:   make(map[faceKey]font.Face),
	}
}

// DrawText queues a string for drawing. The position is in framebuffer pixels
// with the origin in the top-left corner and is the top-left of the first
// line of text. The scale is the height of the font in pixels. A nil font
// means the default font.
func (r *Renderer) DrawText(s string, pos mgl32.Vec2, scale float32, f *Font, col mgl32.Vec3) {
	if f == nil {
		f = DefaultFont()
	}
	r.queue = append(r.queue, draw{s: s, pos: pos, scale: scale, font: f, col: col})
}

// Pending returns the number of queued strings.
func (r *Renderer) Pending() int {
	return len(r.queue)
}

func (r *Renderer) face(f *Font, scale float32) font.Face {
	k := faceKey{font: f, scale: scale}
	if fc, ok := r.faces[k]; ok {
		return fc
	}
	fc, err := f.face(scale)
	if err != nil {
		logger.Logf(logger.Allow, "text", "%s: %v", f, err)
		return nil
	}
	r.faces[k] = fc
	return fc
}

// Render draws all queued strings to the selected render target, which should
// be width by height pixels in size. The queue is emptied.
func (r *Renderer) Render(width, height float32) {
	defer func() {
		r.queue = r.queue[:0]
	}()

	if len(r.queue) == 0 {
		return
	}

	w := int(width)
	h := int(height)
	if w <= 0 || h <= 0 {
		return
	}

	if r.canvas == nil || r.canvas.Rect.Dx() != w || r.canvas.Rect.Dy() != h {
		r.canvas = image.NewNRGBA(image.Rect(0, 0, w, h))
		r.upload = make([]byte, len(r.canvas.Pix))
	} else {
		clear(r.canvas.Pix)
	}

	for _, d := range r.queue {
		r.rasterise(d)
	}

	// textures start with the bottom row
	stride := r.canvas.Stride
	for y := range h {
		copy(r.upload[(h-1-y)*stride:(h-y)*stride], r.canvas.Pix[y*stride:(y+1)*stride])
	}

	r.ctx.PixelStorei(gfx.UnpackAlignment, 4)
	r.ctx.BindTexture(r.texture)
	r.ctx.TexImage2D(int32(w), int32(h), gfx.RGBA, r.upload)
	r.ctx.BindTexture(0)
	r.ctx.DrawTexture(r.texture, 0, 0, width, height, mgl32.Vec4{1, 1, 1, 1})
}

func (r *Renderer) rasterise(d draw) {
	fc := r.face(d.font, d.scale)
	if fc == nil {
		return
	}

	m := fc.Metrics()
	dr := font.Drawer{
		Dst: r.canvas,
		Src: image.NewUniform(color.NRGBA{
			R: uint8(mgl32.Clamp(d.col[0], 0, 1) * 255),
			G: uint8(mgl32.Clamp(d.col[1], 0, 1) * 255),
			B: uint8(mgl32.Clamp(d.col[2], 0, 1) * 255),
			A: 255,
		}),
		Face: fc,
	}

	x := fixed.Int26_6(d.pos.X() * 64)
	y := fixed.Int26_6(d.pos.Y()*64) + m.Ascent
	for line := range strings.SplitSeq(d.s, "\n") {
		dr.Dot = fixed.Point26_6{X: x, Y: y}
		dr.DrawString(line)
		y += m.Height
	}
}

// Destroy releases the texture and font faces used by the renderer.
func (r *Renderer) Destroy() {
	r.ctx.DeleteTexture(r.texture)
	r.texture = 0
	for k, fc := range r.faces {
		_ = fc.Close()
		delete(r.faces, k)
	}
}
