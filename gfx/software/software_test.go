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

package software_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/gfx/software"
	"github.com/jetsetilly/kestrel/test"
)

// readScreen returns the RGB bytes of the bound framebuffer.
func readScreen(ctx *software.Context, w, h int32) []byte {
	ctx.PixelStorei(gfx.PackAlignment, 1)
	out := make([]byte, w*h*3)
	ctx.ReadPixels(0, 0, w, h, gfx.RGB, out)
	return out
}

func TestClear(t *testing.T) {
	ctx := software.New(4, 3)
	ctx.ClearColor(0, 0, 1, 1)
	ctx.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)
	test.DemandEquality(t, ctx.GetError(), gfx.NoError)

	out := readScreen(ctx, 4, 3)
	test.DemandEquality(t, ctx.GetError(), gfx.NoError)
	for i := 0; i < len(out); i += 3 {
		test.ExpectEquality(t, [3]byte(out[i:i+3]), [3]byte{0, 0, 255})
	}

	ctx.Clear(0x1)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidValue)
}

func TestScissoredClear(t *testing.T) {
	ctx := software.New(4, 4)
	ctx.Enable(gfx.CapScissorTest)
	ctx.Scissor(0, 0, 2, 2)
	ctx.ClearColor(1, 0, 0, 1)
	ctx.Clear(gfx.ColorBufferBit)

	out := readScreen(ctx, 4, 4)
	test.ExpectEquality(t, out[0], 255)
	test.ExpectEquality(t, out[3], 255)

	// third pixel of the bottom row is outside the scissor box
	test.ExpectEquality(t, out[6], 0)

	// bottom-left of the third row is outside the scissor box
	test.ExpectEquality(t, out[2*4*3], 0)
}

func TestReadPixelsAlignment(t *testing.T) {
	ctx := software.New(3, 2)
	ctx.ClearColor(1, 1, 1, 1)
	ctx.Clear(gfx.ColorBufferBit)

	// default pack alignment is four. rows of 9 bytes are padded to 12 and
	// the buffer needs 12+9 bytes
	out := make([]byte, 20)
	ctx.ReadPixels(0, 0, 3, 2, gfx.RGB, out)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidOperation)

	out = make([]byte, 21)
	ctx.ReadPixels(0, 0, 3, 2, gfx.RGB, out)
	test.ExpectEquality(t, ctx.GetError(), gfx.NoError)
	test.ExpectEquality(t, out[9], 0)
	test.ExpectEquality(t, out[12], 255)

	ctx.ReadPixels(0, 0, 3, 2, 0x1234, out)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidEnum)

	ctx.PixelStorei(gfx.PackAlignment, 3)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidValue)
}

func TestOffscreen(t *testing.T) {
	ctx := software.New(8, 8)

	tex := ctx.CreateTexture()
	ctx.BindTexture(tex)
	ctx.TexImage2D(2, 2, gfx.RGBA, nil)

	rbo := ctx.CreateRenderbuffer()
	ctx.BindRenderbuffer(rbo)
	ctx.RenderbufferStorage(2, 2)

	fbo := ctx.CreateFramebuffer()
	ctx.BindFramebuffer(fbo)
	ctx.FramebufferTexture(tex)
	ctx.FramebufferRenderbuffer(rbo)
	test.DemandEquality(t, ctx.GetError(), gfx.NoError)

	ctx.ClearColor(0, 1, 0, 1)
	ctx.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)

	px, ok := ctx.TexturePixel(tex, 1, 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, px, [4]byte{0, 255, 0, 255})

	// screen is untouched
	ctx.BindFramebuffer(0)
	out := readScreen(ctx, 8, 8)
	test.ExpectEquality(t, out[1], 0)

	// draw the offscreen texture over the bottom-left quarter of the screen
	ctx.DrawTexture(tex, 0, 0, 4, 4, mgl32.Vec4{1, 1, 1, 1})
	test.DemandEquality(t, ctx.GetError(), gfx.NoError)
	out = readScreen(ctx, 8, 8)
	test.ExpectEquality(t, out[1], 255)
	test.ExpectEquality(t, out[3*3+1], 255)
	test.ExpectEquality(t, out[4*3+1], 0)

	w, h, ok := ctx.RenderbufferSize(rbo)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, 2)
	test.ExpectEquality(t, h, 2)

	ctx.DeleteFramebuffer(fbo)
	ctx.DeleteTexture(tex)
	ctx.DeleteRenderbuffer(rbo)
	test.ExpectEquality(t, ctx.NumFramebuffers(), 0)
	test.ExpectEquality(t, ctx.NumTextures(), 0)

	ctx.BindFramebuffer(fbo)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidOperation)
}

func TestTexImageRGB(t *testing.T) {
	ctx := software.New(1, 1)
	tex := ctx.CreateTexture()
	ctx.BindTexture(tex)
	ctx.PixelStorei(gfx.UnpackAlignment, 1)
	ctx.TexImage2D(2, 1, gfx.RGB, []byte{10, 20, 30, 40, 50, 60})
	test.DemandEquality(t, ctx.GetError(), gfx.NoError)

	px, _ := ctx.TexturePixel(tex, 1, 0)
	test.ExpectEquality(t, px, [4]byte{40, 50, 60, 255})

	// short pixel data
	ctx.TexImage2D(2, 2, gfx.RGB, []byte{1, 2, 3})
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidOperation)

	// no texture bound
	ctx.BindTexture(0)
	ctx.TexImage2D(1, 1, gfx.RGBA, nil)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidOperation)
}

func TestBlending(t *testing.T) {
	ctx := software.New(1, 1)
	ctx.ClearColor(0, 0, 0, 1)
	ctx.Clear(gfx.ColorBufferBit)

	tex := ctx.CreateTexture()
	ctx.BindTexture(tex)
	ctx.TexImage2D(1, 1, gfx.RGBA, []byte{255, 255, 255, 255})

	// half transparent red tint over black
	ctx.DrawTexture(tex, 0, 0, 1, 1, mgl32.Vec4{1, 0, 0, 0.5})
	out := readScreen(ctx, 1, 1)
	test.ExpectApproximate(t, out[0], 128, 0.02)
	test.ExpectEquality(t, out[1], 0)
	test.ExpectEquality(t, out[2], 0)
}

func TestStateAndErrors(t *testing.T) {
	ctx := software.New(4, 4)

	ctx.FrontFace(gfx.CCW)
	ctx.Enable(gfx.CapDepthTest)
	ctx.DepthFunc(gfx.LEqual)
	ctx.CullFace(gfx.Back)
	ctx.Viewport(0, 0, 2, 2)
	test.DemandEquality(t, ctx.GetError(), gfx.NoError)

	st := ctx.State()
	test.ExpectEquality(t, st.DepthFunc, gfx.LEqual)
	test.ExpectEquality(t, st.Viewport, [4]int32{0, 0, 2, 2})
	test.ExpectSuccess(t, ctx.IsEnabled(gfx.CapDepthTest))
	test.ExpectFailure(t, ctx.IsEnabled(gfx.CapBlend))

	ctx.Enable(0xffff)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidEnum)
	ctx.FrontFace(gfx.Back)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidEnum)
	ctx.ActiveTexture(0)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidEnum)
	ctx.Viewport(0, 0, -1, 1)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidValue)

	// only the first error is kept until it is read
	ctx.Enable(0xffff)
	ctx.Viewport(0, 0, -1, 1)
	test.ExpectEquality(t, ctx.GetError(), gfx.InvalidEnum)
	test.ExpectEquality(t, ctx.GetError(), gfx.NoError)

	ctx.InjectError("Clear", gfx.OutOfMemory)
	ctx.Clear(gfx.ColorBufferBit)
	test.ExpectEquality(t, ctx.GetError(), gfx.OutOfMemory)
	ctx.Clear(gfx.ColorBufferBit)
	test.ExpectEquality(t, ctx.GetError(), gfx.NoError)
	test.ExpectEquality(t, ctx.Calls("Clear"), 2)

	ctx.ResetCalls()
	test.ExpectEquality(t, ctx.Calls("Clear"), 0)
}

func TestResize(t *testing.T) {
	ctx := software.New(4, 4)
	ctx.Resize(10, 6)
	w, h := ctx.Size()
	test.ExpectEquality(t, w, 10)
	test.ExpectEquality(t, h, 6)

	// viewport is not changed by a resize
	test.ExpectEquality(t, ctx.State().Viewport, [4]int32{0, 0, 4, 4})
}
