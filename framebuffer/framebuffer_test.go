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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/kestrel/framebuffer"
	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/gfx/software"
	"github.com/jetsetilly/kestrel/test"
)

func TestScreen(t *testing.T) {
	sw := software.New(800, 600)
	fbm := framebuffer.NewManager(gfx.Verified(sw), 800, 600)

	scr := fbm.Screen()
	test.ExpectSuccess(t, scr.IsScreen())
	test.ExpectEquality(t, scr.Texture(), 0)
	test.ExpectEquality(t, fbm.Selected(), scr)

	w, h := scr.Dimensions()
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)

	test.ExpectSuccess(t, scr.Resize(1024, 768))
	test.ExpectFailure(t, scr.Resize(1024, 768))
	test.ExpectFailure(t, scr.Resize(0, 768))
	w, h = scr.Dimensions()
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 768)
	test.ExpectFailure(t, scr.Resize(1024, 768))

	fbm.Select(scr)
	test.ExpectEquality(t, sw.State().Viewport, [4]int32{0, 0, 1024, 768})

	// destroying the screen does nothing
	scr.Destroy()
	w, _ = scr.Dimensions()
	test.ExpectEquality(t, w, 1024)
}

func TestRenderTarget(t *testing.T) {
	sw := software.New(800, 600)
	fbm := framebuffer.NewManager(gfx.Verified(sw), 800, 600)

	rt := fbm.NewRenderTarget(800, 600, true)
	test.ExpectFailure(t, rt.IsScreen())
	test.ExpectSuccess(t, rt.HasDepth())
	test.ExpectInequality(t, rt.Texture(), 0)

	// creating a render target does not change the binding
	test.ExpectEquality(t, sw.State().Framebuffer, 0)
	test.ExpectEquality(t, fbm.Selected(), fbm.Screen())

	w, h, ok := sw.TextureSize(rt.Texture())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)

	test.ExpectSuccess(t, rt.Resize(320, 200))
	w, h, _ = sw.TextureSize(rt.Texture())
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	fbm.Select(rt)
	test.ExpectEquality(t, fbm.Selected(), rt)
	test.ExpectInequality(t, sw.State().Framebuffer, 0)
	test.ExpectEquality(t, sw.State().Viewport, [4]int32{0, 0, 320, 200})

	// clearing the selected target writes to its texture
	sw.ClearColor(1, 0, 0, 1)
	sw.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)
	px, _ := sw.TexturePixel(rt.Texture(), 10, 10)
	test.ExpectEquality(t, px, [4]byte{255, 0, 0, 255})

	fbm.Select(fbm.Screen())
	test.ExpectEquality(t, sw.State().Framebuffer, 0)

	rt.Destroy()
	test.ExpectEquality(t, sw.NumTextures(), 0)
	test.ExpectEquality(t, sw.NumFramebuffers(), 0)
}

func TestRenderTargetWithoutDepth(t *testing.T) {
	sw := software.New(64, 64)
	fbm := framebuffer.NewManager(gfx.Verified(sw), 64, 64)

	rt := fbm.NewRenderTarget(64, 64, false)
	test.ExpectFailure(t, rt.HasDepth())
	test.ExpectEquality(t, sw.Calls("CreateRenderbuffer"), 0)

	// first sizing is not a loss of content
	rt2 := fbm.NewRenderTarget(0, 0, false)
	test.ExpectFailure(t, rt2.Resize(16, 16))
	test.ExpectSuccess(t, rt2.Resize(32, 32))
}

func TestRenderTargetZeroDimension(t *testing.T) {
	sw := software.New(320, 200)
	fbm := framebuffer.NewManager(gfx.Verified(sw), 320, 200)
	rt := fbm.NewRenderTarget(320, 200, true)

	// the dimensions follow the most recent resize even when one side is
	// zero. the storage is kept so that the target can still be drawn to
	test.ExpectFailure(t, rt.Resize(640, 0))
	w, h := rt.Dimensions()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 0)
	w, h, _ = sw.TextureSize(rt.Texture())
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	fbm.Select(rt)
	test.ExpectEquality(t, sw.State().Viewport, [4]int32{0, 0, 640, 0})
	sw.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)

	// restoring the previous size does not lose the content
	test.ExpectFailure(t, rt.Resize(320, 200))
	w, h = rt.Dimensions()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	test.ExpectSuccess(t, rt.Resize(640, 480))
	w, h, _ = sw.TextureSize(rt.Texture())
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)

	// negative dimensions are ignored
	test.ExpectFailure(t, rt.Resize(-1, 480))
	w, _ = rt.Dimensions()
	test.ExpectEquality(t, w, 640)
}
