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

package postprocessing_test

import (
	"testing"

	"github.com/jetsetilly/kestrel/framebuffer"
	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/gfx/software"
	"github.com/jetsetilly/kestrel/postprocessing"
	"github.com/jetsetilly/kestrel/test"
)

// prepare returns a context with an offscreen target filled with opaque red.
// The screen is selected and cleared to blue.
func prepare(t *testing.T) (*software.Context, *framebuffer.Manager, *framebuffer.RenderTarget) {
	t.Helper()

	sw := software.New(16, 16)
	ctx := gfx.Verified(sw)
	fbm := framebuffer.NewManager(ctx, 16, 16)
	rt := fbm.NewRenderTarget(16, 16, true)

	fbm.Select(rt)
	ctx.ClearColor(1, 0, 0, 1)
	ctx.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)

	fbm.Select(fbm.Screen())
	ctx.ClearColor(0, 0, 1, 1)
	ctx.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)

	return sw, fbm, rt
}

func pixel(t *testing.T, sw *software.Context, x, y int32) []byte {
	t.Helper()
	px := make([]byte, 4)
	sw.ReadPixels(x, y, 1, 1, gfx.RGBA, px)
	return px
}

func TestPassthrough(t *testing.T) {
	sw, _, rt := prepare(t)

	var e postprocessing.Effect = postprocessing.NewPassthrough(gfx.Verified(sw))
	e.Update(0.016, 16, 16, 0.1, 1024)
	e.Draw(rt)

	test.ExpectEquality(t, sw.Calls("DrawTexture"), 1)
	px := pixel(t, sw, 0, 0)
	test.ExpectEquality(t, px[0], 255)
	test.ExpectEquality(t, px[2], 0)
	px = pixel(t, sw, 15, 15)
	test.ExpectEquality(t, px[0], 255)
}

func TestPassthroughTranslucent(t *testing.T) {
	sw, fbm, rt := prepare(t)
	ctx := gfx.Verified(sw)

	// half transparent red over a screen that still holds blue from an
	// earlier frame
	fbm.Select(rt)
	ctx.ClearColor(1, 0, 0, 0.5)
	ctx.Clear(gfx.ColorBufferBit)
	fbm.Select(fbm.Screen())

	e := postprocessing.NewPassthrough(ctx)
	e.Update(0.016, 16, 16, 0.1, 1024)
	e.Draw(rt)

	px := pixel(t, sw, 8, 8)
	test.ExpectApproximate(t, px[0], 128, 0.01)
	test.ExpectEquality(t, px[1], 0)
	test.ExpectEquality(t, px[2], 0)
	test.ExpectEquality(t, px[3], 255)
}

func TestFade(t *testing.T) {
	sw, _, rt := prepare(t)

	e := postprocessing.NewFade(gfx.Verified(sw), 2.0, 0.0)
	test.ExpectApproximate(t, e.Brightness(), 1.0, 0.001)

	// half way through the period the source is black
	e.Update(1.0, 16, 16, 0.1, 1024)
	test.ExpectApproximate(t, e.Brightness()+1, 1.0, 0.001)
	e.Draw(rt)
	px := pixel(t, sw, 8, 8)
	test.ExpectEquality(t, px[0], 0)
	test.ExpectEquality(t, px[2], 0)
	test.ExpectEquality(t, px[3], 255)

	// time wraps around at the end of the period
	e.Update(1.5, 16, 16, 0.1, 1024)
	test.ExpectApproximate(t, e.Brightness(), 0.5, 0.001)
	e.Draw(rt)
	px = pixel(t, sw, 8, 8)
	test.ExpectApproximate(t, px[0], 128, 0.01)
	test.ExpectEquality(t, px[2], 0)

	// floor limits how dark the fade becomes
	e = postprocessing.NewFade(gfx.Verified(sw), 2.0, 0.25)
	e.Update(1.0, 16, 16, 0.1, 1024)
	test.ExpectApproximate(t, e.Brightness(), 0.25, 0.001)
}
