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

package resource_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/gfx/software"
	"github.com/jetsetilly/kestrel/resource"
	"github.com/jetsetilly/kestrel/test"
	"golang.org/x/image/bmp"
)

// testImage is two pixels wide and two pixels high. The top-left pixel is
// red and the others are blue.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	return img
}

func writeImage(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.DemandSuccess(t, encode(f))
	return path
}

func TestInitialisation(t *testing.T) {
	sw := software.New(16, 16)

	test.ExpectFailure(t, resource.Initialised())
	err := resource.Borrow(func(_ *resource.TextureManager) {})
	test.ExpectSuccess(t, errors.Is(err, resource.ErrNotInitialised))

	test.DemandSuccess(t, resource.Init(gfx.Verified(sw)))
	test.ExpectSuccess(t, resource.Initialised())
	err = resource.Init(gfx.Verified(sw))
	test.ExpectSuccess(t, errors.Is(err, resource.ErrAlreadyInitialised))

	var called bool
	test.ExpectSuccess(t, resource.Borrow(func(mgr *resource.TextureManager) {
		called = true
		test.ExpectEquality(t, mgr.Len(), 1)

		def := mgr.Default()
		test.ExpectEquality(t, def.Name(), resource.DefaultTextureName)
		w, h := def.Dimensions()
		test.ExpectEquality(t, w, 1)
		test.ExpectEquality(t, h, 1)
		px, ok := sw.TexturePixel(def.ID(), 0, 0)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, px, [4]byte{255, 255, 255, 255})
	}))
	test.ExpectSuccess(t, called)

	resource.Destroy()
	test.ExpectFailure(t, resource.Initialised())
	test.ExpectEquality(t, sw.NumTextures(), 0)

	// destroying twice is harmless
	resource.Destroy()
}

func TestTextures(t *testing.T) {
	sw := software.New(16, 16)
	test.DemandSuccess(t, resource.Init(gfx.Verified(sw)))
	defer resource.Destroy()

	pngPath := writeImage(t, "test.png", func(f *os.File) error {
		return png.Encode(f, testImage())
	})
	bmpPath := writeImage(t, "test.bmp", func(f *os.File) error {
		return bmp.Encode(f, testImage())
	})

	test.ExpectSuccess(t, resource.Borrow(func(mgr *resource.TextureManager) {
		tex, err := mgr.Add(pngPath, "png")
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, tex.Name(), "png")

		// the top row of the image is the last row of the texture
		px, _ := sw.TexturePixel(tex.ID(), 0, 1)
		test.ExpectEquality(t, px, [4]byte{255, 0, 0, 255})
		px, _ = sw.TexturePixel(tex.ID(), 0, 0)
		test.ExpectEquality(t, px, [4]byte{0, 0, 255, 255})

		// a registered name is not loaded again, even from another file
		again, err := mgr.Add(bmpPath, "png")
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, again, tex)
		test.ExpectEquality(t, mgr.Len(), 2)

		b, err := mgr.Add(bmpPath, "bmp")
		test.DemandSuccess(t, err)
		px, _ = sw.TexturePixel(b.ID(), 0, 1)
		test.ExpectEquality(t, px, [4]byte{255, 0, 0, 255})

		got, ok := mgr.Get("bmp")
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, got, b)

		test.ExpectSuccess(t, mgr.Remove("bmp"))
		test.ExpectFailure(t, mgr.Remove("bmp"))
		_, ok = mgr.Get("bmp")
		test.ExpectFailure(t, ok)

		_, err = mgr.Add(filepath.Join(t.TempDir(), "missing.png"), "missing")
		test.ExpectFailure(t, err)

		bad := writeImage(t, "bad.png", func(f *os.File) error {
			_, err := f.WriteString("not an image")
			return err
		})
		_, err = mgr.Add(bad, "bad")
		test.ExpectFailure(t, err)
		_, ok = mgr.Get("bad")
		test.ExpectFailure(t, ok)
	}))
}

func TestAddImage(t *testing.T) {
	sw := software.New(16, 16)
	test.DemandSuccess(t, resource.Init(gfx.Verified(sw)))
	defer resource.Destroy()

	test.ExpectSuccess(t, resource.Borrow(func(mgr *resource.TextureManager) {
		first := mgr.AddImage(testImage(), "image")
		second := mgr.AddImage(image.NewNRGBA(image.Rect(0, 0, 4, 3)), "image")
		test.ExpectInequality(t, first, second)
		test.ExpectEquality(t, mgr.Len(), 2)

		_, _, ok := sw.TextureSize(first.ID())
		test.ExpectFailure(t, ok)

		w, h := second.Dimensions()
		test.ExpectEquality(t, w, 4)
		test.ExpectEquality(t, h, 3)

		// large images are scaled down
		big := mgr.AddImage(image.NewNRGBA(image.Rect(0, 0, resource.MaxTextureSize*2, 16)), "big")
		w, h = big.Dimensions()
		test.ExpectEquality(t, w, resource.MaxTextureSize)
		test.ExpectEquality(t, h, 8)
	}))
}
