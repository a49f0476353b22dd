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
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/jetsetilly/kestrel/gfx"
)

// SnapRect reads a rectangle of the screen as tightly packed RGB bytes,
// starting with the bottom row. The out slice is reused if it has enough
// capacity and the result is returned.
func (w *Window) SnapRect(out []byte, x, y, width, height int) []byte {
	size := max(width, 0) * max(height, 0) * 3
	if cap(out) < size {
		out = make([]byte, size)
	}
	out = out[:size]

	w.ctx.PixelStorei(gfx.PackAlignment, 1)
	w.ctx.ReadPixels(int32(x), int32(y), int32(width), int32(height), gfx.RGB, out)
	return out
}

// Snap reads the entire screen. See SnapRect().
func (w *Window) Snap(out []byte) []byte {
	width, height := w.cnv.Size()
	return w.SnapRect(out, 0, 0, int(width), int(height))
}

// SnapImage returns the entire screen as an image. The top row of the image
// is the top of the screen.
func (w *Window) SnapImage() *image.RGBA {
	width, height := w.cnv.Size()
	buf := w.Snap(nil)

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for y := range int(height) {
		src := buf[(int(height)-1-y)*int(width)*3:]
		dst := img.Pix[y*img.Stride:]
		for x := range int(width) {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// SaveScreenshot writes the screen to a PNG file.
func (w *Window) SaveScreenshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	err = png.Encode(f, w.SnapImage())
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("window: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
