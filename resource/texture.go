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

package resource

import (
	"fmt"
	"image"
	"os"

	// decoders for the formats accepted by Add()
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/logger"
	"golang.org/x/image/draw"
)

// MaxTextureSize is the largest width or height of a texture. Larger images
// are scaled down, keeping the aspect ratio.
const MaxTextureSize = 4096

// DefaultTextureName is the name of the texture returned by Default().
const DefaultTextureName = "default"

// Texture is an image uploaded to the graphics context.
type Texture struct {
	name   string
	id     uint32
	width  int
	height int
}

// Name returns the name the texture was registered with.
func (t *Texture) Name() string {
	return t.name
}

// ID returns the name of the texture in the graphics context.
func (t *Texture) ID() uint32 {
	return t.id
}

// Dimensions returns the size of the texture in pixels.
func (t *Texture) Dimensions() (int, int) {
	return t.width, t.height
}

// TextureManager maps names to textures.
type TextureManager struct {
	ctx      gfx.Context
	textures map[string]*Texture
}

func newTextureManager(ctx gfx.Context) *TextureManager {
	mgr := &TextureManager{
		ctx:      ctx,
		textures: make(map[string]*Texture),
	}

	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	copy(white.Pix, []byte{0xff, 0xff, 0xff, 0xff})
	mgr.AddImage(white, DefaultTextureName)

	return mgr
}

// Default returns a one pixel white texture.
func (mgr *TextureManager) Default() *Texture {
	return mgr.textures[DefaultTextureName]
}

// Get returns the texture registered with the name.
func (mgr *TextureManager) Get(name string) (*Texture, bool) {
	t, ok := mgr.textures[name]
	return t, ok
}

// Len returns the number of registered textures, including the default
// texture.
func (mgr *TextureManager) Len() int {
	return len(mgr.textures)
}

// Add returns the texture registered with the name. If there is no such
// texture the image file at path is loaded and registered with the name.
//
// PNG, JPEG, GIF, BMP and TIFF files are supported.
func (mgr *TextureManager) Add(path string, name string) (*Texture, error) {
	if t, ok := mgr.textures[name]; ok {
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("resource: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("resource: %s: %w", path, err)
	}

	t := mgr.AddImage(img, name)
	logger.Logf(logger.Allow, "resource", "loaded %s (%s %dx%d) as %s", path, format, t.width, t.height, name)

	return t, nil
}

// AddImage uploads the image and registers it with the name. Any texture
// already registered with the name is replaced.
func (mgr *TextureManager) AddImage(img image.Image, name string) *Texture {
	mgr.Remove(name)

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// normalise to non-premultiplied RGBA, scaling down if necessary
	var norm *image.NRGBA
	if w > MaxTextureSize || h > MaxTextureSize {
		scale := float64(MaxTextureSize) / float64(max(w, h))
		w = max(int(float64(w)*scale), 1)
		h = max(int(float64(h)*scale), 1)
		norm = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(norm, norm.Bounds(), img, b, draw.Src, nil)
	} else {
		norm = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(norm, norm.Bounds(), img, b.Min, draw.Src)
	}

	// textures start with the bottom row
	pix := make([]byte, len(norm.Pix))
	for y := range h {
		copy(pix[(h-1-y)*norm.Stride:(h-y)*norm.Stride], norm.Pix[y*norm.Stride:(y+1)*norm.Stride])
	}

	t := &Texture{
		name:   name,
		id:     mgr.ctx.CreateTexture(),
		width:  w,
		height: h,
	}

	mgr.ctx.PixelStorei(gfx.UnpackAlignment, 4)
	mgr.ctx.BindTexture(t.id)
	mgr.ctx.TexImage2D(int32(w), int32(h), gfx.RGBA, pix)
	mgr.ctx.BindTexture(0)

	mgr.textures[name] = t
	return t
}

// Remove the texture registered with the name. Returns false if there is no
// such texture.
func (mgr *TextureManager) Remove(name string) bool {
	t, ok := mgr.textures[name]
	if !ok {
		return false
	}
	mgr.ctx.DeleteTexture(t.id)
	delete(mgr.textures, name)
	return true
}

func (mgr *TextureManager) destroy() {
	for name := range mgr.textures {
		mgr.Remove(name)
	}
}
