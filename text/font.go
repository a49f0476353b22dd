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

// Package text draws strings over the rendered scene.
//
// Strings are queued with DrawText() during a frame and rasterised together
// by Render(), which uploads the result as a single texture and draws it over
// the whole framebuffer.
package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font is a parsed TrueType or OpenType font.
type Font struct {
	name string
	otf  *opentype.Font
}

// NewFont parses font data. The name is used in log messages.
func NewFont(name string, data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: %s: %w", name, err)
	}
	return &Font{name: name, otf: otf}, nil
}

// LoadFont reads and parses the font file at path.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return NewFont(path, data)
}

var defaultFont struct {
	once sync.Once
	font *Font
}

// DefaultFont returns the Go Regular font.
func DefaultFont() *Font {
	defaultFont.once.Do(func() {
		f, err := NewFont("goregular", goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultFont.font = f
	})
	return defaultFont.font
}

func (f *Font) String() string {
	return f.name
}

// face returns a new face for the font at the size in pixels.
func (f *Font) face(size float32) (font.Face, error) {
	return opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
