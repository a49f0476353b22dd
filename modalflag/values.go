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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// colorValue implements flag.Value for colours. A colour is written either as
// three comma separated components in the range zero to one or as a six digit
// hex value with a leading hash.
type colorValue struct {
	col *mgl32.Vec3
}

func (v colorValue) String() string {
	if v.col == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", v.col[0], v.col[1], v.col[2])
}

func (v colorValue) Set(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	*v.col = col
	return nil
}

// ParseColor parses a colour in the form used by AddColor().
func ParseColor(s string) (mgl32.Vec3, error) {
	s = strings.TrimSpace(s)

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return mgl32.Vec3{}, fmt.Errorf("colour: %q is not six hex digits", s)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("colour: %w", err)
		}
		return mgl32.Vec3{
			float32((n>>16)&0xff) / 255,
			float32((n>>8)&0xff) / 255,
			float32(n&0xff) / 255,
		}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("colour: %q should have three components", s)
	}

	var col mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("colour: %w", err)
		}
		if f < 0 || f > 1 {
			return mgl32.Vec3{}, fmt.Errorf("colour: component %g out of range", f)
		}
		col[i] = float32(f)
	}

	return col, nil
}

// Size is a width and height in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

func (sz Size) String() string {
	return fmt.Sprintf("%dx%d", sz.Width, sz.Height)
}

type sizeValue struct {
	sz *Size
}

func (v sizeValue) String() string {
	if v.sz == nil {
		return ""
	}
	return v.sz.String()
}

func (v sizeValue) Set(s string) error {
	sz, err := ParseSize(s)
	if err != nil {
		return err
	}
	*v.sz = sz
	return nil
}

// ParseSize parses a size written as WIDTHxHEIGHT. Neither dimension can be
// zero.
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, fmt.Errorf("size: %q should be WIDTHxHEIGHT", s)
	}

	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("size: %w", err)
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("size: %w", err)
	}
	if width == 0 || height == 0 {
		return Size{}, fmt.Errorf("size: %q has a zero dimension", s)
	}

	return Size{Width: uint32(width), Height: uint32(height)}, nil
}

// AddColor flag for next call to Parse().
func (md *Modes) AddColor(name string, value mgl32.Vec3, usage string) *mgl32.Vec3 {
	col := value
	md.flags.Var(colorValue{col: &col}, name, usage)
	return &col
}

// AddSize flag for next call to Parse().
func (md *Modes) AddSize(name string, value Size, usage string) *Size {
	sz := value
	md.flags.Var(sizeValue{sz: &sz}, name, usage)
	return &sz
}
