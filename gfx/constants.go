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

package gfx

import "fmt"

// Texture units.
const (
	Texture0 uint32 = 0x84C0
)

// Buffer bits for Clear().
const (
	DepthBufferBit uint32 = 0x0100
	ColorBufferBit uint32 = 0x4000
)

// Capabilities for Enable() and Disable().
const (
	CapCullFace         uint32 = 0x0B44
	CapDepthTest        uint32 = 0x0B71
	CapBlend            uint32 = 0x0BE2
	CapScissorTest      uint32 = 0x0C11
	CapProgramPointSize uint32 = 0x8642
)

// Winding for FrontFace().
const (
	CW  uint32 = 0x0900
	CCW uint32 = 0x0901
)

// Faces for CullFace().
const (
	Front        uint32 = 0x0404
	Back         uint32 = 0x0405
	FrontAndBack uint32 = 0x0408
)

// Comparison functions for DepthFunc().
const (
	Never    uint32 = 0x0200
	Less     uint32 = 0x0201
	Equal    uint32 = 0x0202
	LEqual   uint32 = 0x0203
	Greater  uint32 = 0x0204
	NotEqual uint32 = 0x0205
	GEqual   uint32 = 0x0206
	Always   uint32 = 0x0207
)

// Parameters for PixelStorei().
const (
	UnpackAlignment uint32 = 0x0CF5
	PackAlignment   uint32 = 0x0D05
)

// Pixel formats. Components are always unsigned bytes.
const (
	RGB  uint32 = 0x1907
	RGBA uint32 = 0x1908
)

// Error values returned by GetError().
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
)

// ContextError is an error value reported by a Context.
type ContextError uint32

func (e ContextError) Error() string {
	switch uint32(e) {
	case NoError:
		return "no error"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case OutOfMemory:
		return "out of memory"
	case InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	}
	return fmt.Sprintf("unknown error (%#04x)", uint32(e))
}

// Components returns the number of bytes per pixel for the format. Returns
// zero for an unsupported format.
func Components(format uint32) int {
	switch format {
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}
