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

import "github.com/go-gl/mathgl/mgl32"

// Context is the graphics context used by the render loop and its
// collaborators.
//
// Object names returned by the Create functions are never zero. Binding name
// zero selects the default object, which for framebuffers is the screen.
type Context interface {
	ActiveTexture(unit uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	Enable(capability uint32)
	Disable(capability uint32)
	FrontFace(mode uint32)
	CullFace(mode uint32)
	DepthFunc(fn uint32)
	PixelStorei(pname uint32, param int32)

	// ReadPixels reads a rectangle from the bound framebuffer into pixels.
	// The origin is the bottom-left corner. The pixels slice must be large
	// enough for the rectangle, taking the PackAlignment into account.
	ReadPixels(x, y, width, height int32, format uint32, pixels []byte)

	CreateFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	BindFramebuffer(fbo uint32)

	// FramebufferTexture attaches the texture as the colour buffer of the
	// bound framebuffer.
	FramebufferTexture(texture uint32)

	// FramebufferRenderbuffer attaches the renderbuffer as the depth buffer
	// of the bound framebuffer.
	FramebufferRenderbuffer(rbo uint32)

	CreateTexture() uint32
	DeleteTexture(texture uint32)
	BindTexture(texture uint32)

	// TexImage2D specifies the image of the bound texture. The first row of
	// pixels is the bottom row of the image. A nil pixels slice allocates the
	// texture without initialising it.
	TexImage2D(width, height int32, format uint32, pixels []byte)

	CreateRenderbuffer() uint32
	DeleteRenderbuffer(rbo uint32)
	BindRenderbuffer(rbo uint32)

	// RenderbufferStorage allocates depth storage for the bound renderbuffer.
	RenderbufferStorage(width, height int32)

	// DrawTexture draws the texture as an axis aligned rectangle, in pixels
	// relative to the bottom-left of the viewport. The texture colour is
	// multiplied by tint and alpha blended with the framebuffer.
	DrawTexture(texture uint32, x, y, width, height float32, tint mgl32.Vec4)

	// GetError returns and clears the earliest recorded error.
	GetError() uint32
}
