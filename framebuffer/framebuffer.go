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

package framebuffer

import (
	"github.com/jetsetilly/kestrel/gfx"
)

// RenderTarget is a destination for draw calls.
type RenderTarget struct {
	ctx gfx.Context

	width  int32
	height int32

	// dimensions of the allocated texture and renderbuffer storage. these
	// differ from width and height while either of those is zero
	storageWidth  int32
	storageHeight int32

	// fbo is zero for the screen target
	fbo     uint32
	texture uint32
	rbo     uint32
	depth   bool
}

// IsScreen returns true if the render target is the screen.
func (rt *RenderTarget) IsScreen() bool {
	return rt.fbo == 0
}

// Dimensions returns the width and height of the render target.
func (rt *RenderTarget) Dimensions() (width int32, height int32) {
	return rt.width, rt.height
}

// Texture returns the colour texture of an offscreen render target. Returns
// zero for the screen target.
func (rt *RenderTarget) Texture() uint32 {
	return rt.texture
}

// HasDepth returns true if the render target has a depth buffer.
func (rt *RenderTarget) HasDepth() bool {
	return rt.depth
}

// Resize the render target.
//
// Returns true if any previous texture data has been lost. This can happen
// when the dimensions have changed. By definition, the first sizing of the
// target will always return false.
//
// The dimensions are always recorded but if the width or height is zero,
// which happens when a window is minimised, the existing storage is kept and
// the function returns false. Negative dimensions are ignored.
func (rt *RenderTarget) Resize(width int32, height int32) bool {
	if width < 0 || height < 0 {
		return false
	}

	rt.width = width
	rt.height = height

	if width == 0 || height == 0 {
		return false
	}

	// no change to storage
	if rt.storageWidth == width && rt.storageHeight == height {
		return false
	}

	changed := rt.storageWidth != 0 || rt.storageHeight != 0

	rt.storageWidth = width
	rt.storageHeight = height

	if rt.IsScreen() {
		return changed
	}

	// texture and renderbuffer bindings are restored to zero. the framebuffer
	// binding is not touched because the storage is attached once, by
	// NewRenderTarget()
	rt.ctx.BindTexture(rt.texture)
	rt.ctx.TexImage2D(width, height, gfx.RGBA, nil)
	rt.ctx.BindTexture(0)

	if rt.depth {
		rt.ctx.BindRenderbuffer(rt.rbo)
		rt.ctx.RenderbufferStorage(width, height)
		rt.ctx.BindRenderbuffer(0)
	}

	return changed
}

// Destroy should be called when the render target is no longer required. The
// screen target cannot be destroyed.
func (rt *RenderTarget) Destroy() {
	if rt.IsScreen() {
		return
	}
	rt.ctx.DeleteFramebuffer(rt.fbo)
	rt.ctx.DeleteTexture(rt.texture)
	if rt.depth {
		rt.ctx.DeleteRenderbuffer(rt.rbo)
	}
	rt.fbo = 0
	rt.texture = 0
	rt.rbo = 0
	rt.width = 0
	rt.height = 0
	rt.storageWidth = 0
	rt.storageHeight = 0
}

// Manager keeps track of the selected render target.
type Manager struct {
	ctx      gfx.Context
	screen   *RenderTarget
	selected *RenderTarget
}

// NewManager is the preferred method of initialisation for the Manager type.
// The screen target has the specified dimensions and is selected.
func NewManager(ctx gfx.Context, width int32, height int32) *Manager {
	fbm := &Manager{
		ctx:    ctx,
		screen: &RenderTarget{ctx: ctx},
	}
	fbm.screen.Resize(width, height)
	fbm.selected = fbm.screen
	return fbm
}

// Screen returns the screen render target.
func (fbm *Manager) Screen() *RenderTarget {
	return fbm.screen
}

// Selected returns the currently selected render target.
func (fbm *Manager) Selected() *RenderTarget {
	return fbm.selected
}

// NewRenderTarget creates an offscreen render target with a colour texture
// and, if depth is true, a depth buffer. The currently selected render target
// remains bound.
func (fbm *Manager) NewRenderTarget(width int32, height int32, depth bool) *RenderTarget {
	rt := &RenderTarget{
		ctx:     fbm.ctx,
		fbo:     fbm.ctx.CreateFramebuffer(),
		texture: fbm.ctx.CreateTexture(),
		depth:   depth,
	}
	if depth {
		rt.rbo = fbm.ctx.CreateRenderbuffer()
	}

	rt.Resize(width, height)

	fbm.ctx.BindFramebuffer(rt.fbo)
	fbm.ctx.FramebufferTexture(rt.texture)
	if depth {
		fbm.ctx.FramebufferRenderbuffer(rt.rbo)
	}
	fbm.ctx.BindFramebuffer(fbm.selected.fbo)

	return rt
}

// Select binds the render target and sets the viewport to its dimensions.
func (fbm *Manager) Select(rt *RenderTarget) {
	fbm.selected = rt
	fbm.ctx.BindFramebuffer(rt.fbo)
	fbm.ctx.Viewport(0, 0, rt.width, rt.height)
}
