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

// Package gl32 implements gfx.Context with OpenGL 3.2 core.
//
// The OpenGL context must be current on the calling thread when New() is
// called and for every subsequent call.
package gl32

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/logger"
)

// Context implements the gfx.Context interface.
type Context struct {
	quad quadShader

	vao uint32
	vbo uint32
}

// New is the preferred method of initialisation for the Context type.
func New() (*Context, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl32: %w", err)
	}

	logger.Logf(logger.Allow, "gl32", "%s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "gl32", "%s", gl.GoStr(gl.GetString(gl.RENDERER)))

	ctx := &Context{}

	err = ctx.quad.create()
	if err != nil {
		return nil, fmt.Errorf("gl32: %w", err)
	}

	gl.GenVertexArrays(1, &ctx.vao)
	gl.GenBuffers(1, &ctx.vbo)

	return ctx, nil
}

// Destroy releases the resources used by the Context.
func (ctx *Context) Destroy() {
	ctx.quad.destroy()
	if ctx.vbo != 0 {
		gl.DeleteBuffers(1, &ctx.vbo)
		ctx.vbo = 0
	}
	if ctx.vao != 0 {
		gl.DeleteVertexArrays(1, &ctx.vao)
		ctx.vao = 0
	}
}

// ActiveTexture implements the gfx.Context interface.
func (ctx *Context) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

// ClearColor implements the gfx.Context interface.
func (ctx *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements the gfx.Context interface.
func (ctx *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

// Viewport implements the gfx.Context interface.
func (ctx *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Scissor implements the gfx.Context interface.
func (ctx *Context) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

// Enable implements the gfx.Context interface.
func (ctx *Context) Enable(capability uint32) {
	gl.Enable(capability)
}

// Disable implements the gfx.Context interface.
func (ctx *Context) Disable(capability uint32) {
	gl.Disable(capability)
}

// FrontFace implements the gfx.Context interface.
func (ctx *Context) FrontFace(mode uint32) {
	gl.FrontFace(mode)
}

// CullFace implements the gfx.Context interface.
func (ctx *Context) CullFace(mode uint32) {
	gl.CullFace(mode)
}

// DepthFunc implements the gfx.Context interface.
func (ctx *Context) DepthFunc(fn uint32) {
	gl.DepthFunc(fn)
}

// PixelStorei implements the gfx.Context interface.
func (ctx *Context) PixelStorei(pname uint32, param int32) {
	gl.PixelStorei(pname, param)
}

// ReadPixels implements the gfx.Context interface.
func (ctx *Context) ReadPixels(x, y, width, height int32, format uint32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.ReadPixels(x, y, width, height, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// CreateFramebuffer implements the gfx.Context interface.
func (ctx *Context) CreateFramebuffer() uint32 {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	return fbo
}

// DeleteFramebuffer implements the gfx.Context interface.
func (ctx *Context) DeleteFramebuffer(fbo uint32) {
	gl.DeleteFramebuffers(1, &fbo)
}

// BindFramebuffer implements the gfx.Context interface.
func (ctx *Context) BindFramebuffer(fbo uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
}

// FramebufferTexture implements the gfx.Context interface.
func (ctx *Context) FramebufferTexture(texture uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture, 0)
}

// FramebufferRenderbuffer implements the gfx.Context interface.
func (ctx *Context) FramebufferRenderbuffer(rbo uint32) {
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, rbo)
}

// CreateTexture implements the gfx.Context interface.
func (ctx *Context) CreateTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

// DeleteTexture implements the gfx.Context interface.
func (ctx *Context) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// BindTexture implements the gfx.Context interface.
func (ctx *Context) BindTexture(texture uint32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// TexImage2D implements the gfx.Context interface. Filtering is linear and
// texture coordinates are clamped to the edge.
func (ctx *Context) TexImage2D(width, height int32, format uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), width, height, 0, format, gl.UNSIGNED_BYTE, ptr)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// CreateRenderbuffer implements the gfx.Context interface.
func (ctx *Context) CreateRenderbuffer() uint32 {
	var rbo uint32
	gl.GenRenderbuffers(1, &rbo)
	return rbo
}

// DeleteRenderbuffer implements the gfx.Context interface.
func (ctx *Context) DeleteRenderbuffer(rbo uint32) {
	gl.DeleteRenderbuffers(1, &rbo)
}

// BindRenderbuffer implements the gfx.Context interface.
func (ctx *Context) BindRenderbuffer(rbo uint32) {
	gl.BindRenderbuffer(gl.RENDERBUFFER, rbo)
}

// RenderbufferStorage implements the gfx.Context interface.
func (ctx *Context) RenderbufferStorage(width, height int32) {
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
}

// DrawTexture implements the gfx.Context interface.
func (ctx *Context) DrawTexture(texture uint32, x, y, width, height float32, tint mgl32.Vec4) {
	st := storeGLState()
	defer st.restoreGLState()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	proj := mgl32.Ortho2D(0, float32(st.lastViewport[2]), 0, float32(st.lastViewport[3]))

	// two triangles as a strip. position followed by texture coordinate
	vertices := [...]float32{
		x, y, 0, 0,
		x + width, y, 1, 0,
		x, y + height, 0, 1,
		x + width, y + height, 1, 1,
	}

	gl.BindVertexArray(ctx.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, ctx.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(&vertices[0]), gl.STREAM_DRAW)

	ctx.quad.setAttributes(texture, proj, tint)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// GetError implements the gfx.Context interface.
func (ctx *Context) GetError() uint32 {
	return gl.GetError()
}

// glState stores GL state with the intention of restoration after a short
// period.
type glState struct {
	lastActiveTexture      int32
	lastProgram            int32
	lastTexture            int32
	lastArrayBuffer        int32
	lastVertexArray        int32
	lastViewport           [4]int32
	lastBlendSrcRgb        int32
	lastBlendDstRgb        int32
	lastBlendSrcAlpha      int32
	lastBlendDstAlpha      int32
	lastBlendEquationRgb   int32
	lastBlendEquationAlpha int32
	lastEnableBlend        bool
	lastEnableCullFace     bool
	lastEnableDepthTest    bool
}

// storeGLState is the best way of initialising an instance of glState.
func storeGLState() *glState {
	st := &glState{}
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &st.lastActiveTexture)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &st.lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &st.lastArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &st.lastVertexArray)
	gl.GetIntegerv(gl.VIEWPORT, &st.lastViewport[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &st.lastBlendSrcRgb)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &st.lastBlendDstRgb)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &st.lastBlendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &st.lastBlendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &st.lastBlendEquationRgb)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &st.lastBlendEquationAlpha)
	st.lastEnableBlend = gl.IsEnabled(gl.BLEND)
	st.lastEnableCullFace = gl.IsEnabled(gl.CULL_FACE)
	st.lastEnableDepthTest = gl.IsEnabled(gl.DEPTH_TEST)
	return st
}

// restoreGLState previously store glState.
func (st *glState) restoreGLState() {
	gl.UseProgram(uint32(st.lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(st.lastTexture))
	gl.ActiveTexture(uint32(st.lastActiveTexture))
	gl.BindVertexArray(uint32(st.lastVertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(st.lastArrayBuffer))
	gl.BlendEquationSeparate(uint32(st.lastBlendEquationRgb), uint32(st.lastBlendEquationAlpha))
	gl.BlendFuncSeparate(uint32(st.lastBlendSrcRgb), uint32(st.lastBlendDstRgb), uint32(st.lastBlendSrcAlpha), uint32(st.lastBlendDstAlpha))
	setCapability(gl.BLEND, st.lastEnableBlend)
	setCapability(gl.CULL_FACE, st.lastEnableCullFace)
	setCapability(gl.DEPTH_TEST, st.lastEnableDepthTest)
}

func setCapability(capability uint32, enable bool) {
	if enable {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// compile-time check that Context satisfies the gfx.Context interface
var _ gfx.Context = (*Context)(nil)
