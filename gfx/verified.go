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

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// CallError is the value passed to panic() by a verified Context. It
// identifies the call that caused the error.
type CallError struct {
	Call string
	Err  ContextError
}

func (e CallError) Error() string {
	return fmt.Sprintf("gfx: %s: %v", e.Call, e.Err)
}

func (e CallError) Unwrap() error {
	return e.Err
}

// verified wraps a Context and checks for errors after every call.
type verified struct {
	ctx Context
}

// Verified returns a Context that panics with a CallError if the underlying
// Context reports an error after any call. Wrapping an already verified
// Context returns the same Context.
func Verified(ctx Context) Context {
	if v, ok := ctx.(*verified); ok {
		return v
	}
	return &verified{ctx: ctx}
}

// Unverified returns the Context wrapped by Verified(). Any other Context is
// returned unchanged.
func Unverified(ctx Context) Context {
	if v, ok := ctx.(*verified); ok {
		return v.ctx
	}
	return ctx
}

func (v *verified) check(call string) {
	if err := v.ctx.GetError(); err != NoError {
		panic(CallError{Call: call, Err: ContextError(err)})
	}
}

func (v *verified) ActiveTexture(unit uint32) {
	v.ctx.ActiveTexture(unit)
	v.check("ActiveTexture")
}

func (v *verified) ClearColor(r, g, b, a float32) {
	v.ctx.ClearColor(r, g, b, a)
	v.check("ClearColor")
}

func (v *verified) Clear(mask uint32) {
	v.ctx.Clear(mask)
	v.check("Clear")
}

func (v *verified) Viewport(x, y, width, height int32) {
	v.ctx.Viewport(x, y, width, height)
	v.check("Viewport")
}

func (v *verified) Scissor(x, y, width, height int32) {
	v.ctx.Scissor(x, y, width, height)
	v.check("Scissor")
}

func (v *verified) Enable(capability uint32) {
	v.ctx.Enable(capability)
	v.check("Enable")
}

func (v *verified) Disable(capability uint32) {
	v.ctx.Disable(capability)
	v.check("Disable")
}

func (v *verified) FrontFace(mode uint32) {
	v.ctx.FrontFace(mode)
	v.check("FrontFace")
}

func (v *verified) CullFace(mode uint32) {
	v.ctx.CullFace(mode)
	v.check("CullFace")
}

func (v *verified) DepthFunc(fn uint32) {
	v.ctx.DepthFunc(fn)
	v.check("DepthFunc")
}

func (v *verified) PixelStorei(pname uint32, param int32) {
	v.ctx.PixelStorei(pname, param)
	v.check("PixelStorei")
}

func (v *verified) ReadPixels(x, y, width, height int32, format uint32, pixels []byte) {
	v.ctx.ReadPixels(x, y, width, height, format, pixels)
	v.check("ReadPixels")
}

func (v *verified) CreateFramebuffer() uint32 {
	fbo := v.ctx.CreateFramebuffer()
	v.check("CreateFramebuffer")
	return fbo
}

func (v *verified) DeleteFramebuffer(fbo uint32) {
	v.ctx.DeleteFramebuffer(fbo)
	v.check("DeleteFramebuffer")
}

func (v *verified) BindFramebuffer(fbo uint32) {
	v.ctx.BindFramebuffer(fbo)
	v.check("BindFramebuffer")
}

func (v *verified) FramebufferTexture(texture uint32) {
	v.ctx.FramebufferTexture(texture)
	v.check("FramebufferTexture")
}

func (v *verified) FramebufferRenderbuffer(rbo uint32) {
	v.ctx.FramebufferRenderbuffer(rbo)
	v.check("FramebufferRenderbuffer")
}

func (v *verified) CreateTexture() uint32 {
	texture := v.ctx.CreateTexture()
	v.check("CreateTexture")
	return texture
}

func (v *verified) DeleteTexture(texture uint32) {
	v.ctx.DeleteTexture(texture)
	v.check("DeleteTexture")
}

func (v *verified) BindTexture(texture uint32) {
	v.ctx.BindTexture(texture)
	v.check("BindTexture")
}

func (v *verified) TexImage2D(width, height int32, format uint32, pixels []byte) {
	v.ctx.TexImage2D(width, height, format, pixels)
	v.check("TexImage2D")
}

func (v *verified) CreateRenderbuffer() uint32 {
	rbo := v.ctx.CreateRenderbuffer()
	v.check("CreateRenderbuffer")
	return rbo
}

func (v *verified) DeleteRenderbuffer(rbo uint32) {
	v.ctx.DeleteRenderbuffer(rbo)
	v.check("DeleteRenderbuffer")
}

func (v *verified) BindRenderbuffer(rbo uint32) {
	v.ctx.BindRenderbuffer(rbo)
	v.check("BindRenderbuffer")
}

func (v *verified) RenderbufferStorage(width, height int32) {
	v.ctx.RenderbufferStorage(width, height)
	v.check("RenderbufferStorage")
}

func (v *verified) DrawTexture(texture uint32, x, y, width, height float32, tint mgl32.Vec4) {
	v.ctx.DrawTexture(texture, x, y, width, height, tint)
	v.check("DrawTexture")
}

func (v *verified) GetError() uint32 {
	return v.ctx.GetError()
}
