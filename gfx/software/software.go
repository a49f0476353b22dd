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

// Package software is an in-memory implementation of gfx.Context.
//
// All drawing happens on the CPU. The default framebuffer is a block of RGBA
// memory the size of which is set with New() and Resize(). Offscreen
// framebuffers, textures and depth renderbuffers are supported as far as the
// render loop needs them.
//
// Errors are recorded in the same way as OpenGL and are retrieved with
// GetError(). Errors can also be injected with InjectError(), which is useful
// when testing error handling. The number of times each function has been
// called is recorded and is available with Calls().
package software

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/gfx"
)

// surface is a block of RGBA pixels. The first row is the bottom row.
type surface struct {
	width  int32
	height int32
	pix    []byte
}

func newSurface(width, height int32) *surface {
	return &surface{
		width:  width,
		height: height,
		pix:    make([]byte, int(width)*int(height)*4),
	}
}

func (s *surface) offset(x, y int32) int {
	return (int(y)*int(s.width) + int(x)) * 4
}

type renderbuffer struct {
	width  int32
	height int32
	depth  []float32
}

type framebuffer struct {
	color uint32
	depth uint32
}

// State is a snapshot of the state of the Context.
type State struct {
	Viewport        [4]int32
	Scissor         [4]int32
	ClearColor      [4]float32
	Framebuffer     uint32
	Texture         uint32
	Renderbuffer    uint32
	ActiveTexture   uint32
	FrontFace       uint32
	CullFace        uint32
	DepthFunc       uint32
	PackAlignment   int32
	UnpackAlignment int32
}

// Context implements the gfx.Context interface.
type Context struct {
	screen *surface

	textures      map[uint32]*surface
	framebuffers  map[uint32]*framebuffer
	renderbuffers map[uint32]*renderbuffer
	nextName      uint32

	state   State
	enabled map[uint32]bool

	err    uint32
	inject map[string]uint32
	calls  map[string]int
}

// New is the preferred method of initialisation for the Context type. The
// default framebuffer, the viewport and the scissor box are all set to the
// specified size.
func New(width, height int32) *Context {
	ctx := &Context{
		screen:        newSurface(max(width, 0), max(height, 0)),
		textures:      make(map[uint32]*surface),
		framebuffers:  make(map[uint32]*framebuffer),
		renderbuffers: make(map[uint32]*renderbuffer),
		nextName:      1,
		enabled:       make(map[uint32]bool),
		inject:        make(map[string]uint32),
		calls:         make(map[string]int),
	}
	ctx.state = State{
		Viewport:        [4]int32{0, 0, width, height},
		Scissor:         [4]int32{0, 0, width, height},
		ActiveTexture:   gfx.Texture0,
		FrontFace:       gfx.CCW,
		CullFace:        gfx.Back,
		DepthFunc:       gfx.Less,
		PackAlignment:   4,
		UnpackAlignment: 4,
	}
	return ctx
}

// Resize the default framebuffer. The content of the framebuffer is lost.
// As with a real window system, the viewport and scissor box are unchanged.
func (ctx *Context) Resize(width, height int32) {
	ctx.screen = newSurface(max(width, 0), max(height, 0))
}

// Size returns the size of the default framebuffer.
func (ctx *Context) Size() (int32, int32) {
	return ctx.screen.width, ctx.screen.height
}

// State returns a snapshot of the current state.
func (ctx *Context) State() State {
	return ctx.state
}

// IsEnabled returns true if the capability has been enabled.
func (ctx *Context) IsEnabled(capability uint32) bool {
	return ctx.enabled[capability]
}

// Calls returns the number of times the named function has been called. For
// example, Calls("DrawTexture").
func (ctx *Context) Calls(name string) int {
	return ctx.calls[name]
}

// ResetCalls sets all call counts to zero.
func (ctx *Context) ResetCalls() {
	clear(ctx.calls)
}

// InjectError causes the next call of the named function to record the error.
func (ctx *Context) InjectError(name string, err uint32) {
	ctx.inject[name] = err
}

// NumTextures returns the number of textures that have been created and not
// yet deleted.
func (ctx *Context) NumTextures() int {
	return len(ctx.textures)
}

// NumFramebuffers returns the number of framebuffers that have been created
// and not yet deleted.
func (ctx *Context) NumFramebuffers() int {
	return len(ctx.framebuffers)
}

// TextureSize returns the dimensions of the texture.
func (ctx *Context) TextureSize(texture uint32) (int32, int32, bool) {
	s, ok := ctx.textures[texture]
	if !ok {
		return 0, 0, false
	}
	return s.width, s.height, true
}

// RenderbufferSize returns the dimensions of the renderbuffer.
func (ctx *Context) RenderbufferSize(rbo uint32) (int32, int32, bool) {
	r, ok := ctx.renderbuffers[rbo]
	if !ok {
		return 0, 0, false
	}
	return r.width, r.height, true
}

// TexturePixel returns the RGBA value of a texel. The origin is the
// bottom-left corner.
func (ctx *Context) TexturePixel(texture uint32, x, y int32) ([4]byte, bool) {
	s, ok := ctx.textures[texture]
	if !ok || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return [4]byte{}, false
	}
	i := s.offset(x, y)
	return [4]byte(s.pix[i : i+4]), true
}

// called is invoked at the start of every gfx.Context function. It returns
// false if an injected error has been recorded, in which case the function
// should have no further effect.
func (ctx *Context) called(name string) bool {
	ctx.calls[name]++
	if err, ok := ctx.inject[name]; ok {
		delete(ctx.inject, name)
		ctx.setError(err)
		return false
	}
	return true
}

// setError records the error unless an earlier error is still unread.
func (ctx *Context) setError(err uint32) {
	if ctx.err == gfx.NoError {
		ctx.err = err
	}
}

// GetError implements the gfx.Context interface.
func (ctx *Context) GetError() uint32 {
	err := ctx.err
	ctx.err = gfx.NoError
	return err
}

// target returns the colour surface of the bound framebuffer and the depth
// buffer, if there is one. The surface is nil if the bound framebuffer has no
// colour attachment.
func (ctx *Context) target() (*surface, *renderbuffer) {
	if ctx.state.Framebuffer == 0 {
		return ctx.screen, nil
	}
	fb := ctx.framebuffers[ctx.state.Framebuffer]
	return ctx.textures[fb.color], ctx.renderbuffers[fb.depth]
}

// clip returns the rectangle clipped to the scissor box, if enabled, and to
// the surface.
func (ctx *Context) clip(s *surface, x0, y0, x1, y1 int32) (int32, int32, int32, int32) {
	if ctx.enabled[gfx.CapScissorTest] {
		sc := ctx.state.Scissor
		x0 = max(x0, sc[0])
		y0 = max(y0, sc[1])
		x1 = min(x1, sc[0]+sc[2])
		y1 = min(y1, sc[1]+sc[3])
	}
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, s.width)
	y1 = min(y1, s.height)
	return x0, y0, x1, y1
}

// ActiveTexture implements the gfx.Context interface.
func (ctx *Context) ActiveTexture(unit uint32) {
	if !ctx.called("ActiveTexture") {
		return
	}
	if unit < gfx.Texture0 || unit >= gfx.Texture0+32 {
		ctx.setError(gfx.InvalidEnum)
		return
	}
	ctx.state.ActiveTexture = unit
}

// ClearColor implements the gfx.Context interface.
func (ctx *Context) ClearColor(r, g, b, a float32) {
	if !ctx.called("ClearColor") {
		return
	}
	ctx.state.ClearColor = [4]float32{
		mgl32.Clamp(r, 0, 1),
		mgl32.Clamp(g, 0, 1),
		mgl32.Clamp(b, 0, 1),
		mgl32.Clamp(a, 0, 1),
	}
}

// Clear implements the gfx.Context interface.
func (ctx *Context) Clear(mask uint32) {
	if !ctx.called("Clear") {
		return
	}
	if mask&^(gfx.ColorBufferBit|gfx.DepthBufferBit) != 0 {
		ctx.setError(gfx.InvalidValue)
		return
	}

	s, depth := ctx.target()
	if s == nil {
		ctx.setError(gfx.InvalidFramebufferOperation)
		return
	}

	x0, y0, x1, y1 := ctx.clip(s, 0, 0, s.width, s.height)

	if mask&gfx.ColorBufferBit == gfx.ColorBufferBit {
		c := toBytes(ctx.state.ClearColor)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				i := s.offset(x, y)
				copy(s.pix[i:i+4], c[:])
			}
		}
	}

	if mask&gfx.DepthBufferBit == gfx.DepthBufferBit && depth != nil {
		for y := max(y0, 0); y < min(y1, depth.height); y++ {
			for x := max(x0, 0); x < min(x1, depth.width); x++ {
				depth.depth[int(y)*int(depth.width)+int(x)] = 1.0
			}
		}
	}
}

// Viewport implements the gfx.Context interface.
func (ctx *Context) Viewport(x, y, width, height int32) {
	if !ctx.called("Viewport") {
		return
	}
	if width < 0 || height < 0 {
		ctx.setError(gfx.InvalidValue)
		return
	}
	ctx.state.Viewport = [4]int32{x, y, width, height}
}

// Scissor implements the gfx.Context interface.
func (ctx *Context) Scissor(x, y, width, height int32) {
	if !ctx.called("Scissor") {
		return
	}
	if width < 0 || height < 0 {
		ctx.setError(gfx.InvalidValue)
		return
	}
	ctx.state.Scissor = [4]int32{x, y, width, height}
}

func validCapability(capability uint32) bool {
	switch capability {
	case gfx.CapCullFace, gfx.CapDepthTest, gfx.CapBlend, gfx.CapScissorTest, gfx.CapProgramPointSize:
		return true
	}
	return false
}

// Enable implements the gfx.Context interface.
func (ctx *Context) Enable(capability uint32) {
	if !ctx.called("Enable") {
		return
	}
	if !validCapability(capability) {
		ctx.setError(gfx.InvalidEnum)
		return
	}
	ctx.enabled[capability] = true
}

// Disable implements the gfx.Context interface.
func (ctx *Context) Disable(capability uint32) {
	if !ctx.called("Disable") {
		return
	}
	if !validCapability(capability) {
		ctx.setError(gfx.InvalidEnum)
		return
	}
	ctx.enabled[capability] = false
}

// FrontFace implements the gfx.Context interface.
func (ctx *Context) FrontFace(mode uint32) {
	if !ctx.called("FrontFace") {
		return
	}
	if mode != gfx.CW && mode != gfx.CCW {
		ctx.setError(gfx.InvalidEnum)
		return
	}
	ctx.state.FrontFace = mode
}

// CullFace implements the gfx.Context interface.
func (ctx *Context) CullFace(mode uint32) {
	if !ctx.called("CullFace") {
		return
	}
	if mode != gfx.Front && mode != gfx.Back && mode != gfx.FrontAndBack {
		ctx.setError(gfx.InvalidEnum)
		return
	}
	ctx.state.CullFace = mode
}

// DepthFunc implements the gfx.Context interface.
func (ctx *Context) DepthFunc(fn uint32) {
	if !ctx.called("DepthFunc") {
		return
	}
	if fn < gfx.Never || fn > gfx.Always {
		ctx.setError(gfx.InvalidEnum)
		return
	}
	ctx.state.DepthFunc = fn
}

// PixelStorei implements the gfx.Context interface.
func (ctx *Context) PixelStorei(pname uint32, param int32) {
	if !ctx.called("PixelStorei") {
		return
	}
	switch param {
	case 1, 2, 4, 8:
	default:
		ctx.setError(gfx.InvalidValue)
		return
	}
	switch pname {
	case gfx.PackAlignment:
		ctx.state.PackAlignment = param
	case gfx.UnpackAlignment:
		ctx.state.UnpackAlignment = param
	default:
		ctx.setError(gfx.InvalidEnum)
	}
}

// rowStride returns the number of bytes between the start of each row for
// the given row length and alignment.
func rowStride(width int32, comps int, alignment int32) int {
	n := int(width) * comps
	a := int(alignment)
	return (n + a - 1) / a * a
}

// ReadPixels implements the gfx.Context interface.
func (ctx *Context) ReadPixels(x, y, width, height int32, format uint32, pixels []byte) {
	if !ctx.called("ReadPixels") {
		return
	}
	if width < 0 || height < 0 {
		ctx.setError(gfx.InvalidValue)
		return
	}
	comps := gfx.Components(format)
	if comps == 0 {
		ctx.setError(gfx.InvalidEnum)
		return
	}
	if width == 0 || height == 0 {
		return
	}

	stride := rowStride(width, comps, ctx.state.PackAlignment)
	if len(pixels) < stride*int(height-1)+int(width)*comps {
		ctx.setError(gfx.InvalidOperation)
		return
	}

	s, _ := ctx.target()
	if s == nil {
		ctx.setError(gfx.InvalidFramebufferOperation)
		return
	}

	for r := int32(0); r < height; r++ {
		sy := y + r
		if sy < 0 || sy >= s.height {
			continue
		}
		row := pixels[int(r)*stride:]
		for c := int32(0); c < width; c++ {
			sx := x + c
			if sx < 0 || sx >= s.width {
				continue
			}
			i := s.offset(sx, sy)
			copy(row[int(c)*comps:int(c+1)*comps], s.pix[i:i+comps])
		}
	}
}

func (ctx *Context) name() uint32 {
	n := ctx.nextName
	ctx.nextName++
	return n
}

// CreateFramebuffer implements the gfx.Context interface.
func (ctx *Context) CreateFramebuffer() uint32 {
	if !ctx.called("CreateFramebuffer") {
		return 0
	}
	n := ctx.name()
	ctx.framebuffers[n] = &framebuffer{}
	return n
}

// DeleteFramebuffer implements the gfx.Context interface.
func (ctx *Context) DeleteFramebuffer(fbo uint32) {
	if !ctx.called("DeleteFramebuffer") {
		return
	}
	if fbo == 0 {
		return
	}
	delete(ctx.framebuffers, fbo)
	if ctx.state.Framebuffer == fbo {
		ctx.state.Framebuffer = 0
	}
}

// BindFramebuffer implements the gfx.Context interface.
func (ctx *Context) BindFramebuffer(fbo uint32) {
	if !ctx.called("BindFramebuffer") {
		return
	}
	if _, ok := ctx.framebuffers[fbo]; fbo != 0 && !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	ctx.state.Framebuffer = fbo
}

// FramebufferTexture implements the gfx.Context interface.
func (ctx *Context) FramebufferTexture(texture uint32) {
	if !ctx.called("FramebufferTexture") {
		return
	}
	fb, ok := ctx.framebuffers[ctx.state.Framebuffer]
	if !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	if _, ok := ctx.textures[texture]; texture != 0 && !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	fb.color = texture
}

// FramebufferRenderbuffer implements the gfx.Context interface.
func (ctx *Context) FramebufferRenderbuffer(rbo uint32) {
	if !ctx.called("FramebufferRenderbuffer") {
		return
	}
	fb, ok := ctx.framebuffers[ctx.state.Framebuffer]
	if !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	if _, ok := ctx.renderbuffers[rbo]; rbo != 0 && !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	fb.depth = rbo
}

// CreateTexture implements the gfx.Context interface.
func (ctx *Context) CreateTexture() uint32 {
	if !ctx.called("CreateTexture") {
		return 0
	}
	n := ctx.name()
	ctx.textures[n] = newSurface(0, 0)
	return n
}

// DeleteTexture implements the gfx.Context interface.
func (ctx *Context) DeleteTexture(texture uint32) {
	if !ctx.called("DeleteTexture") {
		return
	}
	if texture == 0 {
		return
	}
	delete(ctx.textures, texture)
	if ctx.state.Texture == texture {
		ctx.state.Texture = 0
	}
}

// BindTexture implements the gfx.Context interface.
func (ctx *Context) BindTexture(texture uint32) {
	if !ctx.called("BindTexture") {
		return
	}
	if _, ok := ctx.textures[texture]; texture != 0 && !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	ctx.state.Texture = texture
}

// TexImage2D implements the gfx.Context interface.
func (ctx *Context) TexImage2D(width, height int32, format uint32, pixels []byte) {
	if !ctx.called("TexImage2D") {
		return
	}
	s, ok := ctx.textures[ctx.state.Texture]
	if !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	if width < 0 || height < 0 {
		ctx.setError(gfx.InvalidValue)
		return
	}
	comps := gfx.Components(format)
	if comps == 0 {
		ctx.setError(gfx.InvalidEnum)
		return
	}

	stride := rowStride(width, comps, ctx.state.UnpackAlignment)
	if pixels != nil && width > 0 && height > 0 && len(pixels) < stride*int(height-1)+int(width)*comps {
		ctx.setError(gfx.InvalidOperation)
		return
	}

	*s = *newSurface(width, height)
	if pixels == nil {
		return
	}

	for y := int32(0); y < height; y++ {
		row := pixels[int(y)*stride:]
		for x := int32(0); x < width; x++ {
			i := s.offset(x, y)
			copy(s.pix[i:i+comps], row[int(x)*comps:int(x+1)*comps])
			if comps == 3 {
				s.pix[i+3] = 0xff
			}
		}
	}
}

// CreateRenderbuffer implements the gfx.Context interface.
func (ctx *Context) CreateRenderbuffer() uint32 {
	if !ctx.called("CreateRenderbuffer") {
		return 0
	}
	n := ctx.name()
	ctx.renderbuffers[n] = &renderbuffer{}
	return n
}

// DeleteRenderbuffer implements the gfx.Context interface.
func (ctx *Context) DeleteRenderbuffer(rbo uint32) {
	if !ctx.called("DeleteRenderbuffer") {
		return
	}
	if rbo == 0 {
		return
	}
	delete(ctx.renderbuffers, rbo)
	if ctx.state.Renderbuffer == rbo {
		ctx.state.Renderbuffer = 0
	}
}

// BindRenderbuffer implements the gfx.Context interface.
func (ctx *Context) BindRenderbuffer(rbo uint32) {
	if !ctx.called("BindRenderbuffer") {
		return
	}
	if _, ok := ctx.renderbuffers[rbo]; rbo != 0 && !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	ctx.state.Renderbuffer = rbo
}

// RenderbufferStorage implements the gfx.Context interface.
func (ctx *Context) RenderbufferStorage(width, height int32) {
	if !ctx.called("RenderbufferStorage") {
		return
	}
	r, ok := ctx.renderbuffers[ctx.state.Renderbuffer]
	if !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	if width < 0 || height < 0 {
		ctx.setError(gfx.InvalidValue)
		return
	}
	r.width = width
	r.height = height
	r.depth = make([]float32, int(width)*int(height))
}

// DrawTexture implements the gfx.Context interface. The texture is sampled
// with the nearest texel.
func (ctx *Context) DrawTexture(texture uint32, x, y, width, height float32, tint mgl32.Vec4) {
	if !ctx.called("DrawTexture") {
		return
	}
	src, ok := ctx.textures[texture]
	if !ok {
		ctx.setError(gfx.InvalidOperation)
		return
	}
	dst, _ := ctx.target()
	if dst == nil {
		ctx.setError(gfx.InvalidFramebufferOperation)
		return
	}
	if width <= 0 || height <= 0 || src.width == 0 || src.height == 0 {
		return
	}

	// rectangle in framebuffer coordinates
	vp := ctx.state.Viewport
	fx := float32(vp[0]) + x
	fy := float32(vp[1]) + y
	x0, y0, x1, y1 := ctx.clip(dst,
		int32(fx+0.5), int32(fy+0.5),
		int32(fx+width+0.5), int32(fy+height+0.5))

	for dy := y0; dy < y1; dy++ {
		v := (float32(dy) + 0.5 - fy) / height
		sy := min(int32(v*float32(src.height)), src.height-1)
		for dx := x0; dx < x1; dx++ {
			u := (float32(dx) + 0.5 - fx) / width
			sx := min(int32(u*float32(src.width)), src.width-1)

			si := src.offset(max(sx, 0), max(sy, 0))
			di := dst.offset(dx, dy)

			a := float32(src.pix[si+3]) / 255 * tint[3]
			for c := range 3 {
				s := float32(src.pix[si+c]) / 255 * tint[c]
				d := float32(dst.pix[di+c]) / 255
				dst.pix[di+c] = toByte(s*a + d*(1-a))
			}
			da := float32(dst.pix[di+3]) / 255
			dst.pix[di+3] = toByte(a + da*(1-a))
		}
	}
}

func toByte(v float32) byte {
	return byte(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

func toBytes(c [4]float32) [4]byte {
	return [4]byte{toByte(c[0]), toByte(c[1]), toByte(c[2]), toByte(c[3])}
}
