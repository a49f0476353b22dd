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

// Package sdlcanvas implements a canvas with an SDL window and an OpenGL 3.2
// core context.
//
// SDL requires that all calls are made from the main thread. The caller
// should lock the main goroutine to its thread with runtime.LockOSThread()
// before calling Open().
package sdlcanvas

import (
	"bytes"
	"fmt"
	"image"
	"runtime"
	"unicode/utf8"
	"unsafe"

	"github.com/jetsetilly/kestrel/canvas"
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/logger"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

// list of swap interval values expected by sdl.GLSetSwapInterval()
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

// Canvas implements the canvas.Canvas interface.
type Canvas struct {
	window    *sdl.Window
	glContext sdl.GLContext
	queue     *event.Queue

	keys     [event.NumKeys]event.Action
	buttons  [event.NumMouseButtons]event.Action
	cursorX  float64
	cursorY  float64
	cursorIn bool
}

var _ canvas.Canvas = (*Canvas)(nil)

// Open creates the SDL window and makes its OpenGL context current. Events
// are pushed to the queue by PollEvents().
func Open(title string, hidden bool, width, height uint32, setup canvas.Setup, queue *event.Queue) (*Canvas, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = setAttributes(setup)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_RESIZABLE)
	if hidden {
		flags |= sdl.WINDOW_HIDDEN
	}

	cnv := &Canvas{
		queue: queue,
	}

	cnv.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	cnv.glContext, err = cnv.window.GLCreateContext()
	if err != nil {
		_ = cnv.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = cnv.window.GLMakeCurrent(cnv.glContext)
	if err != nil {
		_ = cnv.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	if setup.VSync {
		setSwapInterval(syncWithVerticalRetrace)
	} else {
		setSwapInterval(syncImmediateUpdate)
	}

	w, h := cnv.window.GLGetDrawableSize()
	logger.Logf(logger.Allow, "sdl", "drawable size %dx%d", w, h)

	return cnv, nil
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

func setAttributes(setup canvas.Setup) error {
	attrs := []glAttribute{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: 3},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: 2},
		{attr: sdl.GL_CONTEXT_FLAGS, value: sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{attr: sdl.GL_CONTEXT_PROFILE_MASK, value: sdl.GL_CONTEXT_PROFILE_CORE},
		{attr: sdl.GL_DOUBLEBUFFER, value: 1},
		{attr: sdl.GL_DEPTH_SIZE, value: 24},
	}

	if setup.Samples > 0 {
		attrs = append(attrs,
			glAttribute{attr: sdl.GL_MULTISAMPLEBUFFERS, value: 1},
			glAttribute{attr: sdl.GL_MULTISAMPLESAMPLES, value: setup.Samples},
		)
	}

	for _, a := range attrs {
		err := sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
	}

	return nil
}

func setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", i, err.Error())
	}
}

// Destroy implements the canvas.Canvas interface.
func (cnv *Canvas) Destroy() error {
	if cnv.glContext != nil {
		sdl.GLDeleteContext(cnv.glContext)
		cnv.glContext = nil
	}

	if cnv.window != nil {
		err := cnv.window.Destroy()
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		cnv.window = nil
	}
	sdl.Quit()

	return nil
}

// scale returns the ratio of drawable pixels to window coordinates.
func (cnv *Canvas) scale() (float64, float64) {
	ww, wh := cnv.window.GetSize()
	dw, dh := cnv.window.GLGetDrawableSize()
	if ww <= 0 || wh <= 0 {
		return 1.0, 1.0
	}
	return float64(dw) / float64(ww), float64(dh) / float64(wh)
}

// PollEvents implements the canvas.Canvas interface.
func (cnv *Canvas) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			cnv.queue.Push(event.EventClose{})

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_CLOSE:
				cnv.queue.Push(event.EventClose{})
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				w, h := cnv.window.GLGetDrawableSize()
				cnv.queue.Push(event.EventFramebufferSize{Width: uint32(max(w, 0)), Height: uint32(max(h, 0))})
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				cnv.queue.Push(event.EventFocus{Focused: true})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				cnv.queue.Push(event.EventFocus{Focused: false})
			case sdl.WINDOWEVENT_LEAVE:
				cnv.cursorIn = false
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break
			}
			key := translateKey(ev.Keysym.Scancode)
			act := event.Release
			if ev.Type == sdl.KEYDOWN {
				act = event.Press
			}
			cnv.keys[key] = act
			cnv.queue.Push(event.EventKey{Key: key, Action: act, Mods: translateMods(ev.Keysym.Mod)})

		case *sdl.TextInputEvent:
			mods := translateMods(uint16(sdl.GetModState()))
			for _, r := range textInput(ev.Text[:]) {
				cnv.queue.Push(event.EventChar{Char: r, Mods: mods})
			}

		case *sdl.MouseButtonEvent:
			button, ok := translateButton(ev.Button)
			if !ok {
				break
			}
			act := event.Release
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				act = event.Press
			}
			cnv.buttons[button] = act
			mods := translateMods(uint16(sdl.GetModState()))
			cnv.queue.Push(event.EventMouseButton{Button: button, Action: act, Mods: mods})

		case *sdl.MouseMotionEvent:
			sx, sy := cnv.scale()
			cnv.cursorX = float64(ev.X) * sx
			cnv.cursorY = float64(ev.Y) * sy
			cnv.cursorIn = true
			mods := translateMods(uint16(sdl.GetModState()))
			cnv.queue.Push(event.EventCursorPos{X: cnv.cursorX, Y: cnv.cursorY, Mods: mods})

		case *sdl.MouseWheelEvent:
			x, y := float64(ev.X), float64(ev.Y)
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				x, y = -x, -y
			}
			mods := translateMods(uint16(sdl.GetModState()))
			cnv.queue.Push(event.EventScroll{X: x, Y: y, Mods: mods})
		}
	}
}

// textInput returns the runes in the NUL terminated text of an SDL text
// input event.
func textInput(text []byte) []rune {
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	runes := make([]rune, 0, utf8.RuneCount(text))
	for len(text) > 0 {
		r, n := utf8.DecodeRune(text)
		text = text[n:]
		if r == utf8.RuneError {
			continue
		}
		runes = append(runes, r)
	}
	return runes
}

// SwapBuffers implements the canvas.Canvas interface.
func (cnv *Canvas) SwapBuffers() {
	cnv.window.GLSwap()
}

// Size implements the camera.Surface interface. The size is the size of the
// drawable area in pixels, which may differ from the window size on high-DPI
// displays.
func (cnv *Canvas) Size() (uint32, uint32) {
	w, h := cnv.window.GLGetDrawableSize()
	return uint32(max(w, 0)), uint32(max(h, 0))
}

// HidpiFactor implements the camera.Surface interface.
func (cnv *Canvas) HidpiFactor() float64 {
	sx, _ := cnv.scale()
	return sx
}

// CursorPos implements the camera.Surface interface.
func (cnv *Canvas) CursorPos() (float64, float64, bool) {
	return cnv.cursorX, cnv.cursorY, cnv.cursorIn
}

// GetKey implements the camera.Surface interface.
func (cnv *Canvas) GetKey(key event.Key) event.Action {
	if int(key) < 0 || int(key) >= event.NumKeys {
		return event.Release
	}
	return cnv.keys[key]
}

// GetMouseButton implements the camera.Surface interface.
func (cnv *Canvas) GetMouseButton(button event.MouseButton) event.Action {
	if int(button) < 0 || int(button) >= event.NumMouseButtons {
		return event.Release
	}
	return cnv.buttons[button]
}

// SetTitle implements the canvas.Canvas interface.
func (cnv *Canvas) SetTitle(title string) {
	cnv.window.SetTitle(title)
}

// SetIcon implements the canvas.Canvas interface.
func (cnv *Canvas) SetIcon(icon image.Image) {
	if icon == nil {
		return
	}

	b := icon.Bounds()
	if b.Empty() {
		return
	}

	// PIXELFORMAT_ABGR8888 has the same byte order as image.RGBA
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), icon, b.Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&rgba.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(rgba.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "icon: %s", err.Error())
		return
	}
	defer surface.Free()

	cnv.window.SetIcon(surface)
	runtime.KeepAlive(rgba)
}

// SetCursorGrab implements the canvas.Canvas interface.
func (cnv *Canvas) SetCursorGrab(grab bool) {
	cnv.window.SetGrab(grab)
}

// Hide implements the canvas.Canvas interface.
func (cnv *Canvas) Hide() {
	cnv.window.Hide()
}

// Show implements the canvas.Canvas interface.
func (cnv *Canvas) Show() {
	cnv.window.Show()
}
