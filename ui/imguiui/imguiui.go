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

// Package imguiui implements the ui.UI interface with Dear ImGui.
//
// The interface is described by a layout function that is called once per
// frame, between imgui.NewFrame() and imgui.Render(). The layout function is
// free to call any imgui widget function.
//
// The OpenGL context of the window must be current when New() is called and
// for the lifetime of the UI.
package imguiui

import (
	"fmt"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/logger"
	"github.com/jetsetilly/kestrel/ui"
)

// UI implements the ui.UI interface.
type UI struct {
	context *imgui.Context
	io      imgui.IO
	rnd     *renderer

	layout func()

	mouse     imgui.Vec2
	buttons   mouseButtons
	prevFrame time.Time
}

var _ ui.UI = (*UI)(nil)

// New creates the imgui context and the resources needed to draw it. The
// layout function can be nil and set later with SetLayout().
func New(layout func()) (*UI, error) {
	u := &UI{
		context: imgui.CreateContext(nil),
		layout:  layout,
	}
	u.io = imgui.CurrentIO()

	// window positions are not saved between sessions
	u.io.SetIniFilename("")

	for imguiKey, key := range keyMapping {
		u.io.KeyMap(imguiKey, int(key))
	}

	var err error
	u.rnd, err = newRenderer()
	if err != nil {
		u.context.Destroy()
		return nil, fmt.Errorf("imguiui: %w", err)
	}

	logger.Logf(logger.Allow, "imguiui", "imgui version %s", imgui.Version())

	return u, nil
}

// SetLayout changes the function that describes the interface.
func (u *UI) SetLayout(layout func()) {
	u.layout = layout
}

// Destroy releases the imgui context and its graphics resources.
func (u *UI) Destroy() {
	if u.rnd != nil {
		u.rnd.destroy()
		u.rnd = nil
	}
	if u.context != nil {
		u.context.Destroy()
		u.context = nil
	}
}

// HandleEvent implements the ui.UI interface.
func (u *UI) HandleEvent(ev event.Event, width, height uint32, hidpi float64) {
	switch ev := ev.(type) {
	case event.EventKey:
		if ev.Key == event.KeyUnknown {
			return
		}
		if ev.Action == event.Press {
			u.io.KeyPress(int(ev.Key))
		} else {
			u.io.KeyRelease(int(ev.Key))
		}
		u.io.KeyShift(int(event.KeyLShift), int(event.KeyRShift))
		u.io.KeyCtrl(int(event.KeyLControl), int(event.KeyRControl))
		u.io.KeyAlt(int(event.KeyLAlt), int(event.KeyRAlt))
		u.io.KeySuper(int(event.KeyLSuper), int(event.KeyRSuper))

	case event.EventChar:
		u.io.AddInputCharacters(string(ev.Char))

	case event.EventMouseButton:
		if idx, ok := mouseButtonIndex(ev.Button); ok {
			u.buttons.set(idx, ev.Action == event.Press)
		}

	case event.EventCursorPos:
		if hidpi <= 0 {
			hidpi = 1.0
		}
		u.mouse = imgui.Vec2{X: float32(ev.X / hidpi), Y: float32(ev.Y / hidpi)}

	case event.EventScroll:
		dx, dy := wheelDelta(ev.X, ev.Y)
		u.io.AddMouseWheelDelta(dx, dy)
	}
}

// CapturingKeyboard implements the ui.UI interface.
func (u *UI) CapturingKeyboard() bool {
	return u.io.WantCaptureKeyboard()
}

// CapturingMouse implements the ui.UI interface.
func (u *UI) CapturingMouse() bool {
	return u.io.WantCaptureMouse()
}

// Render implements the ui.UI interface.
func (u *UI) Render(width, height uint32, hidpi float64) {
	if width == 0 || height == 0 {
		return
	}

	display := displaySize(width, height, hidpi)
	u.io.SetDisplaySize(display)

	now := time.Now()
	if u.prevFrame.IsZero() {
		u.io.SetDeltaTime(1.0 / 60.0)
	} else {
		// imgui asserts that the delta is greater than zero
		u.io.SetDeltaTime(max(float32(now.Sub(u.prevFrame).Seconds()), 1.0/1000.0))
	}
	u.prevFrame = now

	u.io.SetMousePosition(u.mouse)
	for i, down := range u.buttons.frame() {
		u.io.SetMouseButtonDown(i, down)
	}

	imgui.NewFrame()
	if u.layout != nil {
		u.layout()
	}
	imgui.Render()

	u.rnd.render(display, imgui.Vec2{X: float32(width), Y: float32(height)}, imgui.RenderedDrawData())
}
