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

// Package headless implements a canvas with no platform window. Drawing is
// performed by the software graphics context.
//
// Events are supplied with Inject() and reach the event queue on the next
// call to PollEvents(), in the same way that events from a platform window
// would.
package headless

import (
	"errors"
	"image"
	"sync"

	"github.com/jetsetilly/kestrel/canvas"
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/gfx/software"
)

// ErrDestroyed is returned by Destroy() if the canvas has already been
// destroyed.
var ErrDestroyed = errors.New("headless: canvas already destroyed")

// Canvas implements the canvas.Canvas interface.
type Canvas struct {
	ctx   *software.Context
	queue *event.Queue

	crit    sync.Mutex
	pending []event.Event

	keys     [event.NumKeys]event.Action
	buttons  [event.NumMouseButtons]event.Action
	cursorX  float64
	cursorY  float64
	cursorIn bool
	hidpi    float64

	title     string
	icon      image.Image
	hidden    bool
	grab      bool
	swaps     int
	destroyed bool
}

var _ canvas.Canvas = (*Canvas)(nil)

// New creates a canvas of the specified size. Events are pushed to the queue
// by PollEvents().
func New(width, height int32, queue *event.Queue) *Canvas {
	return &Canvas{
		ctx:   software.New(width, height),
		queue: queue,
		hidpi: 1.0,
	}
}

// Context returns the graphics context for the canvas.
func (cnv *Canvas) Context() *software.Context {
	return cnv.ctx
}

// Inject an event. It is pushed to the queue by the next call to
// PollEvents(). Inject can be called from any goroutine.
func (cnv *Canvas) Inject(ev ...event.Event) {
	cnv.crit.Lock()
	defer cnv.crit.Unlock()
	cnv.pending = append(cnv.pending, ev...)
}

// Resize the canvas and inject the corresponding framebuffer size event.
func (cnv *Canvas) Resize(width, height int32) {
	cnv.ctx.Resize(width, height)
	cnv.Inject(event.EventFramebufferSize{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))})
}

// SetHidpiFactor sets the value returned by HidpiFactor().
func (cnv *Canvas) SetHidpiFactor(hidpi float64) {
	cnv.hidpi = hidpi
}

// PollEvents implements the canvas.Canvas interface.
func (cnv *Canvas) PollEvents() {
	cnv.crit.Lock()
	pending := cnv.pending
	cnv.pending = nil
	cnv.crit.Unlock()

	for _, ev := range pending {
		switch ev := ev.(type) {
		case event.EventKey:
			if int(ev.Key) >= 0 && int(ev.Key) < event.NumKeys {
				cnv.keys[ev.Key] = ev.Action
			}
		case event.EventMouseButton:
			if int(ev.Button) >= 0 && int(ev.Button) < event.NumMouseButtons {
				cnv.buttons[ev.Button] = ev.Action
			}
		case event.EventCursorPos:
			cnv.cursorX = ev.X
			cnv.cursorY = ev.Y
			cnv.cursorIn = true
		}
		cnv.queue.Push(ev)
	}
}

// SwapBuffers implements the canvas.Canvas interface.
func (cnv *Canvas) SwapBuffers() {
	cnv.swaps++
}

// Swaps returns the number of times SwapBuffers() has been called.
func (cnv *Canvas) Swaps() int {
	return cnv.swaps
}

// Size implements the camera.Surface interface.
func (cnv *Canvas) Size() (uint32, uint32) {
	w, h := cnv.ctx.Size()
	return uint32(w), uint32(h)
}

// HidpiFactor implements the camera.Surface interface.
func (cnv *Canvas) HidpiFactor() float64 {
	return cnv.hidpi
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
	cnv.title = title
}

// Title returns the most recent value given to SetTitle().
func (cnv *Canvas) Title() string {
	return cnv.title
}

// SetIcon implements the canvas.Canvas interface.
func (cnv *Canvas) SetIcon(icon image.Image) {
	cnv.icon = icon
}

// Icon returns the most recent value given to SetIcon().
func (cnv *Canvas) Icon() image.Image {
	return cnv.icon
}

// SetCursorGrab implements the canvas.Canvas interface.
func (cnv *Canvas) SetCursorGrab(grab bool) {
	cnv.grab = grab
}

// CursorGrabbed returns the most recent value given to SetCursorGrab().
func (cnv *Canvas) CursorGrabbed() bool {
	return cnv.grab
}

// Hide implements the canvas.Canvas interface.
func (cnv *Canvas) Hide() {
	cnv.hidden = true
}

// Show implements the canvas.Canvas interface.
func (cnv *Canvas) Show() {
	cnv.hidden = false
}

// Hidden returns true if the canvas is hidden.
func (cnv *Canvas) Hidden() bool {
	return cnv.hidden
}

// Destroy implements the canvas.Canvas interface.
func (cnv *Canvas) Destroy() error {
	if cnv.destroyed {
		return ErrDestroyed
	}
	cnv.destroyed = true
	return nil
}

// Destroyed returns true if Destroy() has been called.
func (cnv *Canvas) Destroyed() bool {
	return cnv.destroyed
}
