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

// Package desktop opens a window on the desktop. It brings together the SDL
// canvas, the OpenGL graphics context and the render loop of the window
// package.
//
// The functions in this package must be called from the main thread.
package desktop

import (
	"fmt"

	"github.com/jetsetilly/kestrel/canvas"
	"github.com/jetsetilly/kestrel/canvas/sdlcanvas"
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/gfx/gl32"
	"github.com/jetsetilly/kestrel/window"
)

// the graphics context must be released while the OpenGL context it was
// created with still exists
type glCanvas struct {
	*sdlcanvas.Canvas
	ctx *gl32.Context
}

func (cnv *glCanvas) Destroy() error {
	cnv.ctx.Destroy()
	return cnv.Canvas.Destroy()
}

// Open a visible window of the default size.
func Open(title string) (*window.Window, error) {
	return OpenWithSetup(title, false, window.DefaultWidth, window.DefaultHeight, canvas.DefaultSetup)
}

// OpenHidden opens a window of the default size that is not shown until
// Show() is called.
func OpenHidden(title string) (*window.Window, error) {
	return OpenWithSetup(title, true, window.DefaultWidth, window.DefaultHeight, canvas.DefaultSetup)
}

// OpenWithSize opens a visible window of the specified size.
func OpenWithSize(title string, width, height uint32) (*window.Window, error) {
	return OpenWithSetup(title, false, width, height, canvas.DefaultSetup)
}

// OpenWithSetup opens a window with full control over its initial state.
func OpenWithSetup(title string, hidden bool, width, height uint32, setup canvas.Setup) (*window.Window, error) {
	queue := event.NewQueue()

	sdl, err := sdlcanvas.Open(title, hidden, width, height, setup, queue)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}

	ctx, err := gl32.New()
	if err != nil {
		_ = sdl.Destroy()
		return nil, fmt.Errorf("desktop: %w", err)
	}

	cnv := &glCanvas{Canvas: sdl, ctx: ctx}

	w, err := window.New(cnv, ctx, queue)
	if err != nil {
		_ = cnv.Destroy()
		return nil, fmt.Errorf("desktop: %w", err)
	}
	w.SetTitle(title)

	return w, nil
}
