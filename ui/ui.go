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

// Package ui defines the capability through which an immediate mode user
// interface is embedded in a window.
//
// The window is not aware of how the interface is implemented. It forwards
// every event, asks whether the interface has claimed the keyboard or the
// mouse, and asks the interface to draw itself at the end of the frame.
package ui

import "github.com/jetsetilly/kestrel/event"

// UI is implemented by embedded user interfaces.
type UI interface {
	// HandleEvent is called for every event that reaches the dispatch stage.
	// The width and height are those of the framebuffer.
	HandleEvent(ev event.Event, width, height uint32, hidpi float64)

	// CapturingKeyboard returns true if a widget has keyboard focus. Keyboard
	// events are not forwarded to the camera while this is true.
	CapturingKeyboard() bool

	// CapturingMouse returns true if the mouse is over a widget. Mouse events
	// are not forwarded to the camera while this is true.
	CapturingMouse() bool

	// Render draws the interface over the selected render target, which will
	// be the screen.
	Render(width, height uint32, hidpi float64)
}
