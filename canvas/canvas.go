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

// Package canvas defines the platform surface that a window draws to.
//
// A Canvas owns the platform window and the graphics context bound to it. It
// translates platform events into the event types of the event package and
// pushes them to the queue it was created with, and it keeps track of the
// state of the keyboard and mouse for the benefit of cameras.
package canvas

import (
	"image"

	"github.com/jetsetilly/kestrel/camera"
)

// Canvas is implemented by platform surfaces.
type Canvas interface {
	camera.Surface

	// PollEvents moves every event waiting in the platform backend to the
	// event queue. It does not block indefinitely.
	PollEvents()

	// SwapBuffers presents the frame.
	SwapBuffers()

	SetTitle(title string)
	SetIcon(icon image.Image)
	SetCursorGrab(grab bool)
	Hide()
	Show()

	// Destroy closes the platform window. The canvas must not be used
	// afterwards.
	Destroy() error
}

// Setup describes optional qualities of the canvas.
type Setup struct {
	// VSync synchronises SwapBuffers() with the display refresh.
	VSync bool

	// Samples is the number of samples used for multisample anti-aliasing.
	// Zero disables multisampling.
	Samples int
}

// DefaultSetup is used when no Setup is specified.
var DefaultSetup = Setup{
	VSync:   true,
	Samples: 0,
}
