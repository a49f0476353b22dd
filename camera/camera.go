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

// Package camera defines the interfaces through which the window drives the
// cameras of the 3D and 2D pipelines, together with simple implementations
// of both.
//
// A camera is owned by the embedding application and is lent to the window
// for the duration of a frame. The window forwards events to the camera
// matching the current rendering mode and calls Update() on every camera it
// is given, once per frame.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/event"
)

// Surface is the view of the window available to a camera.
type Surface interface {
	// Size returns the size of the framebuffer in pixels.
	Size() (width uint32, height uint32)

	// HidpiFactor returns the ratio of framebuffer pixels to window units.
	HidpiFactor() float64

	// CursorPos returns the position of the mouse cursor in framebuffer
	// pixels. The ok value is false if the cursor is not over the window.
	CursorPos() (x float64, y float64, ok bool)

	// GetKey returns the most recent action for the key.
	GetKey(key event.Key) event.Action

	// GetMouseButton returns the most recent action for the button.
	GetMouseButton(button event.MouseButton) event.Action
}

// Camera is used by the 3D pipeline.
type Camera interface {
	HandleEvent(s Surface, ev event.Event)
	Update(s Surface)

	// ClipPlanes returns the near and far clipping planes of the projection.
	ClipPlanes() (znear float32, zfar float32)
}

// PlanarCamera is used by the 2D pipeline.
type PlanarCamera interface {
	HandleEvent(s Surface, ev event.Event)
	Update(s Surface)
}

// Positioned is implemented by cameras with a position in the world. Lights
// that stick to the camera follow this position.
type Positioned interface {
	Eye() mgl32.Vec3
}
