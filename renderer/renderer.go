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

// Package renderer defines the interfaces implemented by the scene renderers
// the window invokes every frame.
package renderer

import "github.com/jetsetilly/kestrel/camera"

// Renderer draws a 3D scene. The pass value is the index of the rendering
// pass. The window currently uses a single pass with index one.
type Renderer interface {
	Render(pass int, cam camera.Camera)
}

// PlanarRenderer draws a 2D scene.
type PlanarRenderer interface {
	Render(cam camera.PlanarCamera)
}

// Func adapts a function to the Renderer interface.
type Func func(pass int, cam camera.Camera)

// Render implements the Renderer interface.
func (f Func) Render(pass int, cam camera.Camera) {
	f(pass, cam)
}

// PlanarFunc adapts a function to the PlanarRenderer interface.
type PlanarFunc func(cam camera.PlanarCamera)

// Render implements the PlanarRenderer interface.
func (f PlanarFunc) Render(cam camera.PlanarCamera) {
	f(cam)
}
