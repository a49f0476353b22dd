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

// Package light describes the single light of the 3D scene.
package light

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/camera"
)

// Light is either fixed at a position in the world or attached to the
// camera. The zero value is a light at the origin.
type Light struct {
	stick bool
	pos   mgl32.Vec3
}

// Absolute returns a light fixed at the position.
func Absolute(pos mgl32.Vec3) Light {
	return Light{pos: pos}
}

// StickToCamera returns a light that follows the camera.
func StickToCamera() Light {
	return Light{stick: true}
}

// Default is the light a new window starts with.
func Default() Light {
	return Absolute(mgl32.Vec3{0, 10, 0})
}

// IsStickToCamera returns true if the light follows the camera.
func (l Light) IsStickToCamera() bool {
	return l.stick
}

// Position returns the position of the light for the camera. A light that
// sticks to the camera is at the camera's eye if the camera has a position
// and at the origin otherwise.
func (l Light) Position(cam camera.Camera) mgl32.Vec3 {
	if !l.stick {
		return l.pos
	}
	if p, ok := cam.(camera.Positioned); ok {
		return p.Eye()
	}
	return mgl32.Vec3{}
}

func (l Light) String() string {
	if l.stick {
		return "stick to camera"
	}
	return fmt.Sprintf("absolute (%.2f, %.2f, %.2f)", l.pos.X(), l.pos.Y(), l.pos.Z())
}
