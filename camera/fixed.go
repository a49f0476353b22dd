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

package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/event"
)

// Fixed is a perspective camera looking at a fixed point. The mouse wheel
// moves the camera towards and away from the point and the arrow keys orbit
// around it.
type Fixed struct {
	at    mgl32.Vec3
	up    mgl32.Vec3
	fovy  float32
	znear float32
	zfar  float32

	// position relative to at, in spherical coordinates
	yaw   float32
	pitch float32
	dist  float32

	aspect float32

	// the radians per frame moved by an arrow key
	orbitStep float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

// NewFixed creates a camera at eye, looking at the point at. The field of view
// is in radians.
func NewFixed(eye, at mgl32.Vec3, fovy, znear, zfar float32) *Fixed {
	c := &Fixed{
		at:        at,
		up:        mgl32.Vec3{0, 1, 0},
		fovy:      fovy,
		znear:     znear,
		zfar:      zfar,
		aspect:    800.0 / 600.0,
		orbitStep: 0.02,
	}

	d := eye.Sub(at)
	c.dist = d.Len()
	if c.dist > 0 {
		c.pitch = float32(math.Asin(float64(d.Y() / c.dist)))
		c.yaw = float32(math.Atan2(float64(d.X()), float64(d.Z())))
	}

	c.updateMatrices()
	return c
}

// Eye returns the position of the camera.
func (c *Fixed) Eye() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.pitch)))
	return c.at.Add(mgl32.Vec3{
		c.dist * cp * float32(math.Sin(float64(c.yaw))),
		c.dist * float32(math.Sin(float64(c.pitch))),
		c.dist * cp * float32(math.Cos(float64(c.yaw))),
	})
}

// At returns the point the camera is looking at.
func (c *Fixed) At() mgl32.Vec3 {
	return c.at
}

// Aspect returns the aspect ratio of the projection.
func (c *Fixed) Aspect() float32 {
	return c.aspect
}

// HandleEvent implements the Camera interface.
func (c *Fixed) HandleEvent(_ Surface, ev event.Event) {
	switch ev := ev.(type) {
	case event.EventFramebufferSize:
		if ev.Width > 0 && ev.Height > 0 {
			c.aspect = float32(ev.Width) / float32(ev.Height)
		}
	case event.EventScroll:
		c.dist *= float32(math.Pow(1.1, -ev.Y))
		c.dist = mgl32.Clamp(c.dist, c.znear*2, c.zfar/2)
	}
}

// Update implements the Camera interface.
func (c *Fixed) Update(s Surface) {
	if s.GetKey(event.KeyLeft) == event.Press {
		c.yaw -= c.orbitStep
	}
	if s.GetKey(event.KeyRight) == event.Press {
		c.yaw += c.orbitStep
	}
	if s.GetKey(event.KeyUp) == event.Press {
		c.pitch += c.orbitStep
	}
	if s.GetKey(event.KeyDown) == event.Press {
		c.pitch -= c.orbitStep
	}

	// stop short of the poles where the up vector is undefined
	const limit = math.Pi/2 - 0.01
	c.pitch = mgl32.Clamp(c.pitch, -limit, limit)

	c.updateMatrices()
}

func (c *Fixed) updateMatrices() {
	c.view = mgl32.LookAtV(c.Eye(), c.at, c.up)
	c.proj = mgl32.Perspective(c.fovy, c.aspect, c.znear, c.zfar)
}

// ClipPlanes implements the Camera interface.
func (c *Fixed) ClipPlanes() (float32, float32) {
	return c.znear, c.zfar
}

// View returns the view matrix as of the most recent call to Update().
func (c *Fixed) View() mgl32.Mat4 {
	return c.view
}

// Projection returns the projection matrix as of the most recent call to
// Update().
func (c *Fixed) Projection() mgl32.Mat4 {
	return c.proj
}

// Transformation returns the combined projection and view matrix.
func (c *Fixed) Transformation() mgl32.Mat4 {
	return c.proj.Mul4(c.view)
}

// Project returns the framebuffer position of a point in the world, with the
// origin in the bottom-left corner. The Z component is the depth in the range
// zero to one.
func (c *Fixed) Project(point mgl32.Vec3, width, height int) mgl32.Vec3 {
	return mgl32.Project(point, c.view, c.proj, 0, 0, width, height)
}
