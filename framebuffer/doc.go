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

// Package framebuffer selects the render target that draw calls write to.
//
// A Manager is created for a gfx.Context. It provides the screen render
// target, which is a logical handle on the default framebuffer with no
// storage of its own, and creates offscreen render targets, which own a
// colour texture and optionally a depth buffer.
//
//	fbm := framebuffer.NewManager(ctx, 800, 600)
//	offscreen := fbm.NewRenderTarget(800, 600, true)
//
// Select() binds a render target and sets the viewport to its dimensions:
//
//	fbm.Select(offscreen)
//	// draw scene
//	fbm.Select(fbm.Screen())
//	// draw offscreen.Texture() to the screen
//
// Render targets should be resized with Resize() whenever the window is
// resized. Resize() returns true if the previous content has been lost, in
// the manner of a Setup() function. The first sizing of a target is not a
// loss of content.
package framebuffer
