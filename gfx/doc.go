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

// Package gfx defines the graphics context consumed by the render loop.
//
// The Context interface is a small, immediate-mode subset of OpenGL. Values
// passed to the Context use the OpenGL enumeration values, which are listed
// as constants in this package, so that an OpenGL implementation can pass
// them through without translation.
//
// Errors are reported through GetError(), in the manner of OpenGL. The
// Verified() function wraps a Context so that an error reported after any
// state changing call causes a panic identifying the call. A misconfigured
// graphics context is not something the render loop can recover from.
//
// Two implementations exist. The gl32 package is an OpenGL 3.2 core
// implementation and the software package is an in-memory implementation
// suitable for headless rendering and for testing.
package gfx
