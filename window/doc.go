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

// Package window is the render loop of the engine.
//
// A Window owns a canvas, the graphics context of the canvas and the event
// queue that the canvas pushes events to. Each call to RenderWith() or
// Render() is a single frame:
//
//   - deferred events and then new events are dispatched
//   - the cameras are refreshed
//   - the scene is drawn to the screen, or to an offscreen target if a
//     post-processing effect is attached for the frame
//   - the effect, text and user interface are drawn over the scene
//   - the frame is presented and the frame rate limit is honoured
//
// Cameras, renderers and effects are owned by the caller and are lent to the
// window for the duration of a frame by way of a Scene.
//
// A window is closed by an EventClose, by releasing the Escape key or by
// calling Close(). A frame that finds the window closed returns false and
// draws nothing. It is the caller's responsibility to stop calling Render()
// once false has been returned, and to call Destroy().
//
// All functions must be called from the goroutine that created the graphics
// context, which should be locked to its OS thread.
package window
