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

package window

import (
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/gfx"
)

// RenderWith renders a single frame of the scene. Returns false if the window
// is closed, in which case nothing is drawn.
//
// Panics with ErrNoCamera if the scene has no camera for the current
// rendering mode.
func (w *Window) RenderWith(scene Scene) bool {
	if w.closed {
		return false
	}

	w.handleEvents(scene)
	if w.closed {
		return false
	}

	w.renderFrame(scene)
	return true
}

// Render renders a single frame of the scene returned by the state and then
// steps the state. Returns false if the window is closed.
func (w *Window) Render(state State) bool {
	if !w.RenderWith(state.Scene()) {
		return false
	}
	state.Step(w)
	return !w.closed
}

// RenderLoop renders frames until the window is closed.
func (w *Window) RenderLoop(state State) {
	for w.Render(state) {
	}
}

// handleEvents dispatches deferred events and then queued events. Polling
// the canvas happens last so that the events polled are visible through
// Events() until the next frame.
func (w *Window) handleEvents(scene Scene) {
	for _, ev := range w.queue.DrainUnhandled() {
		w.handleEvent(scene, ev)
	}
	for _, ev := range w.queue.Drain() {
		w.handleEvent(scene, ev)
	}
	w.cnv.PollEvents()
}

func (w *Window) handleEvent(scene Scene, ev event.Event) {
	switch ev := ev.(type) {
	case event.EventKey:
		if ev.Key == event.KeyEscape && ev.Action == event.Release {
			w.closed = true
			return
		}
	case event.EventClose:
		w.closed = true
		return
	case event.EventFramebufferSize:
		w.updateViewport(int32(ev.Width), int32(ev.Height))
	}

	// resize events are also seen by the user interface and the camera
	if w.ui != nil {
		width, height := w.cnv.Size()
		w.ui.HandleEvent(ev, width, height, w.cnv.HidpiFactor())
		if event.IsKeyboard(ev) && w.ui.CapturingKeyboard() {
			return
		}
		if event.IsMouse(ev) && w.ui.CapturingMouse() {
			return
		}
	}

	switch w.mode {
	case ThreeD:
		if scene.Camera != nil {
			scene.Camera.HandleEvent(w.cnv, ev)
		}
	case TwoD:
		if scene.PlanarCamera != nil {
			scene.PlanarCamera.HandleEvent(w.cnv, ev)
		}
	}
}

func (w *Window) updateViewport(width, height int32) {
	w.ctx.Scissor(0, 0, width, height)
	w.ctx.Viewport(0, 0, width, height)
	w.fbm.Screen().Resize(width, height)
	w.postProcess.Resize(width, height)
}

func (w *Window) renderFrame(scene Scene) {
	switch w.mode {
	case ThreeD:
		if scene.Camera == nil {
			panic(ErrNoCamera)
		}
	case TwoD:
		if scene.PlanarCamera == nil {
			panic(ErrNoCamera)
		}
	}

	now := w.pacer.Now()
	dt := now.Sub(w.prevFrame).Seconds()
	w.prevFrame = now

	width, height := w.cnv.Size()

	// both cameras are kept up to date so that switching mode never finds a
	// stale camera
	resize := event.EventFramebufferSize{Width: width, Height: height}
	if scene.PlanarCamera != nil {
		scene.PlanarCamera.HandleEvent(w.cnv, resize)
	}
	if scene.Camera != nil {
		scene.Camera.HandleEvent(w.cnv, resize)
	}
	if scene.PlanarCamera != nil {
		scene.PlanarCamera.Update(w.cnv)
	}
	if scene.Camera != nil {
		scene.Camera.Update(w.cnv)
	}

	if w.light.IsStickToCamera() {
		w.lightPos = w.light.Position(scene.Camera)
	}

	if scene.Effect != nil {
		w.fbm.Select(w.postProcess)
	} else {
		w.fbm.Select(w.fbm.Screen())
	}

	w.clear()

	switch w.mode {
	case ThreeD:
		if scene.Renderer != nil {
			scene.Renderer.Render(1, scene.Camera)
		}
	case TwoD:
		if scene.PlanarRenderer != nil {
			scene.PlanarRenderer.Render(scene.PlanarCamera)
		}
	}

	if scene.Effect != nil {
		znear, zfar := float32(DefaultZNear), float32(DefaultZFar)
		if scene.Camera != nil {
			znear, zfar = scene.Camera.ClipPlanes()
		}
		w.fbm.Select(w.fbm.Screen())
		scene.Effect.Update(float32(dt), float32(width), float32(height), znear, zfar)
		scene.Effect.Draw(w.postProcess)
	}

	w.text.Render(float32(width), float32(height))
	if w.ui != nil {
		w.ui.Render(width, height, w.cnv.HidpiFactor())
	}

	w.cnv.SwapBuffers()
	w.pacer.Throttle()
}

func (w *Window) clear() {
	w.ctx.ActiveTexture(gfx.Texture0)
	w.ctx.ClearColor(w.background[0], w.background[1], w.background[2], 1.0)
	w.ctx.Clear(gfx.ColorBufferBit)
	w.ctx.Clear(gfx.DepthBufferBit)
}
