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
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/camera"
	"github.com/jetsetilly/kestrel/canvas"
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/framebuffer"
	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/light"
	"github.com/jetsetilly/kestrel/logger"
	"github.com/jetsetilly/kestrel/performance/limiter"
	"github.com/jetsetilly/kestrel/postprocessing"
	"github.com/jetsetilly/kestrel/renderer"
	"github.com/jetsetilly/kestrel/resource"
	"github.com/jetsetilly/kestrel/text"
	"github.com/jetsetilly/kestrel/ui"
)

// Default dimensions of a window.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Default clip planes given to a post-processing effect when the frame has
// no 3D camera.
const (
	DefaultZNear = 0.1
	DefaultZFar  = 1024.0
)

// ErrNoCamera is the value of the panic raised by a frame with no camera for
// the current rendering mode.
var ErrNoCamera = errors.New("window: no camera for rendering mode")

// RenderMode selects which of the cameras and renderers in a Scene are used.
type RenderMode int

// List of valid RenderMode values.
const (
	ThreeD RenderMode = iota
	TwoD
)

func (m RenderMode) String() string {
	switch m {
	case ThreeD:
		return "3D"
	case TwoD:
		return "2D"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Scene is the set of objects lent to the window for a single frame. Any
// field can be nil, except for the camera of the current rendering mode.
type Scene struct {
	Camera         camera.Camera
	PlanarCamera   camera.PlanarCamera
	Renderer       renderer.Renderer
	PlanarRenderer renderer.PlanarRenderer
	Effect         postprocessing.Effect
}

// State is implemented by applications that want the window to drive them.
type State interface {
	// Scene returns the objects to use for the next frame.
	Scene() Scene

	// Step is called after every frame that did not close the window.
	Step(w *Window)
}

// Window is the render loop.
type Window struct {
	cnv    canvas.Canvas
	ctx    gfx.Context
	queue  *event.Queue
	events *event.Manager

	fbm         *framebuffer.Manager
	postProcess *framebuffer.RenderTarget
	text        *text.Renderer
	ui          ui.UI

	pacer     *limiter.Pacer
	prevFrame time.Time

	title      string
	mode       RenderMode
	background mgl32.Vec3
	light      light.Light
	lightPos   mgl32.Vec3
	closed     bool

	// whether Destroy() should also destroy the resource package
	ownsResources bool
}

// New creates a window using the canvas and its graphics context. The queue
// must be the queue the canvas pushes events to.
func New(cnv canvas.Canvas, ctx gfx.Context, queue *event.Queue) (*Window, error) {
	if cnv == nil {
		return nil, fmt.Errorf("window: no canvas")
	}
	if ctx == nil {
		return nil, fmt.Errorf("window: no graphics context")
	}
	if queue == nil {
		return nil, fmt.Errorf("window: no event queue")
	}

	ctx = gfx.Verified(ctx)
	initContext(ctx)

	w := &Window{
		cnv:        cnv,
		ctx:        ctx,
		queue:      queue,
		events:     event.NewManager(queue),
		pacer:      limiter.NewPacer(),
		mode:       ThreeD,
		background: mgl32.Vec3{0, 0, 0},
	}

	if !resource.Initialised() {
		if err := resource.Init(ctx); err != nil {
			return nil, fmt.Errorf("window: %w", err)
		}
		w.ownsResources = true
	}

	width, height := cnv.Size()
	w.fbm = framebuffer.NewManager(ctx, int32(width), int32(height))
	w.postProcess = w.fbm.NewRenderTarget(int32(width), int32(height), true)
	ctx.Scissor(0, 0, int32(width), int32(height))
	w.fbm.Select(w.fbm.Screen())

	w.text = text.NewRenderer(ctx)
	w.SetLight(light.Default())
	w.prevFrame = w.pacer.Now()

	logger.Logf(logger.Allow, "window", "created (%dx%d)", width, height)

	return w, nil
}

// initContext configures the graphics context in the way the renderers
// expect it.
func initContext(ctx gfx.Context) {
	ctx.FrontFace(gfx.CCW)
	ctx.Enable(gfx.CapDepthTest)
	ctx.Enable(gfx.CapScissorTest)
	ctx.Enable(gfx.CapProgramPointSize)
	ctx.DepthFunc(gfx.LEqual)
	ctx.Enable(gfx.CapCullFace)
	ctx.CullFace(gfx.Back)
}

// Destroy releases everything owned by the window, including the canvas. The
// window must not be used afterwards.
func (w *Window) Destroy() error {
	w.closed = true
	w.text.Destroy()
	w.postProcess.Destroy()
	if w.ownsResources {
		resource.Destroy()
		w.ownsResources = false
	}
	w.queue.Close()

	if err := w.cnv.Destroy(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Close the window. The next frame will return false.
func (w *Window) Close() {
	w.closed = true
}

// ShouldClose returns true if the window has been closed.
func (w *Window) ShouldClose() bool {
	return w.closed
}

// IsClosed returns true if the window has been closed. It is the same as
// ShouldClose().
func (w *Window) IsClosed() bool {
	return w.closed
}

// Hide the window without closing it.
func (w *Window) Hide() {
	w.cnv.Hide()
}

// Show a hidden window.
func (w *Window) Show() {
	w.cnv.Show()
}

// SetTitle sets the title of the window.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.cnv.SetTitle(title)
}

// Title returns the most recent title given to SetTitle().
func (w *Window) Title() string {
	return w.title
}

// SetIcon sets the icon of the window.
func (w *Window) SetIcon(icon image.Image) {
	w.cnv.SetIcon(icon)
}

// SetCursorGrab prevents the mouse cursor from leaving the window.
func (w *Window) SetCursorGrab(grab bool) {
	w.cnv.SetCursorGrab(grab)
}

// SetBackgroundColor sets the colour the frame is cleared to. Components are
// in the range zero to one.
func (w *Window) SetBackgroundColor(r, g, b float32) {
	w.background = mgl32.Vec3{r, g, b}
}

// BackgroundColor returns the colour the frame is cleared to.
func (w *Window) BackgroundColor() mgl32.Vec3 {
	return w.background
}

// SetLight sets the light of the 3D scene.
func (w *Window) SetLight(l light.Light) {
	w.light = l
	w.lightPos = l.Position(nil)
}

// Light returns the light of the 3D scene.
func (w *Window) Light() light.Light {
	return w.light
}

// LightPosition returns the position of the light as of the most recent
// frame.
func (w *Window) LightPosition() mgl32.Vec3 {
	return w.lightPos
}

// SetFramerateLimit sets the maximum number of frames per second. A limit of
// zero is a programming error and causes a panic.
func (w *Window) SetFramerateLimit(fps uint) {
	if err := w.pacer.SetLimit(fps); err != nil {
		panic(fmt.Errorf("window: %w", err))
	}
}

// RemoveFramerateLimit allows frames to be rendered as quickly as possible.
func (w *Window) RemoveFramerateLimit() {
	w.pacer.RemoveLimit()
}

// FramerateLimit returns the minimum duration of a frame. A duration of zero
// means there is no limit.
func (w *Window) FramerateLimit() time.Duration {
	return w.pacer.Limit()
}

// SwitchRenderingMode toggles between the 3D and 2D rendering modes. The
// change takes effect at the start of the next frame.
func (w *Window) SwitchRenderingMode() {
	switch w.mode {
	case ThreeD:
		w.mode = TwoD
	default:
		w.mode = ThreeD
	}
}

// RenderingMode returns the current rendering mode.
func (w *Window) RenderingMode() RenderMode {
	return w.mode
}

// Width returns the width of the framebuffer in pixels.
func (w *Window) Width() uint32 {
	width, _ := w.cnv.Size()
	return width
}

// Height returns the height of the framebuffer in pixels.
func (w *Window) Height() uint32 {
	_, height := w.cnv.Size()
	return height
}

// Size returns the size of the framebuffer in pixels.
func (w *Window) Size() (uint32, uint32) {
	return w.cnv.Size()
}

// HidpiFactor returns the ratio of framebuffer pixels to window units.
func (w *Window) HidpiFactor() float64 {
	return w.cnv.HidpiFactor()
}

// GetKey returns the most recent action for the key.
func (w *Window) GetKey(key event.Key) event.Action {
	return w.cnv.GetKey(key)
}

// CursorPos returns the position of the mouse cursor. The ok value is false
// if the position is not known.
func (w *Window) CursorPos() (x float64, y float64, ok bool) {
	return w.cnv.CursorPos()
}

// Events returns the event manager for the window. Events seen through the
// manager, and not inhibited, are handled by the window on the next frame.
func (w *Window) Events() *event.Manager {
	return w.events
}

// DrawText queues a string to be drawn over the next frame. The position is
// in framebuffer pixels from the top-left corner. A nil font means the
// default font.
func (w *Window) DrawText(s string, pos mgl32.Vec2, scale float32, font *text.Font, col mgl32.Vec3) {
	w.text.DrawText(s, pos, scale, font, col)
}

// AddTexture loads the image file at path as a texture with the name. If a
// texture already exists with the name it is returned without loading the
// file.
func (w *Window) AddTexture(path string, name string) (*resource.Texture, error) {
	var tex *resource.Texture
	var err error
	if berr := resource.Borrow(func(mgr *resource.TextureManager) {
		tex, err = mgr.Add(path, name)
	}); berr != nil {
		return nil, fmt.Errorf("window: %w", berr)
	}
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return tex, nil
}

// Context returns the graphics context of the window. Calls made through
// the context are checked for errors in the same way as calls made by the
// window itself.
func (w *Window) Context() gfx.Context {
	return w.ctx
}

// SetUI attaches a user interface to the window. A nil value removes the user
// interface.
func (w *Window) SetUI(u ui.UI) {
	w.ui = u
}

// UI returns the user interface attached to the window. Returns nil if there
// is none.
func (w *Window) UI() ui.UI {
	return w.ui
}
