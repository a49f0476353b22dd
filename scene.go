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

package main

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/kestrel/camera"
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/gfx"
	"github.com/jetsetilly/kestrel/logger"
	"github.com/jetsetilly/kestrel/performance"
	"github.com/jetsetilly/kestrel/postprocessing"
	"github.com/jetsetilly/kestrel/renderer"
	"github.com/jetsetilly/kestrel/resource"
	"github.com/jetsetilly/kestrel/window"
)

// billboard is a point in the world drawn as a screen aligned square.
type billboard struct {
	pos mgl32.Vec3
	col mgl32.Vec3
}

// demo is the scene shown by the VIEW and SNAP modes. It is a helix of
// billboards that can be viewed in perspective or from above.
type demo struct {
	w       *window.Window
	ctx     gfx.Context
	texture uint32

	cam    *camera.Fixed
	planar *camera.FixedPlanar
	effect postprocessing.Effect

	points []billboard
	order  []int

	// the light position is refreshed every step
	light mgl32.Vec3

	showFPS    bool
	frames     int
	fpsSince   time.Time
	fps        float64
	screenshot func() error
}

func newDemo(w *window.Window, numPoints int) (*demo, error) {
	d := &demo{
		w:        w,
		ctx:      w.Context(),
		cam:      camera.NewFixed(mgl32.Vec3{0, 4, -12}, mgl32.Vec3{0, 0, 0}, mgl32.DegToRad(45), window.DefaultZNear, window.DefaultZFar),
		planar:   camera.NewFixedPlanar(mgl32.Vec2{0, 0}),
		fpsSince: time.Now(),
	}

	err := resource.Borrow(func(mgr *resource.TextureManager) {
		d.texture = mgr.Default().ID()
	})
	if err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}

	for i := range numPoints {
		t := float64(i) / float64(max(numPoints, 1))
		a := t * 4 * math.Pi
		d.points = append(d.points, billboard{
			pos: mgl32.Vec3{float32(3 * math.Cos(a)), float32(6*t - 3), float32(3 * math.Sin(a))},
			col: hue(float32(t)),
		})
	}
	d.order = make([]int, len(d.points))

	d.light = w.LightPosition()

	return d, nil
}

// hue returns a fully saturated colour for t in the range zero to one.
func hue(t float32) mgl32.Vec3 {
	h := float64(t) * 6
	x := float32(1 - math.Abs(math.Mod(h, 2)-1))
	switch int(h) % 6 {
	case 0:
		return mgl32.Vec3{1, x, 0}
	case 1:
		return mgl32.Vec3{x, 1, 0}
	case 2:
		return mgl32.Vec3{0, 1, x}
	case 3:
		return mgl32.Vec3{0, x, 1}
	case 4:
		return mgl32.Vec3{x, 0, 1}
	}
	return mgl32.Vec3{1, 0, x}
}

// Scene implements the window.State interface.
func (d *demo) Scene() window.Scene {
	return window.Scene{
		Camera:         d.cam,
		PlanarCamera:   d.planar,
		Renderer:       renderer.Func(d.render),
		PlanarRenderer: renderer.PlanarFunc(d.renderPlanar),
		Effect:         d.effect,
	}
}

// Step implements the window.State interface.
func (d *demo) Step(w *window.Window) {
	w.Events().Iterate(func(dl *event.Delivery) {
		ev, ok := dl.Value.(event.EventKey)
		if !ok || ev.Action != event.Release {
			return
		}
		switch ev.Key {
		case event.KeyTab:
			w.SwitchRenderingMode()
			logger.Logf(logger.Allow, "demo", "rendering mode %s", w.RenderingMode())
			dl.Inhibited = true
		case event.KeyF:
			d.showFPS = !d.showFPS
			dl.Inhibited = true
		case event.KeyP:
			if d.screenshot != nil {
				if err := d.screenshot(); err != nil {
					logger.Logf(logger.Allow, "demo", "screenshot: %v", err)
				}
			}
			dl.Inhibited = true
		}
	})

	d.light = w.LightPosition()

	d.frames++
	if el := time.Since(d.fpsSince); el >= time.Second {
		d.fps, _ = performance.CalcFPS(d.frames, el.Seconds(), 0)
		d.frames = 0
		d.fpsSince = time.Now()
	}

	if d.showFPS {
		w.DrawText(fmt.Sprintf("%.1f fps", d.fps), mgl32.Vec2{10, 10}, 24, nil, mgl32.Vec3{1, 1, 1})
	}
}

// brightness falls off with distance from the light.
func (d *demo) brightness(p mgl32.Vec3) float32 {
	return mgl32.Clamp(1-p.Sub(d.light).Len()/30, 0.3, 1)
}

func (d *demo) render(_ int, _ camera.Camera) {
	width, height := d.w.Size()
	if width == 0 || height == 0 {
		return
	}

	eye := d.cam.Eye()

	// painter's algorithm. furthest first
	for i := range d.order {
		d.order[i] = i
	}
	slices.SortFunc(d.order, func(a, b int) int {
		da := d.points[a].pos.Sub(eye).Len()
		db := d.points[b].pos.Sub(eye).Len()
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})

	for _, i := range d.order {
		p := d.points[i]
		s := d.cam.Project(p.pos, int(width), int(height))
		if s.Z() < 0 || s.Z() > 1 {
			continue
		}
		dist := p.pos.Sub(eye).Len()
		size := float32(height) * 0.5 / max(dist, 0.01)
		b := d.brightness(p.pos)
		d.ctx.DrawTexture(d.texture, s.X()-size/2, s.Y()-size/2, size, size, p.col.Mul(b).Vec4(1))
	}
}

func (d *demo) renderPlanar(_ camera.PlanarCamera) {
	size := 8 * d.planar.Zoom()
	for _, p := range d.points {
		s := d.planar.ToScreen(mgl32.Vec2{p.pos.X() * 40, p.pos.Z() * 40})
		d.ctx.DrawTexture(d.texture, s.X()-size/2, s.Y()-size/2, size, size, p.col.Vec4(1))
	}
}
