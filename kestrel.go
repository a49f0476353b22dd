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
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/kestrel/canvas"
	"github.com/jetsetilly/kestrel/canvas/headless"
	"github.com/jetsetilly/kestrel/desktop"
	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/light"
	"github.com/jetsetilly/kestrel/logger"
	"github.com/jetsetilly/kestrel/modalflag"
	"github.com/jetsetilly/kestrel/performance"
	"github.com/jetsetilly/kestrel/postprocessing"
	"github.com/jetsetilly/kestrel/prefs"
	"github.com/jetsetilly/kestrel/resources"
	"github.com/jetsetilly/kestrel/statsview"
	"github.com/jetsetilly/kestrel/ui/imguiui"
	"github.com/jetsetilly/kestrel/version"
	"github.com/jetsetilly/kestrel/window"
)

// #mainthread
func main() {
	// SDL and OpenGL calls must all be made from the main thread
	runtime.LockOSThread()
	os.Exit(run(os.Args[1:], os.Stdout))
}

// list of exit values returned by run()
const (
	exitOK    = 0
	exitArgs  = 10
	exitError = 20
)

func run(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("VIEW", "SNAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "VIEW":
		err = view(md)
	case "SNAP":
		err = snap(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitError
	}

	return exitOK
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}

func view(md *modalflag.Modes) error {
	md.NewMode()

	size := md.AddSize("size", modalflag.Size{Width: window.DefaultWidth, Height: window.DefaultHeight}, "window size")
	bg := md.AddColor("bg", mgl32.Vec3{0, 0, 0}, "background colour as r,g,b or #rrggbb")
	points := md.AddInt("points", 64, "number of billboards in the scene")
	fps := md.AddUint("fps", 0, "frame rate limit. zero for no limit")
	vsync := md.AddBool("vsync", true, "synchronise with the display refresh")
	samples := md.AddInt("msaa", 0, "number of samples for multisample anti-aliasing")
	fade := md.AddBool("fade", false, "apply the fade post-processing effect")
	planar := md.AddBool("2d", false, "begin in 2D rendering mode")
	stick := md.AddBool("stickylight", false, "attach the light to the camera")
	gui := md.AddBool("imgui", false, "show the settings window")
	showFPS := md.AddBool("showfps", false, "show the frame rate")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsFile := md.AddBool("prefs", false, "load and save window preferences")
	clPrefs := md.AddString("setprefs", "", "preference values for this session as key::value; key::value")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return errors.New("statsview not available in this build")
		}
		statsview.Launch(md.Output, time.Second)
	}

	if *clPrefs != "" {
		prefs.PushCommandLineStack(*clPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "kestrel", "unused preferences: %s", unused)
			}
		}()
	}

	setup := canvas.Setup{VSync: *vsync, Samples: *samples}
	w, err := desktop.OpenWithSetup(version.Title(), true, size.Width, size.Height, setup)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Destroy(); err != nil {
			logger.Log(logger.Allow, "kestrel", err)
		}
	}()

	w.SetBackgroundColor(bg[0], bg[1], bg[2])
	w.SetIcon(icon(32))
	if *fps > 0 {
		w.SetFramerateLimit(*fps)
	}
	if *stick {
		w.SetLight(light.StickToCamera())
	}
	if *planar {
		w.SwitchRenderingMode()
	}

	if *prefsFile || *clPrefs != "" {
		path, err := resources.JoinPath("window.prefs")
		if err != nil {
			return err
		}
		pr, err := window.NewPreferences(w, path)
		if err != nil {
			return err
		}
		if err := pr.Load(); err != nil {
			return err
		}
		if *prefsFile {
			defer func() {
				if err := pr.Save(); err != nil {
					logger.Log(logger.Allow, "kestrel", err)
				}
			}()
		}
	}

	d, err := newDemo(w, *points)
	if err != nil {
		return err
	}
	d.showFPS = *showFPS
	d.screenshot = func() error {
		path, err := resources.JoinPath("screenshots", fmt.Sprintf("kestrel_%s.png", time.Now().Format("20060102_150405")))
		if err != nil {
			return err
		}
		if err := w.SaveScreenshot(path); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "kestrel", "screenshot saved to %s", path)
		return nil
	}
	if *fade {
		d.effect = postprocessing.NewFade(w.Context(), 4, 0.2)
	}

	if *gui {
		u, err := imguiui.New(settingsLayout(w, d))
		if err != nil {
			return err
		}
		defer u.Destroy()
		w.SetUI(u)
	}

	w.Show()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	return performance.RunProfiler(prof, "kestrel_view", func() error {
		for w.Render(d) {
			select {
			case <-intChan:
				w.Close()
			default:
			}
		}
		return nil
	})
}

// settingsLayout returns the imgui layout for the settings window.
func settingsLayout(w *window.Window, d *demo) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{})
		if !imgui.Begin("settings") {
			imgui.End()
			return
		}
		defer imgui.End()

		bg := w.BackgroundColor()
		col := [3]float32{bg[0], bg[1], bg[2]}
		if imgui.ColorEdit3("background", &col) {
			w.SetBackgroundColor(col[0], col[1], col[2])
		}

		imgui.Checkbox("show fps", &d.showFPS)

		if imgui.Button(fmt.Sprintf("mode: %s", w.RenderingMode())) {
			w.SwitchRenderingMode()
		}

		sticky := w.Light().IsStickToCamera()
		if imgui.Checkbox("light follows camera", &sticky) {
			if sticky {
				w.SetLight(light.StickToCamera())
			} else {
				w.SetLight(light.Default())
			}
		}

		imgui.Text(fmt.Sprintf("light %s", w.Light()))
		imgui.Text(fmt.Sprintf("%.1f fps", d.fps))
	}
}

// icon draws a simple window icon.
func icon(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			c := hue(float32(x+y) / float32(2*size))
			img.Set(x, y, color.RGBA{R: uint8(c[0] * 255), G: uint8(c[1] * 255), B: uint8(c[2] * 255), A: 255})
		}
	}
	return img
}

func snap(md *modalflag.Modes) error {
	md.NewMode()

	size := md.AddSize("size", modalflag.Size{Width: window.DefaultWidth, Height: window.DefaultHeight}, "image size")
	bg := md.AddColor("bg", mgl32.Vec3{0, 0, 0}, "background colour as r,g,b or #rrggbb")
	points := md.AddInt("points", 64, "number of billboards in the scene")
	frames := md.AddInt("frames", 1, "number of frames to render before the capture")
	fade := md.AddBool("fade", false, "apply the fade post-processing effect")
	planar := md.AddBool("2d", false, "render in 2D mode")
	caption := md.AddString("text", "", "text to draw in the top-left corner")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	var path string
	switch len(md.RemainingArgs()) {
	case 0:
		path, err = resources.JoinPath("snapshots", "snap.png")
		if err != nil {
			return err
		}
	case 1:
		path = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *frames < 1 {
		return fmt.Errorf("at least one frame must be rendered")
	}

	queue := event.NewQueue()
	cnv := headless.New(int32(size.Width), int32(size.Height), queue)
	w, err := window.New(cnv, cnv.Context(), queue)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Destroy(); err != nil {
			logger.Log(logger.Allow, "kestrel", err)
		}
	}()

	w.SetBackgroundColor(bg[0], bg[1], bg[2])
	if *planar {
		w.SwitchRenderingMode()
	}

	d, err := newDemo(w, *points)
	if err != nil {
		return err
	}
	if *fade {
		d.effect = postprocessing.NewFade(w.Context(), 4, 0.2)
	}

	for range *frames {
		if *caption != "" {
			w.DrawText(*caption, mgl32.Vec2{10, 10}, 24, nil, mgl32.Vec3{1, 1, 1})
		}
		if !w.Render(d) {
			return fmt.Errorf("window closed before capture")
		}
	}

	// the capture is of the most recently presented frame
	if err := w.SaveScreenshot(path); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frame(s) rendered. saved to %s\n", *frames, path)

	return nil
}
