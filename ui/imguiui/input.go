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

package imguiui

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/kestrel/event"
)

// keys that imgui needs to know about for navigation and editing. the native
// key index is the event.Key value
var keyMapping = map[int]event.Key{
	imgui.KeyTab:        event.KeyTab,
	imgui.KeyLeftArrow:  event.KeyLeft,
	imgui.KeyRightArrow: event.KeyRight,
	imgui.KeyUpArrow:    event.KeyUp,
	imgui.KeyDownArrow:  event.KeyDown,
	imgui.KeyPageUp:     event.KeyPageUp,
	imgui.KeyPageDown:   event.KeyPageDown,
	imgui.KeyHome:       event.KeyHome,
	imgui.KeyEnd:        event.KeyEnd,
	imgui.KeyInsert:     event.KeyInsert,
	imgui.KeyDelete:     event.KeyDelete,
	imgui.KeyBackspace:  event.KeyBackspace,
	imgui.KeySpace:      event.KeySpace,
	imgui.KeyEnter:      event.KeyEnter,
	imgui.KeyEscape:     event.KeyEscape,
	imgui.KeyA:          event.KeyA,
	imgui.KeyC:          event.KeyC,
	imgui.KeyV:          event.KeyV,
	imgui.KeyX:          event.KeyX,
	imgui.KeyY:          event.KeyY,
	imgui.KeyZ:          event.KeyZ,
}

// the number of mouse buttons imgui tracks
const numButtons = 3

// mouseButtonIndex returns the imgui index for the mouse button.
func mouseButtonIndex(button event.MouseButton) (int, bool) {
	switch button {
	case event.ButtonLeft:
		return 0, true
	case event.ButtonRight:
		return 1, true
	case event.ButtonMiddle:
		return 2, true
	}
	return 0, false
}

// mouseButtons tracks the state of the mouse buttons between frames.
//
// a press and release that both happen between two frames would never be seen
// by imgui if only the current state was forwarded. a press is therefore
// latched until the next frame has seen it.
type mouseButtons struct {
	down    [numButtons]bool
	pressed [numButtons]bool
}

func (mb *mouseButtons) set(idx int, down bool) {
	mb.down[idx] = down
	if down {
		mb.pressed[idx] = true
	}
}

// frame returns the state to forward to imgui for the next frame and clears
// the latched presses.
func (mb *mouseButtons) frame() [numButtons]bool {
	var st [numButtons]bool
	for i := range st {
		st[i] = mb.down[i] || mb.pressed[i]
		mb.pressed[i] = false
	}
	return st
}

// wheelDelta reduces scroll amounts to their direction, as imgui expects one
// unit per notch.
func wheelDelta(x, y float64) (float32, float32) {
	var dx, dy float32
	if x > 0 {
		dx++
	} else if x < 0 {
		dx--
	}
	if y > 0 {
		dy++
	} else if y < 0 {
		dy--
	}
	return dx, dy
}

// displaySize converts the framebuffer size to the logical size that imgui
// lays out in.
func displaySize(width, height uint32, hidpi float64) imgui.Vec2 {
	if hidpi <= 0 {
		hidpi = 1.0
	}
	return imgui.Vec2{
		X: float32(float64(width) / hidpi),
		Y: float32(float64(height) / hidpi),
	}
}
