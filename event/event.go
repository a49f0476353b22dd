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

package event

import "fmt"

// Event is implemented by all event types in this package.
type Event interface {
	isEvent()
}

// Action is the state change of a key or mouse button.
type Action int

// List of valid Action values.
const (
	Release Action = iota
	Press
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Modifiers is a bitmask of the modifier keys held down when an event was
// produced.
type Modifiers int

// List of valid Modifiers bits.
const (
	ModNone    Modifiers = 0
	ModShift   Modifiers = 0x01
	ModControl Modifiers = 0x02
	ModAlt     Modifiers = 0x04
	ModSuper   Modifiers = 0x08
)

// Contains returns true if all the bits in m are also set in mods.
func (mods Modifiers) Contains(m Modifiers) bool {
	return mods&m == m
}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	Button1 MouseButton = iota
	Button2
	Button3
	Button4
	Button5
	Button6
	Button7
	Button8

	ButtonLeft   = Button1
	ButtonRight  = Button2
	ButtonMiddle = Button3
)

// NumMouseButtons is the number of distinct MouseButton values.
const NumMouseButtons = 8

// EventKey is a key press or key release.
type EventKey struct {
	Key    Key
	Action Action
	Mods   Modifiers
}

// EventMouseButton is a mouse button press or release.
type EventMouseButton struct {
	Button MouseButton
	Action Action
	Mods   Modifiers
}

// EventCursorPos is a change in the mouse cursor position. The position is in
// framebuffer pixels with the origin in the top-left corner.
type EventCursorPos struct {
	X, Y float64
	Mods Modifiers
}

// EventScroll is a mouse wheel or trackpad scroll. Positive Y is away from the
// user.
type EventScroll struct {
	X, Y float64
	Mods Modifiers
}

// EventFramebufferSize is a change in the size of the framebuffer, in pixels.
type EventFramebufferSize struct {
	Width, Height uint32
}

// EventFocus is a change in window focus.
type EventFocus struct {
	Focused bool
}

// EventClose is a request to close the window.
type EventClose struct{}

// EventChar is a unicode character produced by text input.
type EventChar struct {
	Char rune
	Mods Modifiers
}

func (EventKey) isEvent()             {}
func (EventMouseButton) isEvent()     {}
func (EventCursorPos) isEvent()       {}
func (EventScroll) isEvent()          {}
func (EventFramebufferSize) isEvent() {}
func (EventFocus) isEvent()           {}
func (EventClose) isEvent()           {}
func (EventChar) isEvent()            {}

// IsKeyboard returns true if the event originates from the keyboard.
func IsKeyboard(ev Event) bool {
	switch ev.(type) {
	case EventKey, EventChar:
		return true
	}
	return false
}

// IsMouse returns true if the event originates from the mouse.
func IsMouse(ev Event) bool {
	switch ev.(type) {
	case EventMouseButton, EventCursorPos, EventScroll:
		return true
	}
	return false
}
