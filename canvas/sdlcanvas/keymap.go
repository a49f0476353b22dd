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

package sdlcanvas

import (
	"github.com/jetsetilly/kestrel/event"
	"github.com/veandco/go-sdl2/sdl"
)

// keys are identified by scancode so that the position of the key on the
// keyboard is what matters, not the layout
var scancodes = map[sdl.Scancode]event.Key{
	sdl.SCANCODE_SPACE:        event.KeySpace,
	sdl.SCANCODE_APOSTROPHE:   event.KeyApostrophe,
	sdl.SCANCODE_COMMA:        event.KeyComma,
	sdl.SCANCODE_MINUS:        event.KeyMinus,
	sdl.SCANCODE_PERIOD:       event.KeyPeriod,
	sdl.SCANCODE_SLASH:        event.KeySlash,
	sdl.SCANCODE_0:            event.Key0,
	sdl.SCANCODE_1:            event.Key1,
	sdl.SCANCODE_2:            event.Key2,
	sdl.SCANCODE_3:            event.Key3,
	sdl.SCANCODE_4:            event.Key4,
	sdl.SCANCODE_5:            event.Key5,
	sdl.SCANCODE_6:            event.Key6,
	sdl.SCANCODE_7:            event.Key7,
	sdl.SCANCODE_8:            event.Key8,
	sdl.SCANCODE_9:            event.Key9,
	sdl.SCANCODE_SEMICOLON:    event.KeySemicolon,
	sdl.SCANCODE_EQUALS:       event.KeyEqual,
	sdl.SCANCODE_A:            event.KeyA,
	sdl.SCANCODE_B:            event.KeyB,
	sdl.SCANCODE_C:            event.KeyC,
	sdl.SCANCODE_D:            event.KeyD,
	sdl.SCANCODE_E:            event.KeyE,
	sdl.SCANCODE_F:            event.KeyF,
	sdl.SCANCODE_G:            event.KeyG,
	sdl.SCANCODE_H:            event.KeyH,
	sdl.SCANCODE_I:            event.KeyI,
	sdl.SCANCODE_J:            event.KeyJ,
	sdl.SCANCODE_K:            event.KeyK,
	sdl.SCANCODE_L:            event.KeyL,
	sdl.SCANCODE_M:            event.KeyM,
	sdl.SCANCODE_N:            event.KeyN,
	sdl.SCANCODE_O:            event.KeyO,
	sdl.SCANCODE_P:            event.KeyP,
	sdl.SCANCODE_Q:            event.KeyQ,
	sdl.SCANCODE_R:            event.KeyR,
	sdl.SCANCODE_S:            event.KeyS,
	sdl.SCANCODE_T:            event.KeyT,
	sdl.SCANCODE_U:            event.KeyU,
	sdl.SCANCODE_V:            event.KeyV,
	sdl.SCANCODE_W:            event.KeyW,
	sdl.SCANCODE_X:            event.KeyX,
	sdl.SCANCODE_Y:            event.KeyY,
	sdl.SCANCODE_Z:            event.KeyZ,
	sdl.SCANCODE_LEFTBRACKET:  event.KeyLeftBracket,
	sdl.SCANCODE_BACKSLASH:    event.KeyBackslash,
	sdl.SCANCODE_RIGHTBRACKET: event.KeyRightBracket,
	sdl.SCANCODE_GRAVE:        event.KeyGraveAccent,
	sdl.SCANCODE_ESCAPE:       event.KeyEscape,
	sdl.SCANCODE_RETURN:       event.KeyEnter,
	sdl.SCANCODE_KP_ENTER:     event.KeyEnter,
	sdl.SCANCODE_TAB:          event.KeyTab,
	sdl.SCANCODE_BACKSPACE:    event.KeyBackspace,
	sdl.SCANCODE_INSERT:       event.KeyInsert,
	sdl.SCANCODE_DELETE:       event.KeyDelete,
	sdl.SCANCODE_RIGHT:        event.KeyRight,
	sdl.SCANCODE_LEFT:         event.KeyLeft,
	sdl.SCANCODE_DOWN:         event.KeyDown,
	sdl.SCANCODE_UP:           event.KeyUp,
	sdl.SCANCODE_PAGEUP:       event.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN:     event.KeyPageDown,
	sdl.SCANCODE_HOME:         event.KeyHome,
	sdl.SCANCODE_END:          event.KeyEnd,
	sdl.SCANCODE_CAPSLOCK:     event.KeyCapsLock,
	sdl.SCANCODE_SCROLLLOCK:   event.KeyScrollLock,
	sdl.SCANCODE_NUMLOCKCLEAR: event.KeyNumLock,
	sdl.SCANCODE_PRINTSCREEN:  event.KeyPrintScreen,
	sdl.SCANCODE_PAUSE:        event.KeyPause,
	sdl.SCANCODE_F1:           event.KeyF1,
	sdl.SCANCODE_F2:           event.KeyF2,
	sdl.SCANCODE_F3:           event.KeyF3,
	sdl.SCANCODE_F4:           event.KeyF4,
	sdl.SCANCODE_F5:           event.KeyF5,
	sdl.SCANCODE_F6:           event.KeyF6,
	sdl.SCANCODE_F7:           event.KeyF7,
	sdl.SCANCODE_F8:           event.KeyF8,
	sdl.SCANCODE_F9:           event.KeyF9,
	sdl.SCANCODE_F10:          event.KeyF10,
	sdl.SCANCODE_F11:          event.KeyF11,
	sdl.SCANCODE_F12:          event.KeyF12,
	sdl.SCANCODE_LSHIFT:       event.KeyLShift,
	sdl.SCANCODE_LCTRL:        event.KeyLControl,
	sdl.SCANCODE_LALT:         event.KeyLAlt,
	sdl.SCANCODE_LGUI:         event.KeyLSuper,
	sdl.SCANCODE_RSHIFT:       event.KeyRShift,
	sdl.SCANCODE_RCTRL:        event.KeyRControl,
	sdl.SCANCODE_RALT:         event.KeyRAlt,
	sdl.SCANCODE_RGUI:         event.KeyRSuper,
	sdl.SCANCODE_MENU:         event.KeyMenu,
}

// translateKey returns KeyUnknown for scancodes with no equivalent.
func translateKey(sc sdl.Scancode) event.Key {
	if k, ok := scancodes[sc]; ok {
		return k
	}
	return event.KeyUnknown
}

func translateMods(mod uint16) event.Modifiers {
	var mods event.Modifiers
	if mod&sdl.KMOD_LSHIFT != 0 || mod&sdl.KMOD_RSHIFT != 0 {
		mods |= event.ModShift
	}
	if mod&sdl.KMOD_LCTRL != 0 || mod&sdl.KMOD_RCTRL != 0 {
		mods |= event.ModControl
	}
	if mod&sdl.KMOD_LALT != 0 || mod&sdl.KMOD_RALT != 0 {
		mods |= event.ModAlt
	}
	if mod&sdl.KMOD_LGUI != 0 || mod&sdl.KMOD_RGUI != 0 {
		mods |= event.ModSuper
	}
	return mods
}

func translateButton(button uint8) (event.MouseButton, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return event.ButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return event.ButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return event.ButtonMiddle, true
	case sdl.BUTTON_X1:
		return event.Button4, true
	case sdl.BUTTON_X2:
		return event.Button5, true
	}
	return 0, false
}
