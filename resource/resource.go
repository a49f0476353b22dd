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

// Package resource manages the textures used by a window.
//
// There is a single texture manager for the process. It is created with
// Init() when the first window is created and is used through Borrow(). The
// manager holds names for objects in the graphics context so it must only be
// borrowed from the goroutine that owns the context.
package resource

import (
	"errors"
	"sync"

	"github.com/jetsetilly/kestrel/gfx"
)

// Sentinel errors returned by the package.
var (
	ErrAlreadyInitialised = errors.New("resource: already initialised")
	ErrNotInitialised     = errors.New("resource: not initialised")
)

var central struct {
	crit sync.Mutex
	mgr  *TextureManager
}

// Init creates the texture manager for the context.
func Init(ctx gfx.Context) error {
	central.crit.Lock()
	defer central.crit.Unlock()

	if central.mgr != nil {
		return ErrAlreadyInitialised
	}
	central.mgr = newTextureManager(ctx)
	return nil
}

// Initialised returns true if Init() has been called and Destroy() has not.
func Initialised() bool {
	central.crit.Lock()
	defer central.crit.Unlock()
	return central.mgr != nil
}

// Borrow runs the function with the texture manager. The function must not
// call Borrow() itself.
func Borrow(fn func(*TextureManager)) error {
	central.crit.Lock()
	defer central.crit.Unlock()

	if central.mgr == nil {
		return ErrNotInitialised
	}
	fn(central.mgr)
	return nil
}

// Destroy releases every texture and uninitialises the package. Does nothing
// if the package is not initialised.
func Destroy() {
	central.crit.Lock()
	defer central.crit.Unlock()

	if central.mgr == nil {
		return
	}
	central.mgr.destroy()
	central.mgr = nil
}
