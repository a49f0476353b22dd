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

// Package event defines the input and window events consumed by the render
// loop, and the queue through which they travel from the platform canvas to
// the window.
//
// Events are produced by a canvas, possibly from a goroutine other than the
// render goroutine, with Queue.Push(). The window drains the queue once per
// frame. Events that an embedding application wants to see again on the next
// frame are returned to the queue with Queue.Defer() and are delivered before
// any new events on that frame.
//
// The Manager type is the handle given to the embedding application. It
// iterates over the events currently in the queue. Any event that is not
// marked as inhibited during the iteration is deferred so that the window
// still sees it.
package event
