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

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/kestrel/logger"
)

// DefaultQueueLength is the capacity of a queue created by NewQueue().
const DefaultQueueLength = 1024

// Queue carries events from the canvas to the window.
//
// Push() can be called from any goroutine. All other functions should only be
// called from the render goroutine.
type Queue struct {
	events chan Event

	// deferred events are delivered before any event in the events channel
	crit     sync.Mutex
	deferred []Event
	closed   bool

	// close and resize events that arrive when the events channel is full.
	// they are delivered after the contents of the channel
	overflow []Event
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return NewQueueWithLength(DefaultQueueLength)
}

// NewQueueWithLength creates a Queue that can buffer the specified number of
// events. Events pushed to a full queue are dropped, except for those that
// change the state of the window (see Push()).
func NewQueueWithLength(length int) *Queue {
	return &Queue{
		events:   make(chan Event, length),
		deferred: make([]Event, 0, 16),
	}
}

// Push adds a new event to the queue. It never blocks. If the queue is closed
// the event is dropped. If the queue is full the event is also dropped unless
// it is an EventClose or EventFramebufferSize, which are held until the next
// call to Drain().
func (q *Queue) Push(ev Event) {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.closed {
		return
	}

	// once an event has overflowed the channel everything that is kept must
	// also overflow, so that the order of events is preserved
	if len(q.overflow) == 0 {
		select {
		case q.events <- ev:
			return
		default:
		}
	}

	if mustDeliver(ev) {
		q.overflow = append(q.overflow, ev)
		logger.Logf(logger.Allow, "event", "queue full: holding %s event", eventName(ev))
		return
	}

	logger.Log(logger.Allow, "event", fmt.Sprintf("dropped %s event", eventName(ev)))
}

// mustDeliver returns true for events that should never be dropped.
func mustDeliver(ev Event) bool {
	switch ev.(type) {
	case EventClose, EventFramebufferSize:
		return true
	}
	return false
}

// Drain returns every event currently in the queue, in the order they were
// pushed. It never blocks for longer than a concurrent Push(). A closed queue
// always returns no events.
func (q *Queue) Drain() []Event {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.closed {
		return nil
	}

	var evs []Event
	for {
		select {
		case ev := <-q.events:
			evs = append(evs, ev)
		default:
			evs = append(evs, q.overflow...)
			q.overflow = q.overflow[:0]
			return evs
		}
	}
}

// Defer adds an event to the deferred list. Deferred events are returned by
// DrainUnhandled().
func (q *Queue) Defer(ev Event) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.deferred = append(q.deferred, ev)
}

// DrainUnhandled returns and clears the deferred list.
func (q *Queue) DrainUnhandled() []Event {
	q.crit.Lock()
	defer q.crit.Unlock()

	if len(q.deferred) == 0 {
		return nil
	}
	evs := q.deferred
	q.deferred = make([]Event, 0, cap(evs))
	return evs
}

// Close the queue. Subsequent calls to Push() are ignored and Drain() returns
// no events. Closing a queue more than once has no effect.
func (q *Queue) Close() {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.overflow = nil
	close(q.events)

	// discard anything still buffered
	for range q.events {
	}
}

// Closed returns true if Close() has been called.
func (q *Queue) Closed() bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.closed
}

func eventName(ev Event) string {
	switch ev.(type) {
	case EventKey:
		return "key"
	case EventMouseButton:
		return "mouse button"
	case EventCursorPos:
		return "cursor"
	case EventScroll:
		return "scroll"
	case EventFramebufferSize:
		return "framebuffer size"
	case EventFocus:
		return "focus"
	case EventClose:
		return "close"
	case EventChar:
		return "char"
	}
	return fmt.Sprintf("%T", ev)
}
