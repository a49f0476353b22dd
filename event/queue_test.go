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

package event_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/logger"
	"github.com/jetsetilly/kestrel/test"
)

func TestDrainOrder(t *testing.T) {
	q := event.NewQueue()
	q.Push(event.EventKey{Key: event.KeyA, Action: event.Press})
	q.Push(event.EventCursorPos{X: 10, Y: 20})
	q.Push(event.EventKey{Key: event.KeyA, Action: event.Release})

	evs := q.Drain()
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[0], event.Event(event.EventKey{Key: event.KeyA, Action: event.Press}))
	test.ExpectEquality(t, evs[1], event.Event(event.EventCursorPos{X: 10, Y: 20}))
	test.ExpectEquality(t, evs[2], event.Event(event.EventKey{Key: event.KeyA, Action: event.Release}))

	// queue is now empty
	test.ExpectEquality(t, len(q.Drain()), 0)
}

func TestDeferred(t *testing.T) {
	q := event.NewQueue()
	test.ExpectEquality(t, len(q.DrainUnhandled()), 0)

	q.Defer(event.EventFocus{Focused: true})
	q.Defer(event.EventScroll{Y: 1})

	evs := q.DrainUnhandled()
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0], event.Event(event.EventFocus{Focused: true}))
	test.ExpectEquality(t, evs[1], event.Event(event.EventScroll{Y: 1}))

	// deferred list is cleared
	test.ExpectEquality(t, len(q.DrainUnhandled()), 0)
}

func TestFullQueue(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	q := event.NewQueueWithLength(2)
	q.Push(event.EventKey{Key: event.KeyA})
	q.Push(event.EventKey{Key: event.KeyB})
	q.Push(event.EventKey{Key: event.KeyEscape})

	test.ExpectEquality(t, len(q.Drain()), 2)

	tw := &test.CompareWriter{}
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "dropped key event"))
}

func TestFullQueueKeepsWindowEvents(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	q := event.NewQueueWithLength(2)
	q.Push(event.EventKey{Key: event.KeyA})
	q.Push(event.EventKey{Key: event.KeyB})
	q.Push(event.EventFramebufferSize{Width: 640, Height: 0})
	q.Push(event.EventKey{Key: event.KeyC})
	q.Push(event.EventClose{})

	evs := q.Drain()
	test.DemandEquality(t, len(evs), 4)
	test.ExpectEquality(t, evs[0], event.Event(event.EventKey{Key: event.KeyA}))
	test.ExpectEquality(t, evs[1], event.Event(event.EventKey{Key: event.KeyB}))
	test.ExpectEquality(t, evs[2], event.Event(event.EventFramebufferSize{Width: 640, Height: 0}))
	test.ExpectEquality(t, evs[3], event.Event(event.EventClose{}))

	tw := &test.CompareWriter{}
	logger.Write(tw)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "holding framebuffer size event"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "dropped key event"))

	// the held events are delivered once only and the queue is usable again
	test.ExpectEquality(t, len(q.Drain()), 0)
	q.Push(event.EventKey{Key: event.KeyD})
	test.ExpectEquality(t, len(q.Drain()), 1)
}

func TestClosedQueue(t *testing.T) {
	q := event.NewQueue()
	q.Push(event.EventClose{})
	q.Close()
	q.Close()
	test.ExpectSuccess(t, q.Closed())

	// a closed queue is not an error. it just has no events
	q.Push(event.EventClose{})
	test.ExpectEquality(t, len(q.Drain()), 0)
}

func TestConcurrentPush(t *testing.T) {
	q := event.NewQueue()

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Push(event.EventCursorPos{})
			}
		}()
	}

	var n int
	done := make(chan bool)
	go func() {
		wg.Wait()
		done <- true
	}()

	for {
		n += len(q.Drain())
		select {
		case <-done:
			n += len(q.Drain())
			test.ExpectEquality(t, n, 400)
			return
		default:
		}
	}
}

func TestClassification(t *testing.T) {
	test.ExpectSuccess(t, event.IsKeyboard(event.EventKey{}))
	test.ExpectSuccess(t, event.IsKeyboard(event.EventChar{Char: 'a'}))
	test.ExpectFailure(t, event.IsKeyboard(event.EventMouseButton{}))
	test.ExpectSuccess(t, event.IsMouse(event.EventMouseButton{}))
	test.ExpectSuccess(t, event.IsMouse(event.EventCursorPos{}))
	test.ExpectSuccess(t, event.IsMouse(event.EventScroll{}))
	test.ExpectFailure(t, event.IsMouse(event.EventFramebufferSize{}))
	test.ExpectFailure(t, event.IsKeyboard(event.EventClose{}))

	test.ExpectEquality(t, event.KeyEscape.String(), "Escape")
	test.ExpectEquality(t, event.Key5.String(), "5")
	test.ExpectEquality(t, event.Key(-1).String(), "Unknown")
	test.ExpectSuccess(t, (event.ModShift | event.ModAlt).Contains(event.ModShift))
	test.ExpectFailure(t, event.ModShift.Contains(event.ModShift|event.ModControl))
}
