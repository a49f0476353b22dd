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
	"testing"

	"github.com/jetsetilly/kestrel/event"
	"github.com/jetsetilly/kestrel/test"
)

func TestManagerIterate(t *testing.T) {
	q := event.NewQueue()
	m := event.NewManager(q)

	q.Push(event.EventKey{Key: event.KeyA, Action: event.Press})
	q.Push(event.EventKey{Key: event.KeyB, Action: event.Press})
	q.Push(event.EventKey{Key: event.KeyC, Action: event.Press})

	var seen int
	m.Iterate(func(d *event.Delivery) {
		seen++
		if ev, ok := d.Value.(event.EventKey); ok && ev.Key == event.KeyB {
			d.Inhibited = true
		}
	})
	test.ExpectEquality(t, seen, 3)

	// the queue has been drained
	test.ExpectEquality(t, len(q.Drain()), 0)

	// events not inhibited are deferred in their original order
	evs := q.DrainUnhandled()
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].(event.EventKey).Key, event.KeyA)
	test.ExpectEquality(t, evs[1].(event.EventKey).Key, event.KeyC)
}

func TestManagerEvents(t *testing.T) {
	q := event.NewQueue()
	m := event.NewManager(q)

	q.Push(event.EventFocus{Focused: false})
	evs := m.Events()
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, len(q.DrainUnhandled()), 1)
}
