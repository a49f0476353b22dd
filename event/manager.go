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

// Delivery wraps an event handed to the embedding application by the
// Manager.
type Delivery struct {
	Value Event

	// set Inhibited to true to prevent the window from also handling the
	// event
	Inhibited bool
}

// Manager is the embedding application's handle on a Queue. It shares the
// queue with the window that owns it.
type Manager struct {
	queue *Queue
}

// NewManager creates a Manager for the Queue.
func NewManager(q *Queue) *Manager {
	return &Manager{queue: q}
}

// Iterate calls the function for every event currently in the queue. Events
// that are not marked as Inhibited by the function are deferred and will be
// handled by the window on the next frame, before any new events.
func (m *Manager) Iterate(f func(d *Delivery)) {
	for _, ev := range m.queue.Drain() {
		d := &Delivery{Value: ev}
		f(d)
		if !d.Inhibited {
			m.queue.Defer(d.Value)
		}
	}
}

// Events returns every event currently in the queue. All the events are
// deferred, equivalent to Iterate() with a function that never inhibits.
func (m *Manager) Events() []Event {
	var evs []Event
	m.Iterate(func(d *Delivery) {
		evs = append(evs, d.Value)
	})
	return evs
}
