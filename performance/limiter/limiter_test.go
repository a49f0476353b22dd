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

package limiter_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/kestrel/performance/limiter"
	"github.com/jetsetilly/kestrel/test"
)

// fakeClock advances only when asked to or when sleep is called.
type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func TestZeroLimit(t *testing.T) {
	p := limiter.NewPacer()
	test.ExpectSuccess(t, p.SetLimit(50))
	err := p.SetLimit(0)
	test.ExpectSuccess(t, errors.Is(err, limiter.ErrZeroLimit))

	// existing limit is unchanged
	test.ExpectEquality(t, p.Limit(), 20*time.Millisecond)
}

func TestThrottle(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	p := limiter.NewPacer()
	p.SetClock(clk.now, clk.sleep)
	test.DemandSuccess(t, p.SetLimit(50))

	// instantaneous frames are stretched to the frame duration
	var presents []time.Time
	for range 5 {
		p.Throttle()
		presents = append(presents, clk.now())
	}
	for i := 1; i < len(presents); i++ {
		test.ExpectEquality(t, presents[i].Sub(presents[i-1]), 20*time.Millisecond)
	}

	// a slow frame is not followed by a short one
	clk.slept = clk.slept[:0]
	clk.t = clk.t.Add(35 * time.Millisecond)
	p.Throttle()
	test.ExpectEquality(t, len(clk.slept), 0)
	clk.t = clk.t.Add(5 * time.Millisecond)
	p.Throttle()
	test.DemandEquality(t, len(clk.slept), 1)
	test.ExpectEquality(t, clk.slept[0], 15*time.Millisecond)
}

func TestNoLimit(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	p := limiter.NewPacer()
	p.SetClock(clk.now, clk.sleep)

	for range 10 {
		p.Throttle()
	}
	test.ExpectEquality(t, len(clk.slept), 0)

	test.DemandSuccess(t, p.SetLimit(60))
	p.RemoveLimit()
	p.Throttle()
	test.ExpectEquality(t, len(clk.slept), 0)
	test.ExpectEquality(t, p.Limit(), time.Duration(0))
}

func TestRealTime(t *testing.T) {
	p := limiter.NewPacer()
	test.DemandSuccess(t, p.SetLimit(100))

	p.Throttle()
	start := time.Now()
	for range 5 {
		p.Throttle()
	}
	test.ExpectSuccess(t, time.Since(start) >= 50*time.Millisecond)
}
