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

// Package limiter paces a render loop to an optional maximum frame rate.
//
// A Pacer is consulted once per frame, after the frame has been presented:
//
//	pacer := limiter.NewPacer()
//	_ = pacer.SetLimit(60)
//	for {
//		renderFrame()
//		pacer.Throttle()
//	}
//
// Throttle() sleeps for whatever remains of the frame duration since the
// previous call. Time lost to a late frame is not made up in the following
// frames.
package limiter

import (
	"errors"
	"time"
)

// ErrZeroLimit is returned by SetLimit() when the requested rate is zero.
var ErrZeroLimit = errors.New("limiter: frame limit of zero frames per second")

// Pacer limits the rate at which Throttle() returns.
type Pacer struct {
	// the minimum duration of a frame. zero if no limit is set
	frameDuration time.Duration

	// time of previous call to Throttle()
	prev time.Time

	// clock and sleep functions can be replaced for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer is the preferred method of initialisation for the Pacer type. The
// new Pacer has no limit.
func NewPacer() *Pacer {
	p := &Pacer{
		now:   time.Now,
		sleep: time.Sleep,
	}
	p.prev = p.now()
	return p
}

// SetClock replaces the functions used by the Pacer to read the time and to
// sleep. The time of the previous frame is reset to the new clock's time.
func (p *Pacer) SetClock(now func() time.Time, sleep func(time.Duration)) {
	p.now = now
	p.sleep = sleep
	p.prev = now()
}

// Now returns the time according to the Pacer's clock.
func (p *Pacer) Now() time.Time {
	return p.now()
}

// SetLimit sets the maximum number of frames per second. A value of zero is
// invalid and returns ErrZeroLimit, leaving the existing limit in place.
func (p *Pacer) SetLimit(fps uint) error {
	if fps == 0 {
		return ErrZeroLimit
	}
	p.frameDuration = time.Second / time.Duration(fps)
	return nil
}

// RemoveLimit disables throttling.
func (p *Pacer) RemoveLimit() {
	p.frameDuration = 0
}

// Limit returns the minimum frame duration. A duration of zero means that
// there is no limit.
func (p *Pacer) Limit() time.Duration {
	return p.frameDuration
}

// Throttle blocks until the minimum frame duration has elapsed since the
// previous call. It returns immediately if no limit is set or if the frame
// duration has already elapsed.
func (p *Pacer) Throttle() {
	if p.frameDuration > 0 {
		elapsed := p.now().Sub(p.prev)
		if elapsed < p.frameDuration {
			p.sleep(p.frameDuration - elapsed)
		}
	}
	p.prev = p.now()
}
