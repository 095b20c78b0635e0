package playback

import (
	"math"
	"sync"
	"time"
)

// Clock maps wall time onto dataset seconds. It advances linearly at the
// configured speed from its last anchor; Seek and SetSpeed re-anchor, so
// changing speed never jumps the mapped position. Outside [min, max] the
// clock either clamps or, when looping, wraps back into the interval.
type Clock struct {
	mu     sync.RWMutex
	anchor time.Time // wall instant of the last re-anchor
	base   float64   // dataset seconds at the anchor
	speed  float64
	min    float64
	max    float64
	loop   bool
}

// NewClock returns a clock positioned at min, running at speed 1, clamping
// at the bounds.
func NewClock(min, max float64) *Clock {
	return &Clock{anchor: time.Now(), base: min, speed: 1, min: min, max: max}
}

// At returns the dataset second the clock maps the wall instant to.
func (c *Clock) At(now time.Time) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.project(now)
}

// Now is At(time.Now()).
func (c *Clock) Now() float64 {
	return c.At(time.Now())
}

// project maps now to dataset seconds. Callers must hold the lock.
func (c *Clock) project(now time.Time) float64 {
	t := c.base + now.Sub(c.anchor).Seconds()*c.speed
	span := c.max - c.min
	if span <= 0 {
		return c.min
	}
	if c.loop {
		w := math.Mod(t-c.min, span)
		if w < 0 {
			w += span
		}
		return c.min + w
	}
	if t < c.min {
		return c.min
	}
	if t > c.max {
		return c.max
	}
	return t
}

// Seek re-anchors the clock at dataset second t.
func (c *Clock) Seek(t float64) {
	c.seekAt(t, time.Now())
}

func (c *Clock) seekAt(t float64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = t
	c.anchor = now
}

// SetSpeed changes the multiplier without moving the mapped position.
func (c *Clock) SetSpeed(speed float64) {
	c.setSpeedAt(speed, time.Now())
}

func (c *Clock) setSpeedAt(speed float64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = c.project(now)
	c.anchor = now
	c.speed = speed
}

// Speed returns the current multiplier.
func (c *Clock) Speed() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.speed
}

// SetLoop switches between wrapping past max and holding there.
func (c *Clock) SetLoop(loop bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loop = loop
}

// Bounds returns the interval the clock runs over.
func (c *Clock) Bounds() (min, max float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.min, c.max
}
