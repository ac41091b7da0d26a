package clock

import "time"

// Limiter caps the frame rate by sleeping out the rest of each frame.
// A zero Interval never sleeps.
type Limiter struct {
	Interval time.Duration
	Now      func() time.Time
	Sleep    func(time.Duration)

	next time.Time
}

// NewLimiter returns a limiter for fps frames per second; fps <= 0 is uncapped.
func NewLimiter(fps int) *Limiter {
	l := &Limiter{Now: time.Now, Sleep: time.Sleep}
	if fps > 0 {
		l.Interval = time.Second / time.Duration(fps)
	}
	return l
}

// Wait blocks until the next frame is due. A frame that overran its slot
// starts the next one immediately instead of trying to catch up.
func (l *Limiter) Wait() {
	if l.Interval <= 0 {
		return
	}
	now := l.Now()
	if d := l.next.Sub(now); d > 0 {
		l.Sleep(d)
		l.next = l.next.Add(l.Interval)
		return
	}
	l.next = now.Add(l.Interval)
}
