package clock

import (
	"time"

	"github.com/mlange-42/ark/ecs"
)

// Time is the frame timing resource. Durations are in seconds.
type Time struct {
	Delta   float64
	Elapsed float64
	Frame   int64
}

// System advances the Time resource once per frame. It must run before any
// system that reads Time.
type System struct {
	Now func() time.Time

	time           ecs.Resource[Time]
	start          time.Time
	lastUpdateTime time.Time
}

func (s *System) Initialize(w *ecs.World) {
	if s.Now == nil {
		s.Now = time.Now
	}
	s.time = ecs.NewResource[Time](w)
	if !s.time.Has() {
		s.time.Add(&Time{})
	}
	s.start = s.Now()
	s.lastUpdateTime = s.start
}

func (s *System) Update(w *ecs.World) {
	now := s.Now()
	since := now.Sub(s.lastUpdateTime)
	s.lastUpdateTime = now

	t := s.time.Get()
	t.Delta = since.Seconds()
	t.Elapsed = now.Sub(s.start).Seconds()
	t.Frame++
}

func (s *System) Finalize(w *ecs.World) {}
