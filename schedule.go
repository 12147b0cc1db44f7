package dragdrop

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// timer is a one-shot callback driven by a linear 0→1 tween.
type timer struct {
	id    uint64
	tween *gween.Tween
	fn    func()
}

// scheduler runs one-shot timers on the host's update loop. There is no
// global clock and no goroutine: time only advances through update.
type scheduler struct {
	timers []*timer
	nextID uint64
}

func seconds(d time.Duration) float32 {
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}

// after schedules fn to run once d has elapsed and returns the timer id.
func (s *scheduler) after(d time.Duration, fn func()) uint64 {
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:    s.nextID,
		tween: gween.New(0, 1, seconds(d), ease.Linear),
		fn:    fn,
	})
	return s.nextID
}

// update advances every timer by dt seconds and fires the ones that finish.
// Callbacks may schedule new timers; those start on the next update.
func (s *scheduler) update(dt float32) {
	if len(s.timers) == 0 {
		return
	}
	pending := s.timers
	s.timers = nil
	var due []*timer
	for _, t := range pending {
		if _, finished := t.tween.Update(dt); finished {
			due = append(due, t)
		} else {
			s.timers = append(s.timers, t)
		}
	}
	for _, t := range due {
		t.fn()
	}
}

// flush fires every pending timer immediately, in schedule order.
func (s *scheduler) flush() {
	pending := s.timers
	s.timers = nil
	for _, t := range pending {
		t.fn()
	}
}

func (s *scheduler) len() int {
	return len(s.timers)
}
