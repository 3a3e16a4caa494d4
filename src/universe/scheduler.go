package universe

import "time"

//Scheduler throttles the generations so the user is able to watch them
//at most one generation is allowed per interval, measured from the last allowed one
type Scheduler struct {
	interval time.Duration
	last     time.Time
}

//NewScheduler creates the scheduler started at start
//the last tick is pushed back by one interval so the first poll is always allowed
func NewScheduler(interval time.Duration, start time.Time) *Scheduler {
	return &Scheduler{
		interval: interval,
		last:     start.Add(-interval),
	}
}

//Interval returns the minimum interval between two generations
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

//Last returns the time of the last allowed generation
func (s *Scheduler) Last() time.Time {
	return s.last
}

//Ready reports whether a generation is allowed at now without recording it
func (s *Scheduler) Ready(now time.Time) bool {
	return s.interval <= 0 || now.Sub(s.last) >= s.interval
}

//Poll reports whether a generation is allowed at now and records it as the last one
func (s *Scheduler) Poll(now time.Time) bool {
	if !s.Ready(now) {
		return false
	}
	s.last = now
	return true
}

//Wait returns how long to wait from now until the next generation is allowed
func (s *Scheduler) Wait(now time.Time) time.Duration {
	d := s.last.Add(s.interval).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
