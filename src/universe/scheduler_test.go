package universe

import (
	"testing"
	"time"
)

func TestSchedulerFirstPollAllowed(t *testing.T) {
	start := time.Now()
	s := NewScheduler(DefSimulationInterval, start)
	if !s.Poll(start) {
		t.Fatal("the first poll must be allowed")
	}
	if !s.Last().Equal(start) {
		t.Fatalf("last tick %v, expected %v", s.Last(), start)
	}
}

func TestSchedulerThrottling(t *testing.T) {
	start := time.Now()
	s := NewScheduler(300*time.Millisecond, start)

	polls := []struct {
		after   time.Duration
		advance bool
	}{
		{0, true},
		{100 * time.Millisecond, false},
		{299 * time.Millisecond, false},
		{300 * time.Millisecond, true},
		{450 * time.Millisecond, false},
		{600 * time.Millisecond, true},
		{1000 * time.Millisecond, true},
		{1300 * time.Millisecond, true},
	}
	for _, p := range polls {
		if got := s.Poll(start.Add(p.after)); got != p.advance {
			t.Fatalf("poll at +%v: %v, expected %v", p.after, got, p.advance)
		}
	}
}

func TestSchedulerReadyDoesNotRecord(t *testing.T) {
	start := time.Now()
	s := NewScheduler(time.Second, start)
	if !s.Ready(start) || !s.Ready(start) {
		t.Fatal("ready must stay true until polled")
	}
	s.Poll(start)
	if s.Ready(start.Add(500 * time.Millisecond)) {
		t.Fatal("ready before the interval elapsed")
	}
	if w := s.Wait(start.Add(400 * time.Millisecond)); w != 600*time.Millisecond {
		t.Fatalf("wait %v, expected 600ms", w)
	}
	if w := s.Wait(start.Add(2 * time.Second)); w != 0 {
		t.Fatalf("wait %v, expected 0", w)
	}
}

func TestSchedulerZeroInterval(t *testing.T) {
	start := time.Now()
	s := NewScheduler(0, start)
	for i := 0; i < 3; i++ {
		if !s.Poll(start) {
			t.Fatal("zero interval must never throttle")
		}
	}
}
