package main

import (
	"testing"
	"time"

	"lifebox/src/session"
	"lifebox/src/universe"
)

func newSession(b *testing.B, engine string) *session.Session {
	o := universe.DefaultUniverseOptions
	o.Interval = 0
	e, err := universe.NewEngine(engine, &o)
	if err != nil {
		b.Fatal(err)
	}
	s := session.New(&o, e, time.Now())
	s.SettleWithRandomData(1)
	for _, in := range []session.Input{session.InputToggleMenu, session.InputRight, session.InputConfirm} {
		s.Handle(in)
	}
	return s
}

func BenchmarkSession_Tick(b *testing.B) {
	for _, e := range universe.EngineNames() {
		b.Run(e, func(b *testing.B) {
			s := newSession(b, e)
			now := time.Now()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if !s.Tick(now) {
					b.Fatal("tick did not advance")
				}
			}
		})
	}
}

func TestContains(t *testing.T) {
	names := universe.EngineNames()
	if !contains(names, "base") || !contains(names, "multithreaded") {
		t.Fatalf("engines %v", names)
	}
	if contains(names, "smallBuff") {
		t.Fatal("unexpected engine")
	}
}
