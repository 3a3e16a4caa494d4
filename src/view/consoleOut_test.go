package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"lifebox/src/session"
	"lifebox/src/universe"
)

func newHeadless(t *testing.T, template string, maxSteps int) (*session.Session, *ConsoleOut, *bytes.Buffer) {
	t.Helper()
	o := universe.DefaultUniverseOptions
	o.Interval = 0
	o.MaxSteps = maxSteps
	e, err := universe.NewEngine("base", &o)
	if err != nil {
		t.Fatal(err)
	}
	s := session.New(&o, e, time.Now())
	if err := s.SettleTemplate(template); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	c := NewConsoleOut(out, false)
	s.RegisterViewer(c)
	return s, c, out
}

func TestConsoleOutStopsAtMaxSteps(t *testing.T) {
	s, c, out := newHeadless(t, "blinker", 25)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Dimension: 79 x 45",
		"engine: base",
		"Iterations done: 10",
		"Iterations done: 20",
		"Last iteration: 25",
		"Reason: max iterations reached",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
	if s.Mode() != session.ModeRunning {
		t.Fatalf("mode %v, expected running", s.Mode())
	}
}

func TestConsoleOutStopsOnStableArea(t *testing.T) {
	s, c, out := newHeadless(t, "block", 100)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "Last iteration: 1\n") || !strings.Contains(got, "Reason: the area is stable") {
		t.Fatalf("unexpected summary:\n%s", got)
	}
	if s.Status().LiveCells != 4 {
		t.Fatalf("live cells %v, expected 4", s.Status().LiveCells)
	}
}

func TestRenderArea(t *testing.T) {
	o := universe.DefaultUniverseOptions
	o.Width = 4
	o.Height = 2
	s := session.New(&o, nil, time.Now())
	s.Handle(session.InputConfirm)
	s.Handle(session.InputToggleMenu)
	c := NewConsoleOut(&bytes.Buffer{}, false)
	c.Register(s)

	expected := "######\n" +
		"#....#\n" +
		"#..O.#\n" +
		"######\n"
	got := c.renderArea(s.Snapshot())
	if !strings.HasPrefix(got, expected) {
		t.Fatalf("got\n%s\nexpected prefix\n%s", got, expected)
	}
	if !strings.Contains(got, "[Edit]") {
		t.Fatalf("active tab is not highlighted:\n%s", got)
	}
}

func TestMenuLine(t *testing.T) {
	line := menuLine(session.TabClear, 40, func(s string) string { return "<" + s + ">" })
	for _, want := range []string{"Edit", "Run", "<Clear>", "Quit"} {
		if !strings.Contains(line, want) {
			t.Fatalf("%q does not contain %q", line, want)
		}
	}
	if strings.Index(line, "Edit") > strings.Index(line, "Run") {
		t.Fatalf("menu items are out of order: %q", line)
	}
	if plain := menuLine(session.TabNone, 40, func(s string) string { return "<" + s + ">" }); strings.Contains(plain, "<") {
		t.Fatalf("no item should be highlighted: %q", plain)
	}
}
