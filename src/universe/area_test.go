package universe

import "testing"

func TestNewAreaIsDead(t *testing.T) {
	a := NewArea(DefWidth, DefHeight)
	if a.Width != DefWidth || a.Height != DefHeight {
		t.Fatalf("dimension %vx%v, expected %vx%v", a.Width, a.Height, DefWidth, DefHeight)
	}
	if len(a.Entities) != DefHeight || len(a.Entities[0]) != DefWidth {
		t.Fatalf("entities %vx%v", len(a.Entities[0]), len(a.Entities))
	}
	if n := a.LiveCells(); n != 0 {
		t.Fatalf("live cells %v, expected 0", n)
	}
}

func TestAreaToggleAndClear(t *testing.T) {
	a := NewArea(5, 4)
	a.Toggle(4, 3)
	if !a.Get(4, 3) {
		t.Fatal("cell (4,3) should be live after toggle")
	}
	a.Toggle(4, 3)
	if a.Get(4, 3) {
		t.Fatal("cell (4,3) should be dead after second toggle")
	}

	a.Toggle(10, 10)
	a.Toggle(-1, 0)
	if n := a.LiveCells(); n != 0 {
		t.Fatalf("toggling outside the area changed %v cells", n)
	}

	a.Settle([][]int{{0, 0}, {1, 1}, {2, 2}}, 0, 0)
	a.Clear()
	if n := a.LiveCells(); n != 0 {
		t.Fatalf("live cells after clear %v", n)
	}
}

func TestAreaSettleSkipsOutside(t *testing.T) {
	a := NewArea(3, 3)
	a.Settle([][]int{{0, 0}, {2, 2}, {3, 0}, {0, 3}, {1}}, 1, 0)
	if n := a.LiveCells(); n != 1 {
		t.Fatalf("live cells %v, expected 1", n)
	}
	if !a.Get(1, 0) {
		t.Fatal("cell (1,0) should be live")
	}
}

func TestAreaCloneIsIndependent(t *testing.T) {
	a := NewArea(4, 4)
	a.Set(1, 1, true)
	c := a.Clone()
	if !a.Equal(c) {
		t.Fatal("clone differs from the source")
	}
	c.Toggle(2, 2)
	if a.Get(2, 2) {
		t.Fatal("toggling the clone changed the source")
	}
	if a.Equal(c) {
		t.Fatal("areas with different cells reported equal")
	}
	if a.Equal(NewArea(4, 5)) {
		t.Fatal("areas with different dimensions reported equal")
	}
}

func TestTemplateSize(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h int
	}{
		{"block", 2, 2},
		{"blinker", 3, 1},
		{"glider", 3, 3},
		{"testSample", 6, 4},
	} {
		var tmpl Template
		for _, tt := range Templates {
			if tt.Name == tc.name {
				tmpl = tt
			}
		}
		w, h := tmpl.Size()
		if w != tc.w || h != tc.h {
			t.Errorf("%s size %vx%v, expected %vx%v", tc.name, w, h, tc.w, tc.h)
		}
	}
}
