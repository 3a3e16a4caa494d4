package universe

import (
	"sort"
	"time"

	"github.com/pkg/errors"
)

//Engine computes the next generation of an Area
//implementations must never modify the area passed to Next
type Engine interface {
	Name() string
	Next(a Area) Area
}

//Options represents the Universe's configurable options
type Options struct {
	Width    int
	Height   int
	Interval time.Duration
	MaxSteps int
	Advanced map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	LiveCells     int
	IterationTime time.Duration
	Changed       bool
}

//Finished reports whether the simulation can not produce anything new:
//all cells are dead or the last generation did not change the area
func (s Status) Finished() bool {
	return s.IterationNum > 0 && (s.LiveCells == 0 || !s.Changed)
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//Size returns the bounding box of the template coordinates
func (t Template) Size() (w int, h int) {
	for _, c := range t.Coordinates {
		if len(c) < 2 {
			continue
		}
		if c[0]+1 > w {
			w = c[0] + 1
		}
		if c[1]+1 > h {
			h = c[1] + 1
		}
	}
	return
}

//default options
const (
	DefSimulationInterval = time.Millisecond * 300
	DefMaxSteps           = 1000
	DefWidth              = 79
	DefHeight             = 45
)

var DefaultUniverseOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

var (
	//Templates are the built-in seeding templates
	Templates = []Template{
		{"testSample", "the test sample with 3 stable patterns", [][]int{
			{1, 1}, {1, 2},
			{2, 1}, {2, 2},
			{3, 3},
			{4, 2},
			{4, 3},
			{5, 3},
		}},
		{"block", "2x2 still life", [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"blinker", "period 2 oscillator", [][]int{{0, 0}, {1, 0}, {2, 0}}},
		{"glider", "the smallest spaceship", [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	}

	engines = map[string]func(o *Options) Engine{
		"base":          func(o *Options) Engine { return NewBaseEngine(o) },
		"simple":        func(o *Options) Engine { return NewSimpleEngine(o) },
		"multithreaded": func(o *Options) Engine { return NewMultithreadedEngine(o) },
	}
)

//EngineNames returns the sorted names of the available engines
func EngineNames() (names []string) {
	names = make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

//NewEngine creates the engine registered under name
func NewEngine(name string, o *Options) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, errors.Errorf("unknown engine %q", name)
	}
	if o == nil {
		d := DefaultUniverseOptions
		o = &d
	}
	if o.Advanced == nil {
		o.Advanced = make(map[string]interface{})
	}
	o.Advanced["engine"] = name
	return f(o), nil
}
