package session

import (
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"lifebox/src/universe"
)

//Cursor is the edit cursor position, it never enters the border rows and columns
type Cursor struct {
	X int
	Y int
}

//Snapshot is the read-only copy of the session state handed to the viewers
type Snapshot struct {
	Area       universe.Area
	Cursor     Cursor
	ShowCursor bool
	Mode       Mode
	Tab        Tab
	Status     universe.Status
	Options    universe.Options
	Engine     string
}

//Session owns the area and the interaction state
//it is not safe for concurrent use, all calls must come from one loop
type Session struct {
	options   universe.Options
	engine    universe.Engine
	scheduler *universe.Scheduler
	area      universe.Area
	cursor    Cursor
	mode      Mode
	tab       Tab
	status    universe.Status
	templates map[string]universe.Template
	views     []Viewer
	done      bool
}

//New creates the session in editing mode with the empty area and the centered cursor
//start is the session start time used by the tick scheduler
func New(o *universe.Options, e universe.Engine, start time.Time) *Session {
	if o == nil {
		d := universe.DefaultUniverseOptions
		o = &d
	}
	if e == nil {
		e = universe.NewBaseEngine(o)
	}
	s := Session{
		options:   *o,
		engine:    e,
		scheduler: universe.NewScheduler(o.Interval, start),
		area:      universe.NewArea(o.Width, o.Height),
		cursor:    Cursor{X: o.Width / 2, Y: o.Height / 2},
		mode:      ModeEditing,
		tab:       TabNone,
		templates: map[string]universe.Template{},
	}
	for _, t := range universe.Templates {
		s.AddTemplate(t)
	}
	return &s
}

//Handle applies the input to the session
//returns true when the session is terminated
func (s *Session) Handle(in Input) (quit bool) {
	if s.done {
		return true
	}
	switch in {
	case InputCancel:
		s.terminate("cancel")
	case InputToggleMenu:
		if s.tab == TabNone {
			s.tab = TabEdit
		} else {
			s.tab = TabNone
		}
	case InputUp, InputDown, InputLeft, InputRight:
		s.move(in)
	case InputConfirm:
		s.confirm()
	default:
		log.Panicf("session: unknown input %d", int(in))
	}
	s.refreshView()
	return s.done
}

//Tick computes and installs the next generation when the session is running
//and the scheduler allows it, reports whether the generation was advanced
func (s *Session) Tick(now time.Time) bool {
	if s.done || s.mode != ModeRunning {
		return false
	}
	if !s.scheduler.Poll(now) {
		return false
	}
	start := time.Now()
	next := s.engine.Next(s.area)
	s.status.IterationTime = time.Since(start)
	s.status.Changed = !next.Equal(s.area)
	s.status.LiveCells = next.LiveCells()
	s.status.IterationNum++
	//the whole area is replaced at once
	s.area = next
	s.refreshView()
	return true
}

//Close terminates the session because the display was closed
func (s *Session) Close() {
	if !s.done {
		s.terminate("display closed")
	}
}

//Done reports whether the session is terminated
func (s *Session) Done() bool {
	return s.done
}

//Snapshot returns the copy of the current state for the rendering
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Area:       s.area.Clone(),
		Cursor:     s.cursor,
		ShowCursor: s.mode == ModeEditing && s.tab == TabNone,
		Mode:       s.mode,
		Tab:        s.tab,
		Status:     s.status,
		Options:    s.options,
		Engine:     s.engine.Name(),
	}
}

//Mode returns the running mode
func (s *Session) Mode() Mode {
	return s.mode
}

//Tab returns the focused menu item, TabNone when the menu is not focused
func (s *Session) Tab() Tab {
	return s.tab
}

//Cursor returns the edit cursor position
func (s *Session) Cursor() Cursor {
	return s.cursor
}

//Status returns current session status represented by Status struct
func (s *Session) Status() universe.Status {
	return s.status
}

//Options returns the session configuration
func (s *Session) Options() universe.Options {
	return s.options
}

//Scheduler returns the tick scheduler of the session
func (s *Session) Scheduler() *universe.Scheduler {
	return s.scheduler
}

//RegisterViewer registers the viewer - the session will call the viewer when the state is changed
func (s *Session) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//AddTemplate adds the seeding template to the internal storage
//the area can be populated with this template by call SettleTemplate
func (s *Session) AddTemplate(tmpl universe.Template) {
	s.templates[tmpl.Name] = tmpl
}

//SettleTemplate places the seeding template in the middle of the area
func (s *Session) SettleTemplate(name string) error {
	tmpl, ok := s.templates[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}
	w, h := tmpl.Size()
	s.area.Settle(tmpl.Coordinates, (s.area.Width-w)/2, (s.area.Height-h)/2)
	s.status.LiveCells = s.area.LiveCells()
	s.refreshView()
	return nil
}

//SettleWithRandomData populates the area with random data
//the same seed always produces the same area
func (s *Session) SettleWithRandomData(seed int64) {
	r := rand.New(rand.NewSource(seed))
	s.area.Clear()
	for i := 0; i < s.area.Width*s.area.Height/4; i++ {
		s.area.Set(r.Intn(s.area.Width), r.Intn(s.area.Height), true)
	}
	s.status.LiveCells = s.area.LiveCells()
	s.refreshView()
}

//move moves the cursor in editing mode or the menu selection when the menu is focused
func (s *Session) move(in Input) {
	if s.tab != TabNone {
		switch in {
		case InputLeft:
			s.tab = s.tab.prev()
		case InputRight:
			s.tab = s.tab.next()
		}
		return
	}
	//editing is disallowed during the playback
	if s.mode == ModeRunning {
		return
	}
	switch in {
	case InputLeft:
		if s.cursor.X > 1 {
			s.cursor.X--
		}
	case InputRight:
		if s.cursor.X < s.options.Width-2 {
			s.cursor.X++
		}
	case InputUp:
		if s.cursor.Y > 1 {
			s.cursor.Y--
		}
	case InputDown:
		if s.cursor.Y < s.options.Height-2 {
			s.cursor.Y++
		}
	}
}

//confirm toggles the cell under the cursor or executes the selected menu item
func (s *Session) confirm() {
	switch s.tab {
	case TabNone:
		s.area.Toggle(s.cursor.X, s.cursor.Y)
		s.status.LiveCells = s.area.LiveCells()
	case TabEdit:
		s.setMode(ModeEditing)
		s.tab = TabNone
	case TabRun:
		s.setMode(ModeRunning)
	case TabClear:
		//go to edit mode before clearing if running
		if s.mode == ModeRunning {
			s.setMode(ModeEditing)
			s.tab = TabNone
		}
		s.clear()
	case TabQuit:
		s.terminate("quit")
	default:
		log.Panicf("session: tab %d is outside of the menu", int(s.tab))
	}
}

//clear kills all cells and resets all counters
func (s *Session) clear() {
	s.area.Clear()
	s.status = universe.Status{}
}

func (s *Session) setMode(m Mode) {
	if s.mode != m {
		log.Printf("session: %v -> %v at generation %v", s.mode, m, s.status.IterationNum)
	}
	s.mode = m
}

func (s *Session) terminate(reason string) {
	log.Printf("session: terminated (%s) at generation %v", reason, s.status.IterationNum)
	s.done = true
}

//refreshView calls Refresh event for all registered views
func (s *Session) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
