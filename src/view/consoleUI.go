package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"lifebox/src/session"
)

//DefPollInterval is how often the terminal loop polls the tick scheduler
const DefPollInterval = 25 * time.Millisecond

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	s    *session.Session
	snap session.Snapshot
	g    *gocui.Gui
	k    []keyBindings

	liveFiller   string
	deadFiller   string
	cursorFiller string
}

var (
	modeDescr = map[session.Mode]string{
		session.ModeEditing: aurora.Colorize("editing", aurora.BlueFg).String(),
		session.ModeRunning: aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

func NewViewTerminal() (*ConsoleUI, error) {

	var err error
	t := ConsoleUI{
		liveFiller:   aurora.Green("█").BgGreen().String(),
		deadFiller:   " ",
		cursorFiller: aurora.Magenta("▓").String(),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "create terminal gui")
	}

	//Esc alone is the cancel key
	t.g.InputEsc = true
	t.k = []keyBindings{
		{gocui.KeyArrowUp, "↑", "", t.input(session.InputUp), ""},
		{gocui.KeyArrowDown, "↓", "", t.input(session.InputDown), ""},
		{gocui.KeyArrowLeft, "←", "", t.input(session.InputLeft), ""},
		{gocui.KeyArrowRight, "→", "Move", t.input(session.InputRight), ""},
		{gocui.KeyTab, "TAB", "Menu", t.input(session.InputToggleMenu), ""},
		{gocui.KeySpace, "SPACE", "", t.input(session.InputConfirm), ""},
		{gocui.KeyEnter, "ENTER", "Confirm", t.input(session.InputConfirm), ""},
		{gocui.KeyEsc, "ESC", "Cancel", t.input(session.InputCancel), ""},
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return errors.Wrapf(err, "bind key %s", kb.name)
		}
	}
	return nil
}

func (t *ConsoleUI) Register(s *session.Session) {
	t.s = s
	t.snap = s.Snapshot()
}

//Start runs the terminal main loop until the session is terminated
func (t *ConsoleUI) Start() error {
	done := make(chan struct{})
	go t.tickLoop(done)
	err := t.g.MainLoop()
	close(done)
	t.g.Close()
	if err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "terminal main loop")
	}
	return nil
}

//Refresh takes the new snapshot, it is always called from the gui main loop
func (t *ConsoleUI) Refresh() {
	t.snap = t.s.Snapshot()
}

//tickLoop posts the scheduler polls into the gui main loop
//so the session is only touched by the main loop goroutine
func (t *ConsoleUI) tickLoop(done chan struct{}) {
	ticker := time.NewTicker(DefPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				t.s.Tick(time.Now())
				return nil
			})
		}
	}
}

func (t *ConsoleUI) renderField(v *gocui.View) {
	v.Clear()
	a := t.snap.Area

	crop := false
	maxW, maxH := v.Size()
	if a.Width > maxW || a.Height > maxH {
		crop = true
	}

	var b bytes.Buffer

	for y, l := range a.Entities {
		//discard the data outside the view area
		if y >= maxH {
			break
		}
		//line feed char
		if y != 0 {
			b.WriteByte(10)
		}
		if crop && y == (maxH-1) {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").String())
			break
		}
		for x, e := range l {
			if x >= maxW {
				break
			}
			if t.snap.ShowCursor && x == t.snap.Cursor.X && y == t.snap.Cursor.Y {
				b.WriteString(t.cursorFiller)
			} else if bool(e) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderMenu(v *gocui.View) {
	v.Clear()
	w, _ := v.Size()
	_, _ = fmt.Fprint(v, menuLine(t.snap.Tab, w, func(s string) string {
		return aurora.Colorize(s, aurora.CyanFg|aurora.BlueBg|aurora.BoldFm).String()
	}))
}

func (t *ConsoleUI) renderStatus(v *gocui.View) {
	s := t.snap.Status
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.IterationNum))
	_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", modeDescr[t.snap.Mode]))
	if t.snap.ShowCursor {
		_, _ = fmt.Fprintln(v, t.renderProp("Cursor", "%v, %v", t.snap.Cursor.X, t.snap.Cursor.Y))
	}
}

func (t *ConsoleUI) renderConfiguration(v *gocui.View) {
	c := t.snap.Options
	v.Clear()
	_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
	_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
	_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", t.snap.Engine))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	rightColumnWidth := 28
	minWindowHeight := 12
	a := t.snap.Area

	if maxY < minWindowHeight || maxX < 20 {
		if _, err := t.headerLayout(g, maxY, "Terminal too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		for _, name := range []string{"field", "menu", "status", "configuration", "help"} {
			_ = g.DeleteView(name)
		}
		return nil
	}
	if _, err := t.headerLayout(g, 2, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	//the frame of the field view is the border around the area
	fieldX1 := a.Width + 1
	if fieldX1 > maxX-1 {
		fieldX1 = maxX - 1
	}
	fieldY1 := 2 + a.Height + 1
	if fieldY1 > maxY-5 {
		fieldY1 = maxY - 5
	}

	v, err := g.SetView("field", 0, 2, fieldX1, fieldY1)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
	}
	t.renderField(v)

	if v, err = g.SetView("menu", 0, fieldY1+1, fieldX1, fieldY1+3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
	}
	t.renderMenu(v)

	//the side panels are shown only when there is the room for them
	if maxX-1-(fieldX1+1) >= rightColumnWidth {
		if v, err = g.SetView("status", fieldX1+1, 2, maxX-1, 2+(fieldY1-2)/2); err != nil {
			if err != gocui.ErrUnknownView || v == nil {
				return err
			}
			v.Title = "Status"
			v.Frame = true
		}
		t.renderStatus(v)

		if v, err = g.SetView("configuration", fieldX1+1, 2+(fieldY1-2)/2+1, maxX-1, fieldY1); err != nil {
			if err != gocui.ErrUnknownView || v == nil {
				return err
			}
			v.Title = "Configuration"
			v.Frame = true
		}
		t.renderConfiguration(v)
	} else {
		_ = g.DeleteView("status")
		_ = g.DeleteView("configuration")
	}

	if v, err := g.SetView("help", -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		parts := make([]string, 0, len(t.k))
		names := ""
		for _, k := range t.k {
			names += aurora.Green(k.name).String()
			//keys without description share the next description
			if k.descr == "" {
				names += " "
				continue
			}
			parts = append(parts, names+": "+k.descr)
			names = ""
		}
		_, _ = fmt.Fprintln(v, "KEYBINDINGS: "+strings.Join(parts, ", "))
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			text = text[:maxX]
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

//input returns the handler feeding the input symbol to the session
func (t *ConsoleUI) input(in session.Input) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		if t.s.Handle(in) {
			return gocui.ErrQuit
		}
		return nil
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	log.Println("terminal: interrupted")
	t.s.Close()
	return gocui.ErrQuit
}
