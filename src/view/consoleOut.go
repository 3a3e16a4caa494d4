package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"lifebox/src/session"
)

//ConsoleOut is the headless viewer
//it selects Run through the menu and prints the progress until the simulation is finished
type ConsoleOut struct {
	s            *session.Session
	out          io.Writer
	au           aurora.Aurora
	startTime    time.Time
	lastReported int
	PrintArea    bool
}

func NewConsoleOut(out io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{out: out, au: aurora.NewAurora(colors), PrintArea: true}
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if st.IterationNum > 0 && st.IterationNum%10 == 0 && st.IterationNum != c.lastReported {
		c.lastReported = st.IterationNum
		fmt.Fprintf(c.out, "  Iterations done: %v\n", st.IterationNum)
	}
}

func (c *ConsoleOut) Register(s *session.Session) {
	c.s = s
	o := c.s.Options()
	fmt.Fprintln(c.out, "Running configuration:")
	fmt.Fprintf(c.out, "  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.out, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.out, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

//Start runs the simulation until it is finished, MaxSteps is reached or the session is terminated
func (c *ConsoleOut) Start() error {
	c.startTime = time.Now()
	fmt.Fprintln(c.out, "\nSimulation started...")

	for _, in := range []session.Input{session.InputToggleMenu, session.InputRight, session.InputConfirm} {
		c.s.Handle(in)
	}

	maxSteps := c.s.Options().MaxSteps
	sched := c.s.Scheduler()
	for !c.s.Done() {
		st := c.s.Status()
		if st.Finished() || (maxSteps > 0 && st.IterationNum >= maxSteps) {
			break
		}
		if w := sched.Wait(time.Now()); w > 0 {
			time.Sleep(w)
		}
		c.s.Tick(time.Now())
	}

	st := c.s.Status()
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	reason := "max iterations reached"
	if st.LiveCells == 0 {
		reason = "all cells are dead"
	} else if st.IterationNum > 0 && !st.Changed {
		reason = "the area is stable"
	}
	resultData := map[string]interface{}{
		"Last iteration": st.IterationNum,
		"Total time":     totalTime,
		"Live cells":     st.LiveCells,
		"Reason":         reason,
	}
	fmt.Fprintln(c.out, "\nFinished:")
	c.printHashData(resultData)
	if c.PrintArea {
		fmt.Fprintln(c.out)
		fmt.Fprint(c.out, c.renderArea(c.s.Snapshot()))
	}
	return nil
}

//renderArea draws the area with the border as text
func (c *ConsoleOut) renderArea(snap session.Snapshot) string {
	a := snap.Area
	var b strings.Builder
	border := c.au.Gray(12, strings.Repeat("#", a.Width+2)).String()
	b.WriteString(border)
	b.WriteByte('\n')
	live := c.au.Green("O").String()
	for _, l := range a.Entities {
		b.WriteString(c.au.Gray(12, "#").String())
		for _, e := range l {
			if e {
				b.WriteString(live)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString(c.au.Gray(12, "#").String())
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')
	b.WriteString(menuLine(snap.Tab, a.Width+2, func(s string) string {
		return "[" + c.au.Cyan(s).String() + "]"
	}))
	b.WriteByte('\n')
	return b.String()
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
