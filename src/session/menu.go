package session

import "log"

//Mode is the running mode of the session
type Mode int

const (
	ModeEditing Mode = iota
	ModeRunning
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeRunning:
		return "running"
	default:
		log.Panicf("session: mode %d is outside of the mode set", int(m))
		return ""
	}
}

//Tab is the active menu item, TabNone when the menu is not focused
type Tab int

const (
	TabNone Tab = iota
	TabEdit
	TabRun
	TabClear
	TabQuit
)

//MenuTabs lists the menu items in the display order
var MenuTabs = []Tab{TabEdit, TabRun, TabClear, TabQuit}

func (t Tab) String() string {
	switch t {
	case TabNone:
		return ""
	case TabEdit:
		return "Edit"
	case TabRun:
		return "Run"
	case TabClear:
		return "Clear"
	case TabQuit:
		return "Quit"
	default:
		log.Panicf("session: tab %d is outside of the menu", int(t))
		return ""
	}
}

//prev returns the previous tab, the first tab stays in place
func (t Tab) prev() Tab {
	if t > TabEdit {
		return t - 1
	}
	return t
}

//next returns the next tab, the last tab stays in place
func (t Tab) next() Tab {
	if t < TabQuit {
		return t + 1
	}
	return t
}
