package view

import (
	"strings"

	"lifebox/src/session"
)

//menuLine lays the menu items out evenly over width columns
//the active item is passed through highlight
func menuLine(active session.Tab, width int, highlight func(string) string) string {
	slot := width / len(session.MenuTabs)
	var b strings.Builder
	for _, tab := range session.MenuTabs {
		label := tab.String()
		left := (slot - len(label)) / 2
		if left < 0 {
			left = 0
		}
		right := slot - len(label) - left
		if right < 0 {
			right = 0
		}
		b.WriteString(strings.Repeat(" ", left))
		if tab == active {
			b.WriteString(highlight(label))
		} else {
			b.WriteString(label)
		}
		b.WriteString(strings.Repeat(" ", right))
	}
	return b.String()
}
