package session

//Input is the discrete input symbol consumed by the Session
//the mapping from physical keys belongs to the viewers
type Input int

const (
	InputUp Input = iota + 1
	InputDown
	InputLeft
	InputRight
	InputToggleMenu
	InputConfirm
	InputCancel
)

var inputNames = map[Input]string{
	InputUp:         "up",
	InputDown:       "down",
	InputLeft:       "left",
	InputRight:      "right",
	InputToggleMenu: "menu",
	InputConfirm:    "confirm",
	InputCancel:     "cancel",
}

func (i Input) String() string {
	if n, ok := inputNames[i]; ok {
		return n
	}
	return "unknown"
}
