//go:build ebiten

package view

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"lifebox/src/session"
)

const menuHeight = 24

var (
	bgColor       = color.RGBA{0, 0, 0, 255}
	cursorColor   = color.RGBA{255, 225, 255, 255}
	liveCellColor = color.RGBA{10, 215, 70, 255}
	tabFgColor    = color.RGBA{65, 170, 235, 255}
	tabBgColor    = color.RGBA{50, 135, 185, 255}
	borderColor   = color.RGBA{155, 155, 155, 255}
	textColor     = color.RGBA{220, 220, 220, 255}

	windowKeys = []struct {
		key ebiten.Key
		in  session.Input
	}{
		{ebiten.KeyArrowUp, session.InputUp},
		{ebiten.KeyArrowDown, session.InputDown},
		{ebiten.KeyArrowLeft, session.InputLeft},
		{ebiten.KeyArrowRight, session.InputRight},
		{ebiten.KeyTab, session.InputToggleMenu},
		{ebiten.KeySpace, session.InputConfirm},
		{ebiten.KeyEnter, session.InputConfirm},
		{ebiten.KeyEscape, session.InputCancel},
	}
)

//WindowUI renders the session into the window, it implements ebiten.Game
type WindowUI struct {
	s     *session.Session
	snap  session.Snapshot
	scale int
}

//NewWindow creates the window viewer drawing every cell as scale x scale pixels
func NewWindow(scale int) (*WindowUI, error) {
	if scale <= 0 {
		return nil, errors.Errorf("invalid window scale %v", scale)
	}
	return &WindowUI{scale: scale}, nil
}

func (w *WindowUI) Register(s *session.Session) {
	w.s = s
	w.snap = s.Snapshot()
}

//Refresh takes the new snapshot, it is always called from Update
func (w *WindowUI) Refresh() {
	w.snap = w.s.Snapshot()
}

//Start runs the window loop until the session is terminated or the window is closed
func (w *WindowUI) Start() error {
	width, height := w.Layout(0, 0)
	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(width, height)
	err := ebiten.RunGame(w)
	//RunGame returns nil when the user closed the window
	w.s.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "window loop")
	}
	return nil
}

func (w *WindowUI) Update() error {
	for _, k := range windowKeys {
		if inpututil.IsKeyJustPressed(k.key) && w.s.Handle(k.in) {
			return ebiten.Termination
		}
	}
	w.s.Tick(time.Now())
	return nil
}

func (w *WindowUI) Draw(screen *ebiten.Image) {
	a := w.snap.Area
	s := float32(w.scale)
	screen.Fill(bgColor)

	//border around the area
	fw, fh := float32(a.Width+2)*s, float32(a.Height+2)*s
	vector.DrawFilledRect(screen, 0, 0, fw, s, borderColor, false)
	vector.DrawFilledRect(screen, 0, fh-s, fw, s, borderColor, false)
	vector.DrawFilledRect(screen, 0, 0, s, fh, borderColor, false)
	vector.DrawFilledRect(screen, fw-s, 0, s, fh, borderColor, false)

	for y, l := range a.Entities {
		for x, e := range l {
			if e {
				vector.DrawFilledRect(screen, float32(x+1)*s, float32(y+1)*s, s, s, liveCellColor, false)
			}
		}
	}
	if w.snap.ShowCursor {
		vector.DrawFilledRect(screen, float32(w.snap.Cursor.X+1)*s, float32(w.snap.Cursor.Y+1)*s, s, s, cursorColor, false)
	}

	slot := int(fw) / len(session.MenuTabs)
	face := basicfont.Face7x13
	for i, tab := range session.MenuTabs {
		label := tab.String()
		x := i*slot + (slot-len(label)*7)/2
		y := int(fh) + menuHeight/2 + 4
		clr := color.Color(textColor)
		if tab == w.snap.Tab {
			vector.DrawFilledRect(screen, float32(x-2), float32(y-11), float32(len(label)*7+4), 15, tabBgColor, false)
			clr = tabFgColor
		}
		text.Draw(screen, label, face, x, y, clr)
	}
}

func (w *WindowUI) Layout(_, _ int) (int, int) {
	o := w.snap.Options
	return (o.Width + 2) * w.scale, (o.Height+2)*w.scale + menuHeight
}
