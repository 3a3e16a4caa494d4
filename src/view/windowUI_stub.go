//go:build !ebiten

package view

import (
	"github.com/pkg/errors"

	"lifebox/src/session"
)

var errNoWindow = errors.New("the window viewer requires building with the 'ebiten' tag")

//WindowUI is a placeholder that satisfies the API expected by the GUI build
type WindowUI struct{}

//NewWindow always reports that the GUI build tag is missing
func NewWindow(int) (*WindowUI, error) {
	return nil, errNoWindow
}

func (w *WindowUI) Register(*session.Session) {}

func (w *WindowUI) Refresh() {}

func (w *WindowUI) Start() error {
	return errNoWindow
}
