package session

//Viewer is the interface to any Viewer - the object who can display session data or feed the input
type Viewer interface {
	Refresh()
	Register(s *Session)
	Start() error
}
