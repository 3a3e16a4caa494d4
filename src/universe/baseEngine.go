package universe

//BaseEngine is the simplest engine
//creates the new area buffer with full size on each call
type BaseEngine struct{}

//NewBaseEngine creates the BaseEngine instance
func NewBaseEngine(_ *Options) *BaseEngine {
	return &BaseEngine{}
}

func (e *BaseEngine) Name() string {
	return "base"
}

func (e *BaseEngine) Next(a Area) Area {
	return Step(a)
}
