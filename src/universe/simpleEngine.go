package universe

/*
	Simple engine implementation with two buffers
	All cells state is calculated to the spare buffer which is returned as the new area,
	the area passed in becomes the spare buffer for the next call
*/
type SimpleEngine struct {
	tmpBuff Area
}

func NewSimpleEngine(o *Options) *SimpleEngine {
	se := SimpleEngine{}
	if o != nil {
		se.tmpBuff = NewArea(o.Width, o.Height)
	}
	return &se
}

func (se *SimpleEngine) Name() string {
	return "simple"
}

func (se *SimpleEngine) Next(a Area) Area {
	//the spare buffer must never alias the area being read
	if se.tmpBuff.Width != a.Width || se.tmpBuff.Height != a.Height || se.tmpBuff.sameBuffer(a) {
		se.tmpBuff = NewArea(a.Width, a.Height)
	}
	next := se.tmpBuff
	stepRows(a, next, 0, a.Height)
	se.tmpBuff = a
	return next
}
