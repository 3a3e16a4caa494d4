package universe

type Cell bool

//Area is the field where cells are living
//Entities rows are sliced from one row-major buffer, dimensions never change after creation
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//NewArea allocates the new area with all cells dead
func NewArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}

//Contains reports whether x, y is inside the area
func (a Area) Contains(x int, y int) bool {
	return x >= 0 && y >= 0 && x < a.Width && y < a.Height
}

//Get returns the cell state at x, y, cells outside the area are dead
func (a Area) Get(x int, y int) bool {
	if !a.Contains(x, y) {
		return false
	}
	return bool(a.Entities[y][x])
}

//Set places the cell state at x, y, coordinates outside the area are ignored
func (a Area) Set(x int, y int, live bool) {
	if !a.Contains(x, y) {
		return
	}
	a.Entities[y][x] = Cell(live)
}

//Toggle inverses the cell state at x, y
func (a Area) Toggle(x int, y int) {
	if !a.Contains(x, y) {
		return
	}
	a.Entities[y][x] = !a.Entities[y][x]
}

//Clear kills all cells
func (a Area) Clear() {
	a.walk(func(x int, y int, _ Cell) {
		a.Entities[y][x] = false
	})
}

//Settle places live cells at the [x,y] coordinates shifted by dx, dy
//coordinates falling outside the area are skipped
func (a Area) Settle(vc [][]int, dx int, dy int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		a.Set(v[0]+dx, v[1]+dy, true)
	}
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() (n int) {
	a.walk(func(_ int, _ int, e Cell) {
		if e {
			n++
		}
	})
	return
}

//Clone returns the deep copy of the area
func (a Area) Clone() Area {
	c := NewArea(a.Width, a.Height)
	for y := range a.Entities {
		copy(c.Entities[y], a.Entities[y])
	}
	return c
}

//Equal compares dimensions and every cell
func (a Area) Equal(b Area) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for y := range a.Entities {
		for x := range a.Entities[y] {
			if a.Entities[y][x] != b.Entities[y][x] {
				return false
			}
		}
	}
	return true
}

//sameBuffer reports whether both areas share the backing buffer
func (a Area) sameBuffer(b Area) bool {
	if len(a.Entities) == 0 || len(b.Entities) == 0 || len(a.Entities[0]) == 0 || len(b.Entities[0]) == 0 {
		return false
	}
	return &a.Entities[0][0] == &b.Entities[0][0]
}

//walk walks the entire area and calls the cb function for each cell
func (a Area) walk(cb func(x int, y int, entity Cell)) {
	for y := range a.Entities {
		for x := range a.Entities[y] {
			cb(x, y, a.Entities[y][x])
		}
	}
}
