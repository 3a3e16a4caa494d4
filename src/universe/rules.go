package universe

//CountLiveNeighbours counts the live cells among the 8 neighbours of x, y
//neighbours outside the area are skipped, there is no wraparound
func CountLiveNeighbours(a Area, x int, y int) int {
	live := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			//skip coordinates outside the area
			if nx < 0 || ny < 0 || nx >= a.Width || ny >= a.Height {
				continue
			}
			if a.Entities[ny][nx] {
				live++
			}
		}
	}
	return live
}

//NextCellState applies the Life rule to the cell with n live neighbours
func NextCellState(alive bool, n int) bool {
	switch n {
	case 2:
		return alive
	case 3:
		return true
	default:
		return false
	}
}

//Step calculates the next generation into the new area
//the source area is only read
func Step(a Area) Area {
	next := NewArea(a.Width, a.Height)
	stepRows(a, next, 0, a.Height)
	return next
}

//stepRows writes the next state of rows [y1, y2) of src into dst
func stepRows(src Area, dst Area, y1 int, y2 int) {
	for y := y1; y < y2; y++ {
		for x := 0; x < src.Width; x++ {
			dst.Entities[y][x] = Cell(NextCellState(bool(src.Entities[y][x]), CountLiveNeighbours(src, x, y)))
		}
	}
}
