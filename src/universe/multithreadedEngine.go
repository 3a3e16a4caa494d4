package universe

import (
	"golang.org/x/sync/errgroup"
)

/*
	Engine implementation with multithreaded computation algorithm
	the field is splitted into the areas each of which is computed by individual goroutine
	the new area is returned only when every goroutine finished
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

type MultithreadedEngine struct {
	workers int
}

//workArea describe the rows [y1, y2) computed by one worker
type workArea struct {
	y1 int
	y2 int
}

func NewMultithreadedEngine(o *Options) *MultithreadedEngine {
	me := MultithreadedEngine{workers: DefWorkers}
	if o != nil {
		if o.Advanced == nil {
			o.Advanced = make(map[string]interface{})
		}
		wa := me.workAreas(o.Height)
		o.Advanced["Workers"] = len(wa)
		if len(wa) > 0 {
			o.Advanced["Rows per worker"] = wa[0].y2 - wa[0].y1
		}
	}
	return &me
}

func (me *MultithreadedEngine) Name() string {
	return "multithreaded"
}

//Next calculates the next area
//starts goroutines and waits for all of them before returning
func (me *MultithreadedEngine) Next(a Area) Area {
	next := NewArea(a.Width, a.Height)
	var eg errgroup.Group
	for _, wa := range me.workAreas(a.Height) {
		wa := wa
		eg.Go(func() error {
			stepRows(a, next, wa.y1, wa.y2)
			return nil
		})
	}
	//workers never fail, Wait is the barrier only
	_ = eg.Wait()
	return next
}

//workAreas splits height rows between the workers
func (me *MultithreadedEngine) workAreas(height int) []workArea {
	linesPerWorker := height / me.workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*me.workers < height {
		linesPerWorker++
	}
	areas := make([]workArea, 0, me.workers)
	for y1 := 0; y1 < height; y1 += linesPerWorker {
		y2 := y1 + linesPerWorker
		if y2 > height {
			y2 = height
		}
		areas = append(areas, workArea{y1, y2})
	}
	return areas
}
