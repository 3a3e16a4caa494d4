package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"lifebox/src/config"
	"lifebox/src/session"
	"lifebox/src/universe"
	"lifebox/src/view"
)

type EnvOptions struct {
	batch      bool
	window     bool
	windowSize int
	randomData bool
	seed       int64
	engine     string
	template   string
	logFile    string
}

func main() {
	eo, uo := initOptions()

	logOut, err := initLog(eo)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	if logOut != nil {
		defer logOut.Close()
	}

	e, err := universe.NewEngine(eo.engine, uo)
	if err != nil {
		log.Fatalln(err)
	}
	s := session.New(uo, e, time.Now())

	if eo.randomData {
		s.SettleWithRandomData(eo.seed)
	} else if eo.template != "" {
		if err := s.SettleTemplate(eo.template); err != nil {
			log.Fatalln(err)
		}
	}

	v, err := newViewer(eo)
	if err != nil {
		log.Fatalln(err)
	}
	s.RegisterViewer(v)
	log.Printf("session started: %vx%v, interval %v, engine %s", uo.Width, uo.Height, uo.Interval, e.Name())
	if err := v.Start(); err != nil {
		log.Fatalln(err)
	}
}

func newViewer(eo *EnvOptions) (session.Viewer, error) {
	switch {
	case eo.batch:
		return view.NewConsoleOut(os.Stdout, true), nil
	case eo.window:
		return view.NewWindow(eo.windowSize)
	default:
		return view.NewViewTerminal()
	}
}

//initLog sends the log to the file when it is set
//the terminal ui owns the screen so the log is discarded there otherwise
func initLog(eo *EnvOptions) (*os.File, error) {
	if eo.logFile != "" {
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return f, nil
	}
	if !eo.batch && !eo.window {
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalln(err)
	}

	o := universe.DefaultUniverseOptions
	o.Interval = env.Interval
	o.MaxSteps = env.MaxSteps
	uo = &o

	engineNames := universe.EngineNames()
	templateNames := make([]string, 0, len(universe.Templates))
	for _, t := range universe.Templates {
		templateNames = append(templateNames, t.Name)
	}

	eo = &EnvOptions{
		engine:     env.Engine,
		template:   env.Template,
		seed:       env.Seed,
		logFile:    env.LogFile,
		windowSize: 10,
	}
	flaggy.SetName("lifebox")
	flaggy.SetDescription("Conway's Game of Life sandbox")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (minimum interval between the generations) in format the number with 'ms' suffix, for example 300ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the batch simulation to maxSteps")
	flaggy.Bool(&eo.batch, "b", "batch", "Run without the interactive terminal and print the progress")
	flaggy.Bool(&eo.window, "w", "window", "Open the window instead of the terminal ui")
	flaggy.Int(&eo.windowSize, "", "cellSize", "Cell size in pixels for the window")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Int64(&eo.seed, "", "seed", "Seed for the random data")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	flaggy.String(&eo.template, "t", "template", "Settle with the template ["+strings.Join(templateNames, "|")+"]")
	flaggy.String(&eo.logFile, "l", "log", "Write the log to the file")

	flaggy.Parse()

	if !contains(engineNames, eo.engine) {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if eo.template != "" && !contains(templateNames, eo.template) {
		flaggy.ShowHelpAndExit("unknown template")
	}
	if eo.randomData && eo.seed == 0 {
		eo.seed = time.Now().UnixNano()
	}

	return
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
