package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"advworld/pkg/engine/terminal"
	"advworld/pkg/game/devtools"
	"advworld/pkg/game/renderer"
	"advworld/pkg/game/renderer/ebiten"
	"advworld/pkg/game/renderer/tui"
	"advworld/pkg/game/replay"
	"advworld/pkg/game/session"
)

func initLocale(lang string) {
	if lang != "" {
		gotext.Configure("locales", lang, "default")
	}
}

// initLogging sends the log to a file while the terminal shows the game.
func initLogging(debug bool, path string) *os.File {
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Warnf("Cannot open log file %s: %v", path, err)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	cfg := session.DefaultConfig()
	flag.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding the adv-world_NN.screen files")
	flag.StringVar(&cfg.RiddlesPath, "riddles", "", "riddles file")
	flag.Int64Var(&cfg.Seed, "seed", 0, "riddle shuffle seed (0 = time based)")
	flag.BoolVar(&cfg.Save, "save", false, "record steps and results")
	flag.BoolVar(&cfg.Load, "load", false, "replay the recorded steps")
	flag.BoolVar(&cfg.Silent, "silent", false, "with -load: replay without drawing and compare the results")
	flag.StringVar(&cfg.StepsPath, "steps", replay.StepsFile, "steps file")
	flag.StringVar(&cfg.ResultsPath, "results", replay.ResultsFile, "results file")
	delay := flag.Int("delay", 0, "tick delay in ms (0 = 150, or 30 with -load)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log every game event")
	gui := flag.Bool("gui", false, "play in a window instead of the terminal")
	dump := flag.Bool("dump", false, "write the loaded rooms to rooms.txt and exit")
	lang := flag.String("lang", "", "locale for game text")
	logPath := flag.String("log", "adv-world.log", "log file while playing in the terminal")
	flag.Parse()

	cfg.Delay = time.Duration(*delay) * time.Millisecond
	initLocale(*lang)

	interactiveTUI := !*gui && !*dump && !(cfg.Load && cfg.Silent)
	if !interactiveTUI {
		*logPath = ""
	}
	if f := initLogging(cfg.Debug, *logPath); f != nil {
		defer f.Close()
	}

	s, err := session.New(cfg)
	if err != nil {
		log.Fatalf("Loading the game failed: %v", err)
	}

	if *dump {
		g := s.Game()
		path, err := devtools.DumpRoomsToFile(g.Rooms[1:g.FinalRoomID()])
		if err != nil {
			log.Fatalf("Dumping rooms failed: %v", err)
		}
		log.Infof("Rooms written to %s", path)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch {
	case cfg.Load && cfg.Silent:
		err = s.Run(ctx, nil)
	case *gui:
		err = runGUI(ctx, s)
	default:
		err = runTUI(ctx, s)
	}
	if err != nil && ctx.Err() == nil {
		log.Errorf("Game stopped: %v", err)
	}

	if cfg.Debug {
		if name, err := devtools.SaveScreenshotHTML(s.Frame()); err == nil {
			log.Debugf("Final frame saved to %s", name)
		}
	}
	if err := s.Finish(); err != nil {
		log.Errorf("Finishing the game failed: %v", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, s *session.Session) error {
	if !terminal.IsTerminal() {
		log.Fatal("The terminal frontend needs a terminal, use -gui or -load -silent")
	}
	if err := terminal.CheckSize(); err != nil {
		log.Fatalf("Terminal too small: %v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := tui.New()
	if err := t.Init(ctx); err != nil {
		return err
	}
	renderer.SetRenderer(t)
	defer t.Close()

	err := s.Run(ctx, t)
	renderer.Clear()
	renderer.ShowMessage(renderer.FarewellText(s.Game()))
	return err
}

// runGUI keeps Ebiten on the main goroutine and plays in a second one.
func runGUI(ctx context.Context, s *session.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e := ebiten.New()
	if err := e.Init(ctx); err != nil {
		return err
	}
	renderer.SetRenderer(e)

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, e)
		e.Close()
	}()

	if err := e.Run(); err != nil {
		return err
	}
	renderer.ShowMessage(renderer.FarewellText(s.Game()))
	// window closed: stop the session and wait for it
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
