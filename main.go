package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

var (
	// errQuit ends the run when the user asks to leave
	errQuit = errors.New("quit requested")
	// errFinished ends the run when the generation limit is reached
	errFinished = errors.New("generation limit reached")
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON or YAML configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if the file is missing or invalid
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gol: %v\n", err)
		os.Exit(1)
	}
}

// run plays the game until the context is cancelled, the user quits or the
// generation limit is reached.
func run(ctx context.Context, config utils.Config, out io.Writer) error {
	if config.Renderer == utils.RendererText {
		g := newGame(config, &model.TextRenderer{Out: out, ClearScreen: true})
		err := tickLoop(ctx, g)
		fmt.Fprintln(out, g.summary())
		return ignoreShutdown(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialize screen")
	}

	g := newGame(config, model.NewScreenRenderer(screen))
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return tickLoop(ctx, g)
	})
	eg.Go(func() error {
		return pollInput(ctx, screen)
	})
	eg.Go(func() error {
		return wakePoller(ctx, screen)
	})
	err = eg.Wait()

	screen.Fini()
	fmt.Fprintln(out, g.summary())
	return ignoreShutdown(err)
}

// tickLoop is the only goroutine touching the grid
func tickLoop(ctx context.Context, g *game) error {
	var lastFrameTime time.Time
	for {
		frameStart := time.Now()
		var frameDuration time.Duration
		if !lastFrameTime.IsZero() {
			frameDuration = frameStart.Sub(lastFrameTime)
		}
		done, err := g.tick(frameDuration)
		if err != nil {
			return err
		}
		if done {
			return errFinished
		}
		lastFrameTime = frameStart

		// Wait before next frame
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.config.FrameRate.Std()):
		}
	}
}

// wakePoller unblocks PollEvent once the run is over. A full event queue
// already guarantees PollEvent returns, so ErrEventQFull is not a failure.
func wakePoller(ctx context.Context, screen tcell.Screen) error {
	<-ctx.Done()
	if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil && !errors.Is(err, tcell.ErrEventQFull) {
		return errors.Wrap(err, "[wakePoller] failed to post interrupt")
	}
	return nil
}

// pollInput turns Esc, q and Ctrl+C into errQuit and keeps the screen in
// sync with terminal resizes.
func pollInput(ctx context.Context, screen tcell.Screen) error {
	for {
		ev := screen.PollEvent()
		if ctx.Err() != nil {
			return nil
		}
		switch ev := ev.(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return errQuit
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// ignoreShutdown treats every orderly way of ending the run as success
func ignoreShutdown(err error) error {
	switch {
	case err == nil,
		errors.Is(err, errQuit),
		errors.Is(err, errFinished),
		errors.Is(err, context.Canceled):
		return nil
	}
	return err
}
