package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// game owns the grid for the lifetime of the tick loop; nothing else touches it
type game struct {
	config   utils.Config
	grid     *model.Grid
	history  *model.History
	rng      model.IntnSource
	renderer model.Renderer
	stats    *utils.Stats

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastEvent      string
}

// newGame sets up the initial game state
func newGame(config utils.Config, renderer model.Renderer) *game {
	g := &game{
		config:   config,
		grid:     model.NewGrid(config.Size, model.WithBufferPool(model.NewBufferPool())),
		history:  model.NewHistory(model.DefaultHistoryDepth),
		rng:      model.NewRand(config.Seed),
		renderer: renderer,
		stats:    utils.NewStats(),
	}
	g.seed()
	return g
}

// seed places the fixed patterns, then the configured number of random cells
func (g *game) seed() {
	if g.config.Patterns {
		size := g.grid.Size()
		model.AddGlider(g.grid, model.NewPosition(1, 1))
		if size >= 10 {
			model.AddBlinker(g.grid, model.NewPosition(size/2-1, size/2))
		}
		if size >= 30 {
			model.AddBlinker(g.grid, model.NewPosition(3*size/4, 3*size/4))
		}
	}
	model.SeedRandom(g.grid, g.rng, g.config.InitialLiveCells)
}

// tick renders the current generation, then advances it. A restart takes the
// place of the advance so the fresh seed is what the next tick draws.
// It reports true once the configured generation limit has been displayed.
// frameDuration is the time since the previous tick, 0 on the first one.
func (g *game) tick(frameDuration time.Duration) (bool, error) {
	livingCells := g.grid.CountLivingCells()
	g.stats.Update(g.generation, livingCells, frameDuration)

	if g.history.Observe(g.grid) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	if err := g.renderer.Display(g.grid, g.statusText(livingCells)); err != nil {
		return false, err
	}

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		return true, nil
	}

	shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.config)
	switch {
	case shouldRestart && g.config.AutoRestart:
		g.restart(reason)
	case g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold:
		// Inject some life to try to break the stagnation
		g.injectLife()
		g.grid.Advance()
	default:
		g.grid.Advance()
	}

	g.generation++
	return false, nil
}

// statusText shows the current game status
func (g *game) statusText(livingCells int) string {
	size := g.grid.Size()
	density := float64(livingCells) / float64(size*size) * 100

	status := "Active"
	if g.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	text := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, livingCells, density, status)
	text += fmt.Sprintf("FPS: %.1f | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d",
		g.stats.FramesPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	if g.lastEvent != "" {
		text += " | " + g.lastEvent
	}
	return text
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// injectLife adds InjectionCount random live cells to the current generation
func (g *game) injectLife() {
	if g.config.InjectionCount == 0 {
		return
	}
	model.SeedRandom(g.grid, g.rng, g.config.InjectionCount)
	g.lastEvent = fmt.Sprintf("injected %d cells at gen %d", g.config.InjectionCount, g.generation)
}

// restart handles the game restart logic
func (g *game) restart(reason string) {
	g.grid.Clear()
	g.seed()
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.stats.Restarts++
	g.lastEvent = fmt.Sprintf("restarted at gen %d due to %s", g.generation, reason)
}

// summary is printed once the terminal has been released
func (g *game) summary() string {
	return fmt.Sprintf("Final stats: %d generations in %.1f seconds (%d since last restart, %d restarts)\nAverage: %.1f gen/sec, %.1f avg population",
		g.generation, g.stats.Runtime().Seconds(), g.generation-g.lastRestartGen, g.stats.Restarts,
		g.stats.GenerationsPerSecond(), g.stats.AveragePopulation)
}
