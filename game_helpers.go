package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	defaultPattern = "blinker"
	randomPattern  = "random"

	reasonExtinction  = "extinction"
	reasonCycle       = "cycle detected"
	reasonMaxGens     = "maximum generations reached"
	reasonInterrupted = "interrupted"
)

// runResult describes how a run ended
type runResult struct {
	Generations int
	Reason      string
	Period      int
	Board       *model.Board
}

// newLogger builds the structured logger for the configured level
func newLogger(config utils.Config, w io.Writer) (*slog.Logger, error) {
	level, err := config.Level()
	if err != nil {
		return nil, errors.Wrap(err, "[newLogger] failed to parse log level")
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// loadConfig reads the config file when one is given, otherwise the defaults
func loadConfig(filename string) (utils.Config, error) {
	if filename == "" {
		return utils.DefaultConfig(), nil
	}
	return utils.LoadConfig(filename)
}

// loadBoard picks the initial board: a pattern file wins over a built-in name
func loadBoard(config utils.Config, builtin string) (*model.Board, error) {
	if config.PatternFile != "" {
		return model.LoadPattern(config.PatternFile, config.AliveRune())
	}
	if builtin == "" {
		builtin = defaultPattern
	}
	if builtin == randomPattern {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return model.Randomize(config.Width, config.Height, config.RandomDensity, rand.New(rand.NewSource(seed))), nil
	}
	board, ok := model.Builtin(builtin)
	if !ok {
		return nil, errors.Errorf("[loadBoard] unknown pattern %q, available: %v or %q", builtin, model.BuiltinNames(), randomPattern)
	}
	return board, nil
}

// advance returns the board after the given number of generations
func advance(board *model.Board, generations int) *model.Board {
	for i := 0; i < generations; i++ {
		board = board.Next()
	}
	return board
}

// checkStopConditions determines if the run should stop
func checkStopConditions(population, generation int, cycled bool, config utils.Config) string {
	if population == 0 {
		return reasonExtinction
	}
	if cycled && config.StopOnCycle {
		return reasonCycle
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return reasonMaxGens
	}
	return ""
}

// runGame renders and advances the board until a stop condition is met or ctx is done
func runGame(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	renderer *model.TerminalRenderer,
	logger *slog.Logger,
) (runResult, error) {
	var (
		stats         = utils.NewStats()
		history       = utils.NewHistory(config.HistorySize)
		lastFrameTime = time.Now()
	)

	logger.Info("starting run",
		"rows", board.Rows(),
		"population", board.Population(),
		"max_generations", config.MaxGenerations,
		"frame_rate", config.FrameRate.String())

	for generation := 0; ; generation++ {
		if ctx.Err() != nil {
			return finishRun(logger, stats, runResult{Generations: generation, Reason: reasonInterrupted, Board: board}), nil
		}

		frameStart := time.Now()
		if config.Render {
			if err := renderer.Clear(); err != nil {
				return runResult{}, err
			}
			if err := renderer.Display(board); err != nil {
				return runResult{}, err
			}
		}

		population := board.Population()
		stats.Update(generation, population, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		period, cycled := history.Observe(model.Fingerprint(board))
		logger.Debug("generation",
			"generation", generation,
			"population", population,
			"avg_population", stats.AveragePopulation)

		if reason := checkStopConditions(population, generation, cycled, config); reason != "" {
			result := runResult{Generations: generation, Reason: reason, Board: board}
			if reason == reasonCycle {
				result.Period = period
			}
			return finishRun(logger, stats, result), nil
		}

		board = board.Next()

		if config.FrameRate.Duration > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(config.FrameRate.Duration):
			}
		}
	}
}

func finishRun(logger *slog.Logger, stats *utils.Stats, result runResult) runResult {
	logger.Info("run finished",
		"reason", result.Reason,
		"generations", result.Generations,
		"period", result.Period,
		"peak_population", stats.PeakPopulation,
		"avg_population", stats.AveragePopulation,
		"runtime", stats.Runtime().String())
	return result
}

// runWithSignals runs the game until it stops or SIGINT/SIGTERM arrives
func runWithSignals(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	renderer *model.TerminalRenderer,
	logger *slog.Logger,
) (runResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		result  runResult
		eg, egc = errgroup.WithContext(ctx)
	)

	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Info("shutting down gracefully", "signal", sig.String())
			cancel()
		case <-egc.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		var err error
		result, err = runGame(egc, config, board, renderer, logger)
		return err
	})

	if err := eg.Wait(); err != nil {
		return runResult{}, errors.Wrap(err, "[runWithSignals] run failed")
	}
	return result, nil
}
