// Command chessgo runs the fixed-depth alpha-beta engine in self-play:
// from the standard starting position it repeatedly searches for the
// side to move and applies the chosen move, printing each one in plain
// "from-to[promotion]" notation until the game reaches a terminal
// state. It does not parse SAN, persist games, or render a board —
// those are left to whatever wraps this engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chessgo/internal/chess"
	"chessgo/internal/chessconfig"
	"chessgo/internal/search"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "chessgo:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		depth      = flag.Int("depth", 0, "search depth in plies (clamped to 5-6); 0 uses config/default")
		workers    = flag.Int("workers", 0, "root-level worker count; 0 uses config/default")
		verbosity  = flag.String("verbosity", "", "log level: debug, info, warn, error; overrides config")
		maxMoves   = flag.Int("max-moves", 200, "stop self-play after this many plies even if unfinished")
	)
	flag.Parse()

	cfg, err := chessconfig.Load(*configPath)
	if err != nil {
		return err
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *workers > 0 {
		cfg.Search.Workers = *workers
	}
	if *verbosity != "" {
		cfg.Log.Level = *verbosity
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	board := chess.NewBoard()
	ctx := context.Background()

	for ply := 0; ply < *maxMoves; ply++ {
		side := board.SideToMove()
		legal := board.GenerateLegalMoves(side)
		if state := board.RefreshState(legal); state != chess.Unfinished {
			fmt.Println(state)
			return nil
		}
		inCheck := board.KingInCheck(side)

		result, err := search.Search(ctx, board, search.Options{
			Depth:   cfg.Search.Depth,
			Workers: cfg.Search.Workers,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("search at ply %d: %w", ply, err)
		}

		move := result.Move
		board.Apply(move)
		board.AnnotateOutcome(&move, inCheck)
		fmt.Println(move.String() + outcomeSuffix(move))
	}

	fmt.Println("move limit reached")
	return nil
}

// outcomeSuffix mimics the "+"/"#" convention without being a SAN
// formatter: it only ever looks at flags this engine already computed.
func outcomeSuffix(m chess.Move) string {
	switch {
	case m.Flags.GivesCheckMate:
		return "#"
	case m.Flags.GivesCheck:
		return "+"
	default:
		return ""
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
