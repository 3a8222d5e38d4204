package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"funhub/internal/config"
	"funhub/internal/memory"
	"funhub/internal/sched"
	"funhub/internal/scoring"
	"funhub/internal/ui"
)

var (
	verbose    bool
	seedFlag   int64
	difficulty string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "funhub",
	Short: "Fun Games Hub - a collection of terminal mini-games",
	Long: `Fun Games Hub bundles five mini-games behind a shared menu:
the memory matching game, a dice roller, rock-paper-scissors,
number guessing and tic-tac-toe.

Run without arguments to open the menu.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHub("")
	},
}

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Jump straight into the memory matching game",
	Long: `Opens the memory matching game, skipping the hub menu.
With --difficulty a round starts immediately; otherwise the
difficulty picker is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHub(difficulty)
	},
}

// initLogger builds a file-backed zap logger. The terminal belongs to the
// UI, so stdout is never a log sink; without a log path and --verbose the
// logger stays a nop.
func initLogger() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logPath := cfg.LogPath
	if logPath == "" {
		if !verbose {
			return nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home directory: %w", err)
		}
		logPath = filepath.Join(homeDir, ".config", "funhub", "debug.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{logPath}
	zapCfg.ErrorOutputPaths = []string{logPath}
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runHub(startDifficulty string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	seed := seedFlag
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var store scoring.Store
	if cfg.ScoresPath != "" {
		store = scoring.NewJSONFileStoreAt(cfg.ScoresPath)
	} else {
		fileStore, err := scoring.NewJSONFileStore()
		if err != nil {
			return fmt.Errorf("failed to create score storage: %w", err)
		}
		store = fileStore
	}
	best := scoring.LoadBest(store)

	toasts := ui.NewToasts()
	scheduler := sched.New(nil, nil)
	round := memory.NewRound(scheduler, best, toasts, rng, nil)
	app := ui.NewApp(round, rng, toasts)

	if startDifficulty != "" {
		d, err := memory.ParseDifficulty(startDifficulty)
		if err != nil {
			return err
		}
		if err := round.Start(d); err != nil {
			return err
		}
		app.OpenMemory()
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	// Timer callbacks must mutate game state on the UI loop only.
	scheduler.SetDispatch(func(fn func()) {
		p.Send(ui.ApplyMsg{Fn: fn})
	})

	logger.Debug("starting hub", zap.Int64("seed", seed))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to the log file")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "fix the RNG seed (0 seeds from the current time)")
	memoryCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "start a round immediately (easy, medium or hard)")
	rootCmd.AddCommand(memoryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
