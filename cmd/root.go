package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gucli/gucli/internal/config"
	"github.com/gucli/gucli/internal/executor"
	"github.com/gucli/gucli/internal/notify"
	"github.com/gucli/gucli/internal/registry"
	"github.com/gucli/gucli/internal/ringlog"
)

var rootCmd = &cobra.Command{
	Use:   "gucli",
	Short: "gucli runs your saved shell commands under a hard timeout",
	Long:  "gucli keeps a user-curated list of shell invocations, runs any of them with a wall-clock budget, and records every run in a bounded log",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gucli: run 'gucli --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Factories swapped by tests to inject fakes.
var (
	execFactory = func(cfg config.Config) executor.Runner {
		return executor.New(cfg)
	}
	notifierFactory = func() notify.Notifier {
		return notify.NotifySend{}
	}
)

// app bundles the components every command needs: configuration resolved
// once, the shared ring log with its logger, the registry store, and the
// executor behind the Runner interface.
type app struct {
	cfg        config.Config
	log        *ringlog.Log
	logger     *zap.Logger
	store      *registry.Store
	runner     executor.Runner
	dispatcher *notify.Dispatcher
}

// newApp wires the application. It also makes sure a command document
// exists, so a fresh install starts from the built-in default.
func newApp() (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	log, err := ringlog.Open(cfg.LogPath, cfg.LogCap)
	if err != nil {
		return nil, err
	}
	logger := ringlog.NewLogger(log)
	store := registry.NewStore(cfg.CommandsPath)
	if err := store.Reset(false); err != nil {
		return nil, fmt.Errorf("init command document: %w", err)
	}
	return &app{
		cfg:        cfg,
		log:        log,
		logger:     logger,
		store:      store,
		runner:     execFactory(cfg),
		dispatcher: notify.NewDispatcher(notifierFactory(), logger),
	}, nil
}

// loadSet loads and validates the command set. A load failure is fatal to
// the calling command: without a valid set there is no safe default.
func (a *app) loadSet() (registry.CommandSet, error) {
	set, err := a.store.Load()
	if err != nil {
		a.logger.Error(fmt.Sprintf("Failed to load commands: %v", err))
		return nil, err
	}
	return set, nil
}
