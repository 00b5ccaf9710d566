package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/tasklist/internal/app"
	"github.com/sandeepkv93/tasklist/internal/config"
	"github.com/sandeepkv93/tasklist/internal/storage"
	"github.com/sandeepkv93/tasklist/internal/store"
	"github.com/sandeepkv93/tasklist/internal/update"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tasklist failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(flag.CommandLine, args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer kv.Close()

	repo, err := storage.NewTaskRepository(kv)
	if err != nil {
		return err
	}
	tasks, err := store.New(repo)
	if err != nil {
		return err
	}

	ctx := context.Background()
	screen := update.NewScreen()
	ctl, err := app.NewController(tasks, repo, screen, logger)
	if err != nil {
		return err
	}
	defer ctl.Close()
	if err := ctl.Start(ctx); err != nil {
		return err
	}

	if saved, err := kv.UpdatedAt(ctx, storage.TasksKey); err == nil {
		logger.Info("starting", "db", cfg.DBPath, "last_saved", saved)
	} else {
		logger.Info("starting", "db", cfg.DBPath)
	}
	program := tea.NewProgram(update.NewModel(ctx, ctl, screen, update.RuntimeConfigFrom(cfg)), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newLogger writes to cfg.LogPath since the terminal belongs to the UI. With
// no path configured, log output is discarded.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogPath == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: level}), func() error { return nil }, nil
	}
	if dir := filepath.Dir(cfg.LogPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tasklist",
	})
	return logger, f.Close, nil
}
