package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/valentine/internal/applog"
	"github.com/jask/valentine/internal/config"
	"github.com/jask/valentine/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := applog.New(applog.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
	defer logger.Close()
	slog.SetDefault(logger.Logger)

	// seed a config file on first run so the knobs are discoverable
	if wrote, err := config.WriteDefault(cfg.Path, config.Defaults()); err != nil {
		logger.Warn("write default config", slog.String("path", cfg.Path), slog.Any("err", err))
	} else if wrote {
		logger.Info("wrote default config", slog.String("path", cfg.Path))
	}

	logger.Info("start",
		slog.String("config", cfg.Path),
		slog.String("placement", cfg.Evasion.Placement),
		slog.Uint64("seed", cfg.Evasion.Seed),
	)

	p := tea.NewProgram(tui.New(cfg, logger.WithComponent("tui")), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
