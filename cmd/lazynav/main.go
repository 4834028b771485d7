package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/espen/lazynav/internal/app"
	"github.com/espen/lazynav/internal/config"
	"github.com/espen/lazynav/internal/logging"
	"github.com/espen/lazynav/internal/nav"
	"github.com/espen/lazynav/internal/screens"
	"github.com/espen/lazynav/internal/ui/styles"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to config file (default ~/.config/lazynav/config.yaml)")
	start := flags.String("start", "", "route to open on top of home")
	logFile := flags.String("log-file", "", "write debug logs to this file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *start != "" {
		cfg.StartRoute = *start
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	styles.SetAccent(cfg.UI.AccentColor)

	// Check the navigation graph before anything is drawn
	reg, err := screens.NewRegistry()
	if err != nil {
		return fmt.Errorf("navigation graph: %w", err)
	}
	startRoute := nav.ParseRoute(cfg.StartRoute)
	if err := reg.Validate(startRoute); err != nil {
		return fmt.Errorf("navigation graph: %w", err)
	}

	ctrl, err := nav.NewController(reg, startRoute, logger)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting", "start_route", startRoute, "config", *configPath)

	// Run the TUI
	p := tea.NewProgram(
		app.New(ctrl, app.Options{
			ShowBreadcrumbs: cfg.UI.ShowBreadcrumbs,
			Logger:          logger,
		}),
		opts...,
	)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}
