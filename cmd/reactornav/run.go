package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/reactornav/internal/config"
	"github.com/jask/reactornav/internal/database"
	"github.com/jask/reactornav/internal/database/repository"
	"github.com/jask/reactornav/internal/prefs"
	"github.com/jask/reactornav/internal/service"
	"github.com/jask/reactornav/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Browse the catalog in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return errors.New("run needs an interactive terminal")
	}
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// the alt screen owns stdout; logs go to a file or nowhere
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "reactornav")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	store, err := prefs.Default()
	if err != nil {
		log.Printf("warn: layout will not be remembered: %v", err)
	}

	app := tui.New(ctx, cfg, tui.Services{
		Catalog: &service.CatalogService{
			Sections: repository.NewSectionRepo(db),
			Items:    repository.NewItemRepo(db),
		},
		Maintenance: &service.MaintenanceService{DB: db},
		Prefs:       store,
	}, nil)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
