package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jthomassen/roadline/internal/cli"
	"github.com/jthomassen/roadline/internal/config"
	"github.com/jthomassen/roadline/internal/controller"
	"github.com/jthomassen/roadline/internal/db"
	"github.com/jthomassen/roadline/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine catalog path: env var or default ~/.roadline/roadline.db
	dbPath := os.Getenv("ROADLINE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".roadline", "roadline.db")
	}

	// Determine config path: env var or default ~/.roadline/roadline.yml
	cfgPath := os.Getenv("ROADLINE_CONFIG")
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".roadline", "roadline.yml")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Catalog: repository.NewSQLiteDocumentCatalog(database),
		Config:  cfg,
	}

	// Mutation logging is opt-in: it writes slog lines to stderr.
	if os.Getenv("ROADLINE_LOG") != "" {
		app.Observers = append(app.Observers, controller.NewLogMutationObserver(os.Stderr))
	}

	// Detect interactive terminal; the editor refuses to run without one.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
