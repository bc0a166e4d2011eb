package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jthomassen/roadline/internal/cli/formatter"
	"github.com/jthomassen/roadline/internal/docfile"
	"github.com/jthomassen/roadline/internal/domain"
)

func newNewCmd(app *App) *cobra.Command {
	var year int
	var force bool

	cmd := &cobra.Command{
		Use:   "new FILE",
		Short: "Create an empty roadmap file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if year == 0 {
				year = app.Config.DefaultYear
			}

			doc := domain.NewDocument(year)
			if err := docfile.Save(path, doc, nil); err != nil {
				return err
			}

			if app.Catalog != nil {
				now := time.Now().UTC()
				entry := &domain.DocumentEntry{
					ID:        domain.NewID(),
					Path:      path,
					Name:      documentName(path),
					Year:      year,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := app.Catalog.Upsert(context.Background(), entry); err != nil {
					return fmt.Errorf("updating catalog: %w", err)
				}
			}

			fmt.Printf("Created %s (year %d)\n", path, year)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Roadmap year (default: configured year)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show document summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDocumentInfo(s.doc, s.path))
			return nil
		},
	}
}

func newRecentCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used roadmap files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return fmt.Errorf("no catalog configured")
			}
			if limit == 0 {
				limit = app.Config.RecentLimit
			}
			entries, err := app.Catalog.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No documents yet.")
				return nil
			}
			fmt.Print(formatter.FormatRecentList(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to show")

	return cmd
}
