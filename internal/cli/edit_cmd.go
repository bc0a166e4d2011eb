package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit a roadmap interactively (undo/redo, forms)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("edit requires an interactive terminal")
			}
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}

			m := newEditorModel(s)
			p := tea.NewProgram(m, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}

			if em, ok := final.(editorModel); ok && em.dirty {
				if err := s.save(context.Background()); err != nil {
					return err
				}
				fmt.Printf("Saved %s\n", s.path)
			}
			return nil
		},
	}
}
