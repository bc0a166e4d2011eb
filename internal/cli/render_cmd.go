package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jthomassen/roadline/internal/cli/formatter"
)

func newRenderCmd(app *App) *cobra.Command {
	var weeks int

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the roadmap grid in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderTimeline(s.doc, s.layout, weeks))
			return nil
		},
	}

	cmd.Flags().IntVar(&weeks, "weeks", 0, "Weeks to draw (default: ISO weeks in the document year)")

	return cmd
}
