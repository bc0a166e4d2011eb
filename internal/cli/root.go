// Package cli implements the roadline command tree. Plain commands follow a
// load-mutate-save cycle against a roadmap file; the interactive editor keeps
// the document in memory with full undo/redo.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jthomassen/roadline/internal/config"
	"github.com/jthomassen/roadline/internal/controller"
	"github.com/jthomassen/roadline/internal/repository"
)

// App holds the dependencies CLI commands use.
type App struct {
	Catalog repository.DocumentCatalog
	Config  *config.Config

	// Observers passed to every controller the commands build.
	Observers []controller.MutationObserver

	// IsInteractive reports whether stdin is a terminal; the editor
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "roadline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roadline",
		Short: "Roadmap timeline editor",
	}

	root.AddCommand(
		newNewCmd(app),
		newInfoCmd(app),
		newRecentCmd(app),
		newTopicCmd(app),
		newDeliverableCmd(app),
		newObjectCmd(app),
		newRenderCmd(app),
		newEditCmd(app),
	)

	return root
}
