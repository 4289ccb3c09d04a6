// Package ui implements the eventcal command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nikhitha35/eventcal/internal/config"
	"github.com/Nikhitha35/eventcal/internal/schedule"
	"github.com/Nikhitha35/eventcal/internal/store"
	"github.com/Nikhitha35/eventcal/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  *store.Store
	config *config.Config
	root   *cobra.Command
	yes    bool // Answer yes to every confirmation prompt
}

// NewApp creates a new CLI application with the given store and config.
func NewApp(st *store.Store, cfg *config.Config) *App {
	a := &App{store: st, config: cfg}

	a.root = &cobra.Command{
		Use:   "eventcal",
		Short: "A personal calendar in your terminal",
		Long: `Eventcal is a personal calendar that lives in your terminal.

It keeps one-off and recurring events, warns you when two events land
on the same time slot, and renders a navigable month view.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.store, a.config)
		},
	}

	a.root.PersistentFlags().BoolVarP(&a.yes, "yes", "y", false, "Answer yes to every confirmation prompt")

	var noColor bool
	a.root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	a.root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if noColor {
			DisableColor()
		}
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

// decider answers confirmation prompts. With --yes every prompt is
// auto-confirmed, otherwise the user is asked on the terminal.
func (a *App) decider() schedule.Decider {
	if a.yes {
		return schedule.AlwaysConfirm
	}
	return schedule.DeciderFunc(promptYesNo)
}

func (a *App) controller() *schedule.Controller {
	return schedule.NewController(a.store, a.decider())
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("eventcal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
