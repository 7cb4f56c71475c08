package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/younisrahman/appheader/pkg/config"
	"github.com/younisrahman/appheader/pkg/ui"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full-screen header demo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg := config.FromContext(ctx)
		if cfg == nil {
			return config.ErrNilConfig
		}

		// Bubble Tea uses Termenv default output so we have to use the same
		// thing here.
		c := common.NewCommon(ctx, lipgloss.DefaultRenderer(), 0, 0)
		if cfg.UI.FPS > 0 {
			c.FPS = cfg.UI.FPS
		}

		opts := []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		}
		if cfg.UI.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		p := tea.NewProgram(ui.New(c, cfg), opts...)
		_, err := p.Run()
		return err
	},
}
