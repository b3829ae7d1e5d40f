package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lucasaraujonrt/portfolio/internal/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("tui needs an interactive terminal")
			}

			ctx := cmd.Context()
			// log lines would corrupt the screen
			app, err := newAppContext(ctx, flags, io.Discard, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			c, err := app.content.Content(ctx)
			if err != nil {
				return err
			}

			m, err := tui.NewModel(c, app.cfg.Theme.Theme())
			if err != nil {
				return err
			}

			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("failed to run tui: %w", err)
			}
			return nil
		},
	}
}
