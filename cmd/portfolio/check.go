package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config and the stored content",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newAppContext(ctx, flags, io.Discard, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.content.Check(ctx); err != nil {
				return fmt.Errorf("content is invalid:\n%w", err)
			}

			c, err := app.content.Content(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d projects, %d work entries, %d posts, %d social links\n",
				len(c.Projects), len(c.Work), len(c.Posts), len(c.SocialLinks))
			return nil
		},
	}
}
