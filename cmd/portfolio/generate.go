package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasaraujonrt/portfolio/internal/export"
	"github.com/lucasaraujonrt/portfolio/internal/views"
)

type generateFlags struct {
	commit  bool
	message string
	baseURL string
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	gf := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate <output-dir>",
		Short: "Export the site as static files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outputDir := args[0]

			app, err := newAppContext(ctx, flags, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.checkContent(ctx); err != nil {
				return err
			}

			// syndicated posts are a snapshot of the feeds at export time
			if app.syncer != nil {
				if err := app.syncer.Refresh(ctx); err != nil {
					app.log.Warn("some feeds could not be fetched; exporting without them")
				}
			}

			renderer, err := views.New(app.cfg.Theme.Theme(), views.Options{})
			if err != nil {
				return err
			}

			baseURL := gf.baseURL
			if baseURL == "" {
				baseURL = app.cfg.Server.BaseURL
			}

			files, err := export.NewExporter(app.content, app.posts, renderer, baseURL, app.log).Export(ctx, outputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(files), outputDir)

			if !gf.commit {
				return nil
			}

			profile, err := app.content.Profile(ctx)
			if err != nil {
				return err
			}
			hash, err := export.Commit(outputDir, gf.message, export.Author{Name: profile.Name, Email: profile.Email}, time.Now())
			if errors.Is(err, export.ErrNothingToCommit) {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed since the last export")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Committed %s\n", hash.String()[:7])
			return nil
		},
	}

	cmd.Flags().BoolVar(&gf.commit, "commit", false, "Commit the export to a git repository in the output directory")
	cmd.Flags().StringVarP(&gf.message, "message", "m", "Update site", "Commit message")
	cmd.Flags().StringVar(&gf.baseURL, "base-url", "", "Absolute site URL used in feed.xml (overrides server.base_url)")

	return cmd
}
