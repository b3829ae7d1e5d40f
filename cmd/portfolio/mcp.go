package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lucasaraujonrt/portfolio/internal/mcpserver"
)

func newMCPCmd(flags *rootFlags) *cobra.Command {
	var transport, addr string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the content as MCP tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// stdout belongs to the stdio transport
			app, err := newAppContext(ctx, flags, os.Stderr, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if app.syncer != nil {
				go app.syncer.Run(ctx, app.cfg.Syndication.Interval)
			}

			srv := mcpserver.New(&mcpserver.Tools{Content: app.content, Posts: app.posts}, version)
			return mcpserver.Serve(ctx, srv, transport, addr, app.log)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", mcpserver.TransportStdio, "Transport: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", ":8090", "Listen address for the http transport")

	return cmd
}
