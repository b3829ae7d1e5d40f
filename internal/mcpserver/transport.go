package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lucasaraujonrt/portfolio/internal/logger"
)

// Transport names accepted by Serve
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Serve runs srv until ctx is cancelled. addr is only used by the HTTP transport.
func Serve(ctx context.Context, srv *mcp.Server, transport, addr string, log *logger.Logger) error {
	switch transport {
	case TransportStdio:
		log.Info("MCP server starting (stdio)")
		return srv.Run(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return serveHTTP(ctx, srv, addr, log)
	}
	return fmt.Errorf("unknown transport %q (use %s or %s)", transport, TransportStdio, TransportHTTP)
}

// Handler serves srv over streamable HTTP
func Handler(srv *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return srv
	}, nil)
}

func serveHTTP(ctx context.Context, srv *mcp.Server, addr string, log *logger.Logger) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           Handler(srv),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": addr}).Info("MCP server listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
