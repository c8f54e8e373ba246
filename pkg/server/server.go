// Package server assembles the MCP server, the session registry, and the
// liveness endpoint, and owns process startup and shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/entrhq/browsermcp/pkg/browser"
	"github.com/entrhq/browsermcp/pkg/config"
	"github.com/entrhq/browsermcp/pkg/logging"
	"github.com/entrhq/browsermcp/pkg/tools"
)

const (
	serverName    = "selenium"
	serverVersion = "0.2.0"

	// drainTimeout bounds the shutdown drain of open sessions.
	drainTimeout = 15 * time.Second
)

// Server is the assembled browsermcp process.
type Server struct {
	cfg      *config.Config
	log      *logging.Logger
	registry *browser.Registry
	mcp      *mcp.Server
}

// New wires the connector, registry, tool adapter, and MCP server together.
func New(cfg *config.Config, log *logging.Logger) *Server {
	connector := browser.NewBackendConnector(cfg.BackendURL, cfg.BackendToken, cfg.ImplicitWait)
	registry := browser.NewRegistry(connector, log)
	adapter := tools.NewAdapter(registry, cfg.RequestTimeout, log)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	tools.Register(mcpServer, adapter)
	tools.RegisterResource(mcpServer, adapter)

	return &Server{
		cfg:      cfg,
		log:      log,
		registry: registry,
		mcp:      mcpServer,
	}
}

// Registry exposes the session registry, mainly for the health endpoint.
func (s *Server) Registry() *browser.Registry {
	return s.registry
}

// Run serves tool calls until ctx is cancelled, then drains every open
// session before returning. The health endpoint runs for the whole lifetime
// of the process, independent of the tool transport.
func (s *Server) Run(ctx context.Context) error {
	healthSrv := s.startHealth()
	defer s.stopHealth(healthSrv)
	defer s.drain()

	if s.cfg.ListenAddr != "" {
		return s.runStreamableHTTP(ctx)
	}
	return s.runStdio(ctx)
}

// runStdio serves MCP over stdin/stdout.
func (s *Server) runStdio(ctx context.Context) error {
	s.log.Infof("Serving MCP over stdio, backend %s (auth: %v)", s.cfg.BackendURL, s.cfg.HasToken())

	err := s.mcp.Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runStreamableHTTP serves MCP over the streamable HTTP transport.
func (s *Server) runStreamableHTTP(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	httpSrv := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	s.log.Infof("Serving MCP over HTTP on %s, backend %s (auth: %v)", s.cfg.ListenAddr, s.cfg.BackendURL, s.cfg.HasToken())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("HTTP transport shutdown: %v", err)
		}
		return nil
	}
}

// drain closes every open session, best-effort.
func (s *Server) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := s.registry.CloseAll(ctx); err != nil {
		s.log.Warnf("Session drain finished with errors: %v", err)
	}
	s.log.Infof("Shutdown complete")
}
