package mcp

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for discreta.
type Server struct {
	ports   *Ports
	server  *mcp.Server
	limiter *rate.Limiter
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "discreta",
		Version: Version,
	}

	mcpSettings := domain.DefaultAppSettings().MCP
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			mcpSettings = settings.MCP
		} else {
			logger.Warn("Using default MCP rate limit: %v", err)
		}
	}

	s := &Server{
		ports:   ports,
		server:  mcp.NewServer(impl, nil),
		limiter: rate.NewLimiter(rate.Limit(mcpSettings.RatePerSecond), mcpSettings.Burst),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// SetRateLimit changes the HTTP request budget of a running server.
func (s *Server) SetRateLimit(perSecond float64, burst int) {
	s.limiter.SetLimit(rate.Limit(perSecond))
	s.limiter.SetBurst(burst)
	logger.Debug("MCP rate limit set to %.2f/s, burst %d", perSecond, burst)
}

// RateLimit returns the current HTTP request rate and burst.
func (s *Server) RateLimit() (float64, int) {
	return float64(s.limiter.Limit()), s.limiter.Burst()
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler behind the rate limiter.
func (s *Server) Handler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
	return rateLimit(s.limiter, handler)
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// rateLimit rejects requests with 429 once the token bucket is empty.
func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			retry := 1
			if limit := float64(limiter.Limit()); limit > 0 {
				retry = int(math.Ceil(1 / limit))
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			logger.Debug("MCP request from %s rejected by rate limiter", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}
