// Package bridge serves a browser panel that talks to the plugin over a websocket.
package bridge

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mholzen/bootstrapgen/pkg/plugin"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

const DefaultAddr = "127.0.0.1:8765"

//go:embed panel.html
var panelHTML string

var panelTmpl = template.Must(template.New("panel").Parse(panelHTML))

// Config holds the bridge settings
type Config struct {
	Addr   string
	Plugin plugin.Config
	// Tokens is consulted by sessions whose panel has not pushed tokens
	Tokens tokens.Source
}

// Server routes panel pages and websocket sessions.
type Server struct {
	config   Config
	engine   *gin.Engine
	upgrader websocket.Upgrader
	sessions atomic.Int64
}

func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config: config,
		engine: gin.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.GET("/", s.handlePanel)
	s.engine.GET("/ws", s.handleWebsocket)
	s.engine.GET("/healthz", s.handleHealth)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Sessions returns the number of connected panels.
func (s *Server) Sessions() int {
	return int(s.sessions.Load())
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("bridge listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("cannot serve bridge: %w", err)
	case <-ctx.Done():
		slog.Info("shutting down bridge")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handlePanel(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := panelTmpl.Execute(c.Writer, gin.H{"Theme": c.Query("theme")}); err != nil {
		c.Error(err)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.Sessions()})
}

func (s *Server) handleWebsocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		c.Error(err)
		return
	}
	defer conn.Close()

	session := newSession(conn, s.config.Plugin, s.config.Tokens)
	s.sessions.Add(1)
	defer s.sessions.Add(-1)

	slog.Info("panel connected", "session", session.ID, "client", c.ClientIP())
	session.serve(c.Request.Context())
}
