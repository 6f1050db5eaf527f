package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/mholzen/bootstrapgen/pkg/plugin"
	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

// EventTokens replaces the session's design tokens.
const EventTokens = "tokens"

const writeTimeout = 10 * time.Second

// frame is an inbound websocket message. Selection and Tokens are optional on
// every event type.
type frame struct {
	Type      string          `json:"type"`
	Theme     string          `json:"theme,omitempty"`
	Selection json.RawMessage `json:"selection,omitempty"`
	Tokens    *tokens.Set     `json:"tokens,omitempty"`
}

// Session is one connected panel. It is the plugin's host, holding the
// selection and tokens the panel pushed, and its sender.
type Session struct {
	ID string

	conn     *websocket.Conn
	fallback tokens.Source
	plugin   *plugin.Plugin

	writeMu sync.Mutex

	mu        sync.Mutex
	selection []*shape.Shape
	set       *tokens.Set
	hasTokens bool

	pending sync.WaitGroup
}

func newSession(conn *websocket.Conn, cfg plugin.Config, fallback tokens.Source) *Session {
	s := &Session{
		ID:       ulid.Make().String(),
		conn:     conn,
		fallback: fallback,
	}
	s.plugin = plugin.New(s, s, cfg)
	return s
}

func (s *Session) Selection(context.Context) ([]*shape.Shape, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*shape.Shape(nil), s.selection...), nil
}

// DesignTokens returns the tokens pushed by the panel, or asks the fallback
// source when the panel never sent any.
func (s *Session) DesignTokens(ctx context.Context) (*tokens.Set, error) {
	s.mu.Lock()
	set, ok := s.set, s.hasTokens
	s.mu.Unlock()
	if ok {
		return set, nil
	}
	if s.fallback == nil {
		return nil, nil
	}
	return s.fallback.DesignTokens(ctx)
}

func (s *Session) Send(ctx context.Context, msg plugin.Message) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("cannot set write deadline: %w", err)
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("cannot send %s message: %w", msg.Type, err)
	}
	return nil
}

// serve reads frames until the connection closes, then waits for in-flight
// requests.
func (s *Session) serve(ctx context.Context) {
	defer s.pending.Wait()

	for {
		var f frame
		if err := s.conn.ReadJSON(&f); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || errors.Is(err, context.Canceled) {
				slog.Debug("panel disconnected", "session", s.ID)
			} else {
				slog.Info("panel connection ended", "session", s.ID, "error", err)
			}
			return
		}
		s.handle(ctx, f)
	}
}

func (s *Session) handle(ctx context.Context, f frame) {
	if len(f.Selection) > 0 {
		if err := s.setSelection(f.Selection); err != nil {
			slog.Warn("ignoring selection", "session", s.ID, "error", err)
		}
	}
	if f.Tokens != nil {
		s.setTokens(f.Tokens)
	}
	if f.Type == EventTokens {
		return
	}

	reqCtx := plugin.WithRequestID(ctx, ulid.Make().String())
	slog.Debug("panel event", "session", s.ID, "type", f.Type, "request", plugin.RequestID(reqCtx))

	ev := plugin.Event{Type: f.Type, Theme: f.Theme}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.plugin.HandleEvent(reqCtx, ev); err != nil {
			slog.Warn("cannot answer panel", "session", s.ID, "type", ev.Type, "error", err)
		}
	}()
}

func (s *Session) setSelection(raw json.RawMessage) error {
	selection, err := shape.DecodeSelection(strings.NewReader(string(raw)))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.selection = selection
	s.mu.Unlock()
	return nil
}

func (s *Session) setTokens(set *tokens.Set) {
	s.mu.Lock()
	s.set = set
	s.hasTokens = true
	s.mu.Unlock()
}
