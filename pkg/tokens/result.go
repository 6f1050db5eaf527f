package tokens

import (
	"context"
	"log/slog"
)

// Status tells the stylesheet builder what happened to the token request.
type Status int

const (
	StatusEmpty Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Result is the outcome of a token request. Set is nil unless Status is
// StatusLoaded. Err is kept for logging only.
type Result struct {
	Status Status
	Set    *Set
	Err    error
}

// Tokens returns the loaded set, or nil.
func (r Result) Tokens() *Set {
	if r.Status != StatusLoaded {
		return nil
	}
	return r.Set
}

// Loaded wraps an already available set.
func Loaded(set *Set) Result {
	if set.IsEmpty() {
		return Result{Status: StatusEmpty}
	}
	return Result{Status: StatusLoaded, Set: set}
}

// Fetch asks src for tokens. Failures are recorded in the result, never returned.
func Fetch(ctx context.Context, src Source) Result {
	if src == nil {
		slog.Debug("no design token source")
		return Result{Status: StatusEmpty}
	}
	set, err := src.DesignTokens(ctx)
	if err != nil {
		slog.Warn("design tokens unavailable", "error", err)
		return Result{Status: StatusFailed, Err: err}
	}
	if set.IsEmpty() {
		slog.Debug("design token source returned no tokens")
		return Result{Status: StatusEmpty}
	}
	return Result{Status: StatusLoaded, Set: set}
}
