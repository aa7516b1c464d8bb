// Package provider runs a call against an ordered list of interchangeable
// providers and returns the first success.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/voice-notes/internal/errs"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

var (
	// ErrExhausted is returned when every available provider failed.
	ErrExhausted = errors.New("all providers failed")
	// ErrNoneAvailable is returned when no provider in the list is configured.
	ErrNoneAvailable = errors.New("no provider configured")
	// ErrEmptyResponse marks a call that succeeded but produced nothing usable.
	ErrEmptyResponse = errors.New("empty response")
)

// Provider is an external service selected from an ordered preference list.
type Provider interface {
	Name() string
	// Available reports whether the provider has the credentials it needs.
	// Unavailable providers are skipped without counting as a failure.
	Available() bool
}

// Attempt records what happened to one provider in the chain.
type Attempt struct {
	Provider string
	Skipped  bool
	Err      error
}

// Outcome is the result of a successful chain run.
type Outcome[R any] struct {
	Value    R
	Provider string
	// Index is the position of the winning provider in the list.
	Index    int
	Attempts []Attempt
}

// Fallback reports whether the winner was reached only after another
// provider failed. Skipped providers do not count.
func (o Outcome[R]) Fallback() bool {
	for _, a := range o.Attempts {
		if a.Err != nil {
			return true
		}
	}
	return false
}

// First calls fn for each available provider in order and returns the first
// result without error. Context cancellation stops the chain immediately.
func First[P Provider, R any](ctx context.Context, log logger.Logger, kind string, providers []P, fn func(ctx context.Context, p P) (R, error)) (Outcome[R], error) {
	var (
		out    Outcome[R]
		failed []error
		tried  int
	)

	for i, p := range providers {
		if !p.Available() {
			log.Debug(ctx, "Skipping %s provider %s: not configured", kind, p.Name())
			out.Attempts = append(out.Attempts, Attempt{Provider: p.Name(), Skipped: true})
			continue
		}

		tried++
		log.Info(ctx, "Trying %s provider %s", kind, p.Name())

		value, err := fn(ctx, p)
		if err == nil {
			out.Value = value
			out.Provider = p.Name()
			out.Index = i
			out.Attempts = append(out.Attempts, Attempt{Provider: p.Name()})
			return out, nil
		}

		out.Attempts = append(out.Attempts, Attempt{Provider: p.Name(), Err: err})
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, ctxErr
		}

		log.Warn(ctx, "%s provider %s failed: %v", kind, p.Name(), err)
		failed = append(failed, fmt.Errorf("%s: %w", p.Name(), err))
	}

	if tried == 0 {
		return out, fmt.Errorf("%w: %w: %s", errs.ErrProvider, ErrNoneAvailable, kind)
	}
	return out, fmt.Errorf("%w: %w: %s: %w", errs.ErrProvider, ErrExhausted, kind, errors.Join(failed...))
}
