// Package guard fronts storage repositories with a circuit breaker. While
// the breaker is open every call fails fast with resilience.ErrCircuitOpen.
package guard

import (
	"context"
	"errors"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/club"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
	"github.com/difaziotennis-rgb/Ladder/internal/platform/resilience"
)

// IsStorageFailure counts everything except caller cancellation and
// domain conflicts against the breaker.
func IsStorageFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, club.ErrSlugTaken), errors.Is(err, player.ErrEmailTaken):
		return false
	default:
		return true
	}
}

func run(b *resilience.CircuitBreaker, fn func() error) error {
	return b.Execute(fn)
}

func get[T any](b *resilience.CircuitBreaker, fn func() (T, error)) (T, error) {
	var out T
	err := b.Execute(func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

func lookup[T any](b *resilience.CircuitBreaker, fn func() (T, bool, error)) (T, bool, error) {
	var (
		out    T
		exists bool
	)
	err := b.Execute(func() error {
		var err error
		out, exists, err = fn()
		return err
	})
	return out, exists, err
}
