// Package pagestate owns the in-memory canonical collection for one console
// page. The store lives exactly as long as the page: closing it (navigation
// away) discards any response that is still in flight. Nothing here is
// shared across pages and nothing survives the page.
package pagestate

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/console_backend/config"
)

var ErrClosed = errors.New("page store is closed")

type Store[T any] struct {
	mu      sync.Mutex
	name    string
	records []T
	loading int
	closed  bool
	fetched bool
}

func NewStore[T any](name string) *Store[T] {
	return &Store[T]{name: name}
}

// Records returns a copy of the current collection; callers filter and sort
// the copy, never the store's slice.
func (s *Store[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Loading reports whether any refetch is in flight. The page disables its
// fetch-triggering controls while true.
func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Fetched reports whether at least one refetch has completed; the page
// distinguishes "empty collection" from "never loaded".
func (s *Store[T]) Fetched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetched
}

// Close marks the page as navigated away. In-flight responses arriving
// after Close are discarded.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.records = nil
}

func (s *Store[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Refetch pulls a fresh full collection and replaces the store's contents.
// On fetch error the existing collection is left untouched. Overlapping
// refetches are allowed; whichever resolves last overwrites. That race is
// part of the single-collection-replace contract, not a bug to fix here.
func (s *Store[T]) Refetch(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.loading++
	s.mu.Unlock()

	records, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
	if err != nil {
		return err
	}
	if s.closed {
		config.GetLogger().WithFields(logrus.Fields{
			"module": "pagestate",
			"page":   s.name,
		}).Debug("discarding refetch result after close")
		return ErrClosed
	}
	s.records = records
	s.fetched = true
	return nil
}
