package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// SearchFunc issues the remote query for one entity kind.
type SearchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// Lookup turns free-text keystrokes into the latest candidate set for one
// entity kind. Input is debounced: a query arriving within the quiet window
// restarts the pending timer instead of queuing another request. Each issued
// request is tagged with a generation token; only the response matching the
// most recently issued generation may update the candidate set, so a slow
// earlier response can never overwrite a faster later one.
type Lookup[T any] struct {
	name     string
	search   SearchFunc[T]
	window   time.Duration
	minChars int

	mu         sync.Mutex
	timer      *time.Timer
	gen        uint64
	candidates []T

	updates chan struct{}
}

// NewLookup creates a lookup for one entity kind. name is used for log prefixes.
func NewLookup[T any](name string, search SearchFunc[T], window time.Duration, minChars int) *Lookup[T] {
	if minChars < 1 {
		minChars = 1
	}
	return &Lookup[T]{
		name:     name,
		search:   search,
		window:   window,
		minChars: minChars,
		updates:  make(chan struct{}, 1),
	}
}

// SetQuery records the operator's current input. Queries shorter than the
// minimum length never reach the backend and clear the candidate set; anything
// longer schedules a search after the quiet window, superseding any pending or
// in-flight request.
func (l *Lookup[T]) SetQuery(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}

	if utf8.RuneCountInString(query) < l.minChars {
		l.gen++ // supersede anything still in flight
		l.candidates = nil
		l.mu.Unlock()
		l.signal()
		return
	}

	l.timer = time.AfterFunc(l.window, func() {
		l.issue(ctx, query)
	})
	l.mu.Unlock()
}

// issue fires the remote search for query under a fresh generation token.
func (l *Lookup[T]) issue(ctx context.Context, query string) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	results, err := l.search(ctx, query)
	if err != nil {
		// The previous candidate set stays authoritative on failure.
		log.Printf("[lookup] %s search %q failed: %v", l.name, query, err)
		return
	}

	l.mu.Lock()
	if gen != l.gen {
		// A newer query was issued while this one was in flight.
		l.mu.Unlock()
		return
	}
	l.candidates = results
	l.mu.Unlock()
	l.signal()
}

// Candidates returns a copy of the latest candidate set
func (l *Lookup[T]) Candidates() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.candidates))
	copy(out, l.candidates)
	return out
}

// Updates signals (coalesced) whenever the candidate set changes. Discarded
// stale responses and failed searches do not signal.
func (l *Lookup[T]) Updates() <-chan struct{} {
	return l.updates
}

func (l *Lookup[T]) signal() {
	select {
	case l.updates <- struct{}{}:
	default:
	}
}
