package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"cropcast/logger"
)

// Fetch loads the list for one scope key (a farm id or a user id).
type Fetch[T any] func(ctx context.Context, scope string) ([]T, error)

type ListState[T any] struct {
	Scope   string
	Items   []T
	Loading bool
	Err     error
}

// ListLoader keeps one list scoped to a key and re-fetches when the key
// changes. Results for a superseded scope never reach State.
type ListLoader[T any] struct {
	fetch Fetch[T]

	mu      sync.Mutex
	scope   string
	gen     uint64
	items   []T
	loading bool
	err     error
	cancel  context.CancelFunc
	pending int // fetch goroutines not yet returned
	idle    *sync.Cond

	subs listeners[ListState[T]]
}

func NewListLoader[T any](fetch Fetch[T]) *ListLoader[T] {
	l := &ListLoader[T]{fetch: fetch}
	l.idle = sync.NewCond(&l.mu)
	return l
}

// SetScope discards the current list and starts a background fetch for key.
// An empty key leaves the list empty without fetching. Setting the current
// key again is a no-op; use Reload to force a fetch.
func (l *ListLoader[T]) SetScope(ctx context.Context, key string) {
	l.mu.Lock()
	if key == l.scope {
		l.mu.Unlock()
		return
	}
	l.scope = key
	l.items = nil
	l.err = nil
	l.start(ctx)
	l.mu.Unlock()
	l.notify()
}

// Reload re-fetches the current scope, keeping the shown items until the
// fetch lands.
func (l *ListLoader[T]) Reload(ctx context.Context) {
	l.mu.Lock()
	l.err = nil
	l.start(ctx)
	l.mu.Unlock()
	l.notify()
}

// Mutate runs cmd and, when it succeeds, re-fetches the list.
func (l *ListLoader[T]) Mutate(ctx context.Context, cmd func(context.Context) error) error {
	if err := cmd(ctx); err != nil {
		return err
	}
	l.Reload(ctx)
	return nil
}

// start must be called with l.mu held.
func (l *ListLoader[T]) start(ctx context.Context) {
	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.scope == "" {
		l.loading = false
		return
	}

	gen, scope := l.gen, l.scope
	fctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.loading = true

	l.pending++
	go func() {
		defer l.done()
		defer cancel()
		items, err := l.fetch(fctx, scope)

		l.mu.Lock()
		if gen != l.gen {
			l.mu.Unlock()
			return
		}
		l.loading = false
		l.cancel = nil
		if err != nil {
			l.err = err
			logger.Warn("load list", zap.String("scope", scope), zap.Error(err))
		} else {
			l.items = items
		}
		l.mu.Unlock()
		l.notify()
	}()
}

func (l *ListLoader[T]) done() {
	l.mu.Lock()
	l.pending--
	if l.pending == 0 {
		l.idle.Broadcast()
	}
	l.mu.Unlock()
}

// Wait blocks until no fetch is outstanding. It is safe to call while other
// goroutines change the scope; fetches started after it returns are not awaited.
func (l *ListLoader[T]) Wait() {
	l.mu.Lock()
	for l.pending > 0 {
		l.idle.Wait()
	}
	l.mu.Unlock()
}

func (l *ListLoader[T]) State() ListState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ListState[T]{
		Scope:   l.scope,
		Items:   append([]T(nil), l.items...),
		Loading: l.loading,
		Err:     l.err,
	}
}

func (l *ListLoader[T]) Subscribe(fn func(ListState[T])) (cancel func()) {
	return l.subs.add(fn)
}

func (l *ListLoader[T]) notify() { l.subs.emit(l.State()) }
