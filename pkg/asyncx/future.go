package asyncx

import (
	"sync"

	"github.com/stdx-go/stdx/pkg/vecx"
)

// ─── Future ──────────────────────────────────────────────────────────────────

// result holds the outcome of an async computation.
type result[T any] struct {
	value T
	err   error
}

// Future represents a value that will be available asynchronously.
// Create one with Run and retrieve its value with Await.
type Future[T any] struct {
	ch  chan result[T]
	res *result[T]
	mu  sync.Mutex
}

// Run executes fn in a goroutine and returns a Future for its result.
// The goroutine starts immediately.
func Run[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{ch: make(chan result[T], 1)}
	go func() {
		v, err := fn()
		f.ch <- result[T]{value: v, err: err}
	}()
	return f
}

// Await blocks until the Future completes and returns its value and error.
// Safe to call multiple times — subsequent calls return the cached result.
func (f *Future[T]) Await() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.res == nil {
		r := <-f.ch
		f.res = &r
	}
	return f.res.value, f.res.err
}

// ─── Join-All ────────────────────────────────────────────────────────────────

// AwaitAll waits for every future to settle and returns their values in
// the same order the futures were passed in, independent of the order in
// which they actually complete. The futures are already running when they
// reach AwaitAll (Run starts them eagerly), so total wait time tracks the
// slowest future rather than the sum.
//
// If any future fails, AwaitAll fails with one of the failures — but only
// after every future has settled; siblings of a failed future are never
// abandoned mid-flight. An empty input returns an empty slice without
// blocking.
func AwaitAll[T any](futures ...*Future[T]) ([]T, error) {
	values := make([]T, len(futures))
	errs := make([]error, len(futures))

	for i, f := range futures {
		values[i], errs[i] = f.Await()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// ─── First Accessors ─────────────────────────────────────────────────────────

// FirstAwait awaits a future that resolves to a slice and returns the
// slice's first element. The boolean reports whether an element existed;
// an empty resolved slice is not an error.
func FirstAwait[T any](f *Future[[]T]) (T, bool, error) {
	vs, err := f.Await()
	if err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := vecx.First(vs)
	return v, ok, nil
}

// FirstXAwait awaits a future that resolves to a slice and returns the
// slice's first element, failing with vecx's empty-collection error when
// the resolved slice has no elements.
func FirstXAwait[T any](f *Future[[]T]) (T, error) {
	vs, err := f.Await()
	if err != nil {
		var zero T
		return zero, err
	}
	return vecx.FirstX(vs)
}
