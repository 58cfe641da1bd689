// Package asyncx provides concurrency primitives and batch-execution
// utilities for working with independent asynchronous computations.
//
// The heart of the package is the ordered batch pattern: launch every
// computation of a batch before awaiting any of them, wait for all of
// them to settle, and hand results back in input order regardless of
// completion order. Awaiting one at a time in a loop serializes I/O
// latency; batching collapses total wait time to roughly the slowest
// single computation.
//
// # Futures
//
// A [Future] represents a value that will be computed asynchronously.
// Use [Run] to start work immediately in a goroutine and [Future.Await]
// to block until the result is ready. Await is safe to call from
// multiple goroutines and caches the result after the first resolution.
//
//	fut := asyncx.Run(func() (*User, error) {
//	    return repo.GetByID(ctx, id)
//	})
//
//	// ... do other work ...
//
//	user, err := fut.Await()
//
// [AwaitAll] joins a whole batch of futures: it blocks until every
// future has settled and returns their values in the order the futures
// were passed. If any future failed, AwaitAll reports one of the
// failures — after all siblings have settled; it never abandons or
// cancels in-flight work.
//
//	a := asyncx.Run(fetchA)
//	b := asyncx.Run(fetchB)
//	c := asyncx.Run(fetchC)
//	vals, err := asyncx.AwaitAll(a, b, c)
//
// [FirstAwait] and [FirstXAwait] await a future resolving to a slice and
// return its first element; FirstAwait signals an empty slice with a
// boolean, FirstXAwait fails with vecx's empty-collection error.
//
// # Batch Helpers
//
// [All] is the function-taking variant of AwaitAll: it runs a set of
// functions concurrently and collects every result in the original
// order. It returns an error if any function failed but still waits for
// all goroutines to finish, preventing goroutine leaks.
//
//	results, err := asyncx.All(ctx,
//	    func(ctx context.Context) (*Candidate, error) { return candidateRepo.GetByID(ctx, cID) },
//	    func(ctx context.Context) (*Job, error)       { return jobRepo.GetByID(ctx, jID) },
//	)
//
// [AllSettled] behaves like [All] but never short-circuits. It always
// returns one [Result] per function so callers can inspect individual
// outcomes.
//
// [Map] applies a transformation function to every element of a slice
// concurrently and returns the results in the original order. The call
// is all-or-nothing: either a fully populated ordered slice or a single
// propagated error, never partial results.
//
//	emails, err := asyncx.Map(ctx, userIDs, func(ctx context.Context, id UserID) (string, error) {
//	    u, err := repo.GetByID(ctx, id)
//	    return string(u.Email), err
//	})
//
// [Filter] evaluates a predicate against every element concurrently and
// keeps the elements the predicate approved, preserving their original
// relative order. A predicate error fails the whole call.
//
//	active, err := asyncx.Filter(ctx, users, func(ctx context.Context, u User) (bool, error) {
//	    return sessions.IsActive(ctx, u.ID)
//	})
//
// [ForEach] is like [Map] but discards return values, useful for
// concurrent side-effects such as sending notifications or invalidating
// caches. [ForEachLimit] bounds the number of concurrent invocations and
// fails fast via errgroup when one invocation errors.
//
// # Worker Pool
//
// [Pool] is the bounded alternative to [Map]. It limits concurrency to a
// fixed number of workers, making it suitable for workloads that must
// not overwhelm downstream resources such as database connections or
// rate-limited APIs.
//
//	// Process 1 000 items with at most 10 concurrent DB calls.
//	results, err := asyncx.Pool(ctx, 10, items, func(ctx context.Context, item Item) (Result, error) {
//	    return process(ctx, item)
//	})
//
// # Retry
//
// [Retry] calls a function up to n times, returning as soon as it
// succeeds. [RetryWithBackoff] adds exponential backoff between
// attempts, doubling the wait duration after every failure, and respects
// context cancellation between retries.
//
// # Timeout
//
// [WithTimeout] runs a function with a hard deadline. If the function
// does not finish within the given duration it returns
// [context.DeadlineExceeded].
//
// # Fire-and-Forget
//
// [Do] launches a goroutine without tracking its result, useful for
// non-critical background work. [DoCtx] additionally checks whether the
// context is already cancelled before starting.
//
// # Rate-Limiting Wrappers
//
// [Debounced] wraps a function so it is only invoked after calls stop
// arriving for at least the specified duration. [Throttled] wraps a
// function so it executes at most once per interval; calls inside the
// interval are silently dropped. [Once] wraps a function so it executes
// exactly once and caches the result for every subsequent caller.
//
// # Failure Semantics
//
// The batch helpers (AwaitAll, All, Map, Filter, ForEach) share one
// policy: a failure in one computation fails the whole batch, the
// failing error is propagated as-is with no wrapping, and sibling
// computations always run to completion first. When several
// computations fail, which error is surfaced is unspecified. There is
// no cancellation of a launched batch: failing fast would require
// propagating cancellation into arbitrary caller-supplied work.
//
// Inputs are never mutated and no state is shared across calls.
package asyncx
