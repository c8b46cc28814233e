package result

import "context"

// AsyncResult is a suspendable computation producing a Result. Nothing runs
// until the computation is invoked with a context; composing AsyncResults
// with BindAsync builds a plan, and the plan executes on Await.
type AsyncResult[T any] func(ctx context.Context) Result[T]

// AsyncOk creates an already-completed successful AsyncResult.
func AsyncOk[T any](value T) AsyncResult[T] {
	return func(context.Context) Result[T] {
		return Ok(value)
	}
}

// AsyncErr creates an already-completed failed AsyncResult.
func AsyncErr[T any](err error) AsyncResult[T] {
	return func(context.Context) Result[T] {
		return Err[T](err)
	}
}

// FromResult lifts an already-computed Result into an AsyncResult.
func FromResult[T any](r Result[T]) AsyncResult[T] {
	return func(context.Context) Result[T] {
		return r
	}
}

// Await runs the computation and converts the outcome into a conventional
// (value, error) pair.
func (ar AsyncResult[T]) Await(ctx context.Context) (T, error) {
	return ar(ctx).Unpack()
}

// MapAsync applies f to the eventual value of a successful computation.
// When the computation fails, f is never invoked.
func MapAsync[T, U any](ar AsyncResult[T], f func(T) U) AsyncResult[U] {
	return func(ctx context.Context) Result[U] {
		return Map(ar(ctx), f)
	}
}

// MapErrAsync applies f to the eventual error of a failed computation.
func MapErrAsync[T any](ar AsyncResult[T], f func(error) error) AsyncResult[T] {
	return func(ctx context.Context) Result[T] {
		return MapErr(ar(ctx), f)
	}
}

// BindAsync chains an AsyncResult-producing continuation onto a computation.
// The antecedent is awaited first; only when it succeeded is the continuation
// constructed and started. After a failure no continuation effect runs.
func BindAsync[T, U any](ar AsyncResult[T], f func(T) AsyncResult[U]) AsyncResult[U] {
	return func(ctx context.Context) Result[U] {
		r := ar(ctx)
		if r.IsErr() {
			return Err[U](r.Err())
		}
		return f(r.Value())(ctx)
	}
}
