package result

import "errors"

// Result holds either a successfully computed value or a single error.
// The zero value is a successful Result wrapping T's zero value; use Ok and
// Err to construct instances explicitly.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed Result carrying err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of lifts a conventional (value, error) pair into a Result.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the wrapped value. For a failed Result it returns T's zero
// value; check IsOk or use Unpack when the distinction matters.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the wrapped error, or nil for a successful Result.
func (r Result[T]) Err() error {
	return r.err
}

// Unpack converts the Result back into a conventional (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

// Map applies f to the value of a successful Result. A failed Result passes
// through unchanged and f is never invoked.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// MapErr applies f to the error of a failed Result, leaving successful
// Results untouched. Used to translate low-level failures into domain errors.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err != nil {
		return Err[T](f(r.err))
	}
	return r
}

// Bind chains a Result-producing continuation onto a Result. The continuation
// runs only when r succeeded; the first failure in a Bind chain wins.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}

// Apply applies a wrapped function to a wrapped value. Unlike Bind, both
// operands are already evaluated, so independent failures do not mask each
// other: when both sides failed the errors are joined.
func Apply[T, U any](rf Result[func(T) U], r Result[T]) Result[U] {
	if err := errors.Join(rf.err, r.err); err != nil {
		return Err[U](err)
	}
	return Ok(rf.value(r.value))
}

// Lift2 combines two independent Results with f, joining the errors of every
// failed operand instead of reporting only the first.
func Lift2[A, B, R any](f func(A, B) R, ra Result[A], rb Result[B]) Result[R] {
	if err := errors.Join(ra.err, rb.err); err != nil {
		return Err[R](err)
	}
	return Ok(f(ra.value, rb.value))
}

// Lift3 combines three independent Results with f, joining all errors.
func Lift3[A, B, C, R any](f func(A, B, C) R, ra Result[A], rb Result[B], rc Result[C]) Result[R] {
	if err := errors.Join(ra.err, rb.err, rc.err); err != nil {
		return Err[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value))
}

// Lift4 combines four independent Results with f, joining all errors.
func Lift4[A, B, C, D, R any](
	f func(A, B, C, D) R, ra Result[A], rb Result[B], rc Result[C], rd Result[D],
) Result[R] {
	if err := errors.Join(ra.err, rb.err, rc.err, rd.err); err != nil {
		return Err[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value))
}

// Sequence collapses a list of Results into a Result of a list. It is
// monadic: the first failed element determines the outcome and later
// elements are not inspected.
func Sequence[T any](rs []Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Traverse maps f over items, collecting the results. It stops at the first
// failure: f is not invoked for any item after a failing one.
func Traverse[T, U any](items []T, f func(T) Result[U]) Result[[]U] {
	values := make([]U, 0, len(items))
	for _, item := range items {
		r := f(item)
		if r.err != nil {
			return Err[[]U](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}
