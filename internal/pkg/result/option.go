package result

// Option holds a value that may legitimately be absent. Absence is not an
// error: an optional field left blank constructs as None, while a present
// but invalid field still fails its validator.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the wrapped value, or fallback when the Option is empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// MapOption applies f to a present value; an empty Option stays empty and
// f is never invoked.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}
