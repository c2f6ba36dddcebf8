package fallible

// Option represents an optional value.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	var zero T
	return Option[T]{value: zero, ok: false}
}

// FromPtr adapts a possibly-nil pointer to an Option: nil becomes None,
// anything else Some of the pointed-to value. Together with Ptr this is
// the only bridge between nil-based APIs and the algebra; nil does not
// occur inside it.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the value and a boolean indicating presence.
// This mirrors the common Go "(value, ok)" pattern.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustUnwrap returns the value or panics with ErrEmptyOption if None.
// Useful in tests or when invariants are guaranteed.
func (o Option[T]) MustUnwrap() T {
	if !o.ok {
		panic(ErrEmptyOption)
	}
	return o.value
}

// Or returns the contained value or a default.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// OrElse returns the contained value, or the result of calling supply.
// supply is not invoked when a value is present, which matters when it
// is costly or has side effects.
func (o Option[T]) OrElse(supply func() T) T {
	if o.ok {
		return o.value
	}
	return supply()
}

// Ptr returns a pointer for nil-based call sites: nil if None, otherwise
// a pointer to a copy of the value. The container's own storage is never
// handed out.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Filter keeps a present value only if pred accepts it.
// pred is invoked at most once, and never on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

// ToResult converts the option into a Result, with err filling in for
// the empty case. For errors that are expensive to construct, use
// ToResultElse.
func (o Option[T]) ToResult(err error) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Err[T](err)
}

// ToResultElse is ToResult with a lazily constructed error.
// supply is not invoked when a value is present.
func (o Option[T]) ToResultElse(supply func() error) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Err[T](supply())
}

// Map transforms the value if present. f is invoked exactly once on
// Some, never on None.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMap transforms the value with a function that itself returns an
// Option; the result is used directly, without a second layer of
// wrapping. Equivalent to Flatten(Map(o, f)).
func FlatMap[T any, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.ok {
		return f(o.value)
	}
	return None[U]()
}

// Flatten collapses one level of Option nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.ok {
		return o.value
	}
	return None[T]()
}
