package fallible

// Result represents the outcome of a computation that may fail: either
// a value of type T, or an error explaining why none could be produced.
//
// The variant is fixed at construction: a Result holds an error iff it
// was constructed from a non-nil error. Consequently Err[T](nil) is
// equivalent to Ok of T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err constructs a failed Result carrying err.
func Err[T any](err error) Result[T] {
	var zero T
	return Result[T]{value: zero, err: err}
}

// Try runs f and captures its outcome, bridging the common Go
// "(value, error)" signature into a Result.
func Try[T any](f func() (T, error)) Result[T] {
	v, err := f()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Catch runs f and reifies a panicking failure as an Err result.
// Only panic values satisfying the error interface are absorbed; any
// other panic propagates, since the container cannot represent it.
func Catch[T any](f func() T) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			err, isErr := rec.(error)
			if !isErr {
				panic(rec)
			}
			tracer().Debugf("catch: absorbed failure: %v", err)
			r = Err[T](err)
		}
	}()
	return Ok(f())
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Unwrap returns the value and error, mirroring a plain Go call site.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// MustUnwrap returns the value, or re-raises the error of an Err result
// by panicking with the original error value. The error is raised
// as-is, never wrapped, so recover handlers see the identical object.
func (r Result[T]) MustUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Err returns the carried error, or nil for an Ok result.
func (r Result[T]) Err() error {
	return r.err
}

// MustErr returns the carried error, panicking with ErrNotAnError when
// called on an Ok result. Asking a successful result for its error is a
// programming mistake, not a data-dependent outcome.
func (r Result[T]) MustErr() error {
	if r.err == nil {
		panic(ErrNotAnError)
	}
	return r.err
}

// Or returns the contained value or a default.
func (r Result[T]) Or(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// OrElse returns the contained value, or the result of calling supply
// with the carried error. supply is invoked exactly once, and only on
// an Err result.
func (r Result[T]) OrElse(supply func(error) T) T {
	if r.err != nil {
		return supply(r.err)
	}
	return r.value
}

// Ptr returns a pointer for nil-based call sites: nil for an Err
// result, otherwise a pointer to a copy of the value.
func (r Result[T]) Ptr() *T {
	if r.err != nil {
		return nil
	}
	v := r.value
	return &v
}

// MapError translates the carried error, typically to wrap it for the
// next layer up. Ok results pass through untouched; f is invoked only
// on an Err result.
func (r Result[T]) MapError(f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// ToOption converts to an Option, discarding the error of an Err
// result. Callers who still need the error must inspect it before
// converting.
func (r Result[T]) ToOption() Option[T] {
	if r.err != nil {
		return None[T]()
	}
	return Some(r.value)
}

// MapResult transforms the value of an Ok result. A failure panicking
// out of f is absorbed into an Err result, with the same policy as
// Catch, so chains of maps carry the first error forward without
// invoking later transformers. An Err input passes through unchanged
// and f is not invoked.
func MapResult[T any, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Catch(func() U { return f(r.value) })
}

// FlatMapResult is MapResult for transformers that themselves return a
// Result; the returned result is used directly, without double
// wrapping. Failure absorption follows Catch, like MapResult.
func FlatMapResult[T any, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	inner := Catch(func() Result[U] { return f(r.value) })
	if inner.err != nil {
		return Err[U](inner.err)
	}
	return inner.value
}
