package fallible

import "errors"

// Misuse sentinels. These mark a caller error ("you used the API
// wrong"), never a failed computation; a Result never carries either of
// them as its payload on behalf of this package. They are raised by
// panic from the unsafe accessors and can be matched by identity in a
// recover handler.

// ErrEmptyOption is the panic value of Option.MustUnwrap on None.
var ErrEmptyOption = errors.New("option: unwrap of None")

// ErrNotAnError is the panic value of Result.MustErr on an Ok result.
var ErrNotAnError = errors.New("result: error accessor on Ok result")
