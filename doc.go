/*
Package fallible provides two small generic container types and the
combinators to compose them:

▪︎ Option[T] models "a value of type T, or nothing", as a type-safe
substitute for nullable references.

▪︎ Result[T] models "a value of type T, or an error explaining why none
could be produced", as a type-safe substitute for error-driven control
flow at every call site.

Both are immutable value types. Every operation returns a fresh
container and leaves its receiver untouched, so instances may be shared
freely, including across goroutines, without synchronization. The
package performs no I/O and holds no global state beyond a trace
selector.

The intended style of use is pipeline composition: construct a Result
at the boundary where a computation may fail (via Try or Catch), chain
transformations with MapResult/FlatMapResult, and decide at the end of
the chain how to consume the outcome. Once a chain is in its error
state, later transformers are never invoked; the first error rides
through unchanged. Transformers that fail by returning a value should
return a Result themselves and be chained with FlatMapResult;
transformers that fail by panicking with an error value are absorbed
into the chain's error state.

Interoperation with nil-based APIs is confined to two adapters,
FromPtr and Ptr. Nil pointers never occur inside the algebra itself.

# Status

Complete for the unparameterized container surface. Collection-level
helpers (collecting a slice of Results into a Result of slice) are
deliberately left out until a concrete client needs them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fallible

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fallible'
func tracer() tracing.Trace {
	return tracing.Select("fallible")
}
