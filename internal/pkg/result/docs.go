// Package result provides small generic success/failure and optional-value
// combinators used to thread errors through the order-taking pipeline
// without exceptions or sentinel values.
//
// Three abstractions are provided:
//   - Result[T]: a computed value or a single error
//   - Option[T]: a value that may be absent without that being an error
//   - AsyncResult[T]: a context-aware computation producing a Result[T]
//
// The monadic combinators (Bind, Sequence, Traverse, BindAsync) short-circuit
// on the first failure: once a step has failed, no subsequent step is started.
// The applicative combinators (Apply, Lift2..Lift4) instead evaluate every
// operand and join independent failures; the pipeline's default path is
// monadic, but the applicative forms are available for callers that want to
// collect independent validation failures.
package result
