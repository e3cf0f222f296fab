// Package chain provides a fluent wrapper around maybe.Maybe that records
// every step through a zap logger.
//
// Key operations:
// - Start/FromValue: begin a chain from a Maybe[T] or a value
// - Then: switch to a new Maybe[U] via a function
// - Map: transform a present value (T -> U)
// - Filter/Ensure/OnError/Otherwise: same-type steps
// - Recover: transform an error-track value (T -> U)
// - Finally: collapse the chain into a final value via handlers
//
// Each step is logged at debug level with the step name, the container id and
// its state (value, error or empty).
package chain
