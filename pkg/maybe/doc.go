// Package maybe provides Maybe[T], an immutable optional-value container
// with a secondary error track layered on the same slot.
//
// A Maybe holds zero or one value. A present value that matches the
// container's ErrorShape is routed by the error-track operations instead of
// a separate Either/Result type.
//
// Highlights:
// - Of/Just/Empty: construct a Maybe (Of treats zero-like values as absent)
// - NewFactory: construct with a custom clock, id generator, error shape or presence policy
// - Map/FlatMap/Filter: same-type transformation (see package solo for T -> U)
// - DoIfEmpty/DoIfPresent/TapError: side effects that keep the container
// - DoOnError/OnErrorMap/OnErrorFlatMap and their *Matching forms: error track
// - SwitchIfEmpty/Or: escape and recovery
// - GetOrDefault/OrElseGet/OrElseErr/MustGet: unwrap
package maybe
