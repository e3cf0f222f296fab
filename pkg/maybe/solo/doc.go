// Package solo contains the cross-type operations of maybe.Maybe as free
// functions, since Go methods cannot introduce type parameters.
//
// Highlights:
// - Map/FlatMap: transform a present value from T to U
// - OnErrorMap/OnErrorFlatMap: transform an error-track value from T to U
// - OnErrorMapMatching/OnErrorFlatMapMatching: as above for matching errors;
//   other errors are kept on the First side of a maybe.OneOf
// - SwitchIfEmpty/Or: replace an empty container with a U, keeping a present T
// - Finally: reduce to a concrete value via value/error/empty handlers
// - Attempt: move a (T, error) call onto the error track
package solo
