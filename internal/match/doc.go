// Package match implements the gutter matching engine: filtering the
// catalog by region and shape, scoring each candidate against a
// measurement, classifying the score, and ranking the best candidates.
//
// The policy constants in this package (dimension weights, MaxError,
// tier cut-offs and the 2mm close-diff threshold) are fixed. Changing any
// of them changes which profile is reported as the best match.
//
// Everything here is a pure function of its inputs. An Engine holds no
// per-request state and may be shared between goroutines.
package match
