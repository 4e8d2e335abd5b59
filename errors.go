// Package hdbscan -- error helpers.
//
// This file re-exports the pieces of github.com/cockroachdb/errors this
// package needs and defines the sentinel errors named in spec §7: invalid
// configuration, invalid fit input, and invariant violations.
package hdbscan

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	newError  = crdb.New
	newErrorf = crdb.Newf
	wrapf     = crdb.Wrapf
	is        = crdb.Is
)

var (
	// ErrInvalidConfig is returned by New when MinClusterSize or MinSamples
	// is out of range. No fit is attempted.
	ErrInvalidConfig = newError("hdbscan: invalid configuration")

	// ErrInvalidInput is returned by Fit when the input data is malformed
	// (ragged rows, zero dimensionality). Not one of spec §7's two
	// enumerated failure kinds, but input hygiene Fit must handle locally.
	ErrInvalidInput = newError("hdbscan: invalid input")

	// ErrInvariantViolation marks a fatal internal-logic failure (a parent
	// cluster not found while processing an MST edge, a union-find lookup
	// out of bounds). A Fit call that returns a wrapped ErrInvariantViolation
	// leaves Labels() and Probabilities() at their prior values.
	ErrInvariantViolation = newError("hdbscan: invariant violation")
)

// IsInvariantViolation reports whether err is or wraps ErrInvariantViolation.
func IsInvariantViolation(err error) bool {
	return err != nil && is(err, ErrInvariantViolation)
}
