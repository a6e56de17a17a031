// Package mi: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mi
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No code path panics on user-triggered error conditions.

package mi

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mi: ..." for consistency and to allow easy
// grepping across logs. Do not %w-wrap these sentinels when returning them
// directly; if context is essential (e.g. a variable index), wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty inputs -> shape mismatches -> k bounds -> dispatch config -> lag range.
// Every violation aborts the whole call before any task is dispatched.

var (
	// ErrNoObservations is returned when y carries no observations.
	ErrNoObservations = errors.New("mi: y must contain at least one observation")

	// ErrNoVariables is returned when x carries no variable columns.
	ErrNoVariables = errors.New("mi: x must contain at least one variable")

	// ErrNoLags is returned when the lag set is empty.
	ErrNoLags = errors.New("mi: at least one lag is required")

	// ErrLengthMismatch indicates an x column whose observation count differs
	// from len(y). All series in one call share a single length N.
	ErrLengthMismatch = errors.New("mi: x and y must have same length")

	// ErrCondLength indicates a conditioning series whose length differs from len(y).
	ErrCondLength = errors.New("mi: cond and y must have same length")

	// ErrMaskLength indicates a mask whose length differs from len(y).
	ErrMaskLength = errors.New("mi: mask length does not match y length")

	// ErrNamesLength indicates variable labels whose count differs from the
	// number of x columns. Labels are cosmetic but must still be consistent.
	ErrNamesLength = errors.New("mi: names length does not match variable count")

	// ErrBadK signals a non-positive neighbor count.
	ErrBadK = errors.New("mi: k must be at least 1")

	// ErrKTooLarge signals k >= N on the raw (unmasked) observation count.
	// Masking can still starve an individual task; that surfaces as the
	// estimator's own failure, aborting the call (see package doc).
	ErrKTooLarge = errors.New("mi: k must be smaller than number of observations")

	// ErrLagTooLarge signals that the requested lag/cond-lag combination
	// leaves no observations inside the shared crop window.
	ErrLagTooLarge = errors.New("mi: lag is too large, no observations left")

	// ErrUnknownParallel marks an unrecognized value of Options.Parallel.
	ErrUnknownParallel = errors.New("mi: unrecognized value for parallel option")

	// ErrPairwiseVariables is returned when PairwiseMI receives fewer than
	// two variables.
	ErrPairwiseVariables = errors.New("mi: pairwise estimation needs at least two variables")
)
