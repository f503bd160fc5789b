package entities

import "errors"

// Sentinel errors classifying every way an operation can be rejected.
// Services wrap these with context via fmt.Errorf("...: %w", ...) so callers
// can branch on errors.Is while logs keep the detail.
var (
	// ErrNotAuthorized is returned when the caller is not the identity an
	// operation requires (not the player, not the admin, not the owner).
	ErrNotAuthorized = errors.New("caller not authorized")

	// ErrStateConflict is returned when the operation conflicts with current
	// state: a pending commit already exists, a commit is missing, or a
	// commit belongs to someone else.
	ErrStateConflict = errors.New("state conflict")

	// ErrValidation is returned for malformed inputs: hash mismatches, bad
	// purchase memos, wish counts out of bounds, weights exceeding the
	// scale, or a reveal in the commit's own block.
	ErrValidation = errors.New("validation failed")

	// ErrExhausted is returned when a required resource is spent: no
	// purchased wishes left, the daily free wish already used, or an
	// underpaid purchase.
	ErrExhausted = errors.New("resource exhausted")

	// ErrPolicy is returned when configuration forbids the operation: game
	// paused, token not accepted or disabled, wrong token contract.
	ErrPolicy = errors.New("policy violation")

	// ErrInvariant is returned when completing the operation would break an
	// accounting invariant, such as driving the treasury balance negative.
	ErrInvariant = errors.New("invariant violation")
)
