package entities

// OutcomeCode identifies the result bucket of a revealed wish.
type OutcomeCode uint8

// Outcome codes, in the order the resolver walks the probability buckets.
const (
	OutcomeWishGranted OutcomeCode = 0
	OutcomeTokens250   OutcomeCode = 1
	OutcomeTokens500   OutcomeCode = 2
	OutcomeTokens1000  OutcomeCode = 3
	OutcomeFreeSpin    OutcomeCode = 4
	OutcomeTryAgain    OutcomeCode = 5
)

// Token reward amounts in base units (8 decimal places).
const (
	RewardTokens250  int64 = 25_000_000_000
	RewardTokens500  int64 = 50_000_000_000
	RewardTokens1000 int64 = 100_000_000_000
)

// ProbabilityScale is the total probability mass the configured weights are
// measured against. The unallocated remainder is the "try again" bucket.
const ProbabilityScale = 10000

// String returns a human-readable name for the outcome code.
func (c OutcomeCode) String() string {
	switch c {
	case OutcomeWishGranted:
		return "wish_granted"
	case OutcomeTokens250:
		return "tokens_250"
	case OutcomeTokens500:
		return "tokens_500"
	case OutcomeTokens1000:
		return "tokens_1000"
	case OutcomeFreeSpin:
		return "free_spin"
	case OutcomeTryAgain:
		return "try_again"
	default:
		return "unknown"
	}
}

// Reward returns the token payout associated with the outcome, 0 for
// non-monetary outcomes.
func (c OutcomeCode) Reward() int64 {
	switch c {
	case OutcomeTokens250:
		return RewardTokens250
	case OutcomeTokens500:
		return RewardTokens500
	case OutcomeTokens1000:
		return RewardTokens1000
	default:
		return 0
	}
}

// IsWin reports whether the outcome counts as a win for stats and
// leaderboard purposes (a granted wish or any token payout).
func (c OutcomeCode) IsWin() bool {
	return c == OutcomeWishGranted || c.Reward() > 0
}
