package entities

import "fmt"

// GameConfig is the configuration singleton: admin identity, payment
// routing, tracked treasury balance, pause flag and the outcome probability
// weights. The weights are parts of ProbabilityScale; whatever mass they
// leave unallocated is the "try again" bucket.
type GameConfig struct {
	Admin           string `db:"admin"`
	PaymentContract string `db:"payment_contract"`
	RewardSymbol    string `db:"reward_symbol"`
	TreasuryBalance int64  `db:"treasury_balance"`
	Paused          bool   `db:"paused"`

	ProbGranted    int64 `db:"prob_granted"`
	ProbTokens250  int64 `db:"prob_tokens_250"`
	ProbTokens500  int64 `db:"prob_tokens_500"`
	ProbTokens1000 int64 `db:"prob_tokens_1000"`
	ProbFreeSpin   int64 `db:"prob_free_spin"`
}

// Weights returns the configured bucket weights in resolver walk order.
func (c *GameConfig) Weights() [5]int64 {
	return [5]int64{c.ProbGranted, c.ProbTokens250, c.ProbTokens500, c.ProbTokens1000, c.ProbFreeSpin}
}

// Validate checks the probability weights against the scale.
func (c *GameConfig) Validate() error {
	var total int64
	for _, w := range c.Weights() {
		if w < 0 {
			return fmt.Errorf("%w: negative probability weight", ErrValidation)
		}
		total += w
	}
	if total > ProbabilityScale {
		return fmt.Errorf("%w: probability weights sum to %d, exceeding scale %d", ErrValidation, total, ProbabilityScale)
	}
	return nil
}

// CanPay reports whether the tracked treasury balance covers an amount.
func (c *GameConfig) CanPay(amount int64) bool {
	return amount <= c.TreasuryBalance
}
