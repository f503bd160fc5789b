package interfaces

import (
	"context"
	"time"
)

// Ledger is the external ledger capability the game consumes: authenticated
// time and height, an unpredictable-at-commit-time entropy value, and the
// outbound value-transfer primitive. The service never implements ledger
// semantics itself; deployments supply an adapter for their chain.
type Ledger interface {
	// CurrentHeight returns the ledger's monotonic block height.
	CurrentHeight(ctx context.Context) (int64, error)

	// BlockEntropy returns a value intrinsic to the transaction currently
	// executing, unknowable before the block is produced. Only meaningful
	// inside a Reveal; the resolver mixes it into the outcome draw.
	BlockEntropy(ctx context.Context) ([]byte, error)

	// Transfer issues an outbound value transfer from the game's holdings.
	Transfer(ctx context.Context, to string, amount int64, symbol string, memo string) error

	// Now returns the ledger's notion of current time.
	Now() time.Time
}
