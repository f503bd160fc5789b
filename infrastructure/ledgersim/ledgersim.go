// Package ledgersim provides an in-process Ledger implementation for
// development and testing. Height advances on a wall-clock cadence, entropy
// comes from crypto/rand, and transfers are recorded instead of broadcast.
package ledgersim

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// BlockInterval is the simulated block production cadence.
const BlockInterval = 500 * time.Millisecond

// TransferRecord is one recorded outbound transfer.
type TransferRecord struct {
	ID     uuid.UUID
	To     string
	Amount int64
	Symbol string
	Memo   string
	Height int64
	At     time.Time
}

// Ledger simulates a block ledger. Safe for concurrent use.
type Ledger struct {
	mu        sync.Mutex
	genesis   time.Time
	height    int64 // floor; height never goes below this even if the clock jumps
	transfers []TransferRecord
}

// New creates a simulator whose height starts at 1.
func New() *Ledger {
	return &Ledger{genesis: time.Now(), height: 1}
}

// CurrentHeight returns the simulated block height. Height is derived from
// elapsed time but clamped monotonic.
func (l *Ledger) CurrentHeight(ctx context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	h := 1 + int64(time.Since(l.genesis)/BlockInterval)
	if h > l.height {
		l.height = h
	}
	return l.height, nil
}

// AdvanceHeight forces the height forward, for tests that need a new block
// without waiting out the interval.
func (l *Ledger) AdvanceHeight(delta int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.height += delta
}

// BlockEntropy returns 32 bytes of fresh randomness. A real chain adapter
// would return a transaction-intrinsic value here.
func (l *Ledger) BlockEntropy(ctx context.Context) ([]byte, error) {
	entropy := make([]byte, 32)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("failed to read entropy: %w", err)
	}
	return entropy, nil
}

// Transfer records the outbound transfer and logs it.
func (l *Ledger) Transfer(ctx context.Context, to string, amount int64, symbol string, memo string) error {
	height, err := l.CurrentHeight(ctx)
	if err != nil {
		return err
	}

	record := TransferRecord{
		ID:     uuid.New(),
		To:     to,
		Amount: amount,
		Symbol: symbol,
		Memo:   memo,
		Height: height,
		At:     time.Now(),
	}

	l.mu.Lock()
	l.transfers = append(l.transfers, record)
	l.mu.Unlock()

	log.WithFields(log.Fields{
		"transferId": record.ID,
		"to":         to,
		"amount":     amount,
		"symbol":     symbol,
		"memo":       memo,
		"height":     height,
	}).Info("Simulated ledger transfer")

	return nil
}

// Now returns wall-clock time.
func (l *Ledger) Now() time.Time {
	return time.Now()
}

// Transfers returns a copy of all recorded transfers.
func (l *Ledger) Transfers() []TransferRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]TransferRecord, len(l.transfers))
	copy(out, l.transfers)
	return out
}
