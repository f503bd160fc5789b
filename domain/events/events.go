package events

import "zoltaran/domain/entities"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeWishCommitted      EventType = "wish_committed"
	EventTypeWishRevealed       EventType = "wish_revealed"
	EventTypeWishesPurchased    EventType = "wishes_purchased"
	EventTypeTreasuryFunded     EventType = "treasury_funded"
	EventTypeTreasuryWithdrawal EventType = "treasury_withdrawal"
	EventTypeCommitExpired      EventType = "commit_expired"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// WishCommittedEvent represents a new pending commitment
type WishCommittedEvent struct {
	CommitID    int64
	Player      string
	WishSource  entities.WishSource
	BlockHeight int64
}

func (e WishCommittedEvent) Type() EventType {
	return EventTypeWishCommitted
}

// WishRevealedEvent represents a completed commit-reveal cycle
type WishRevealedEvent struct {
	CommitID    int64
	ResultID    int64
	Player      string
	OutcomeCode entities.OutcomeCode
	TokensWon   int64
	Draw        uint32
}

func (e WishRevealedEvent) Type() EventType {
	return EventTypeWishRevealed
}

// WishesPurchasedEvent represents purchased credits added to an account
type WishesPurchasedEvent struct {
	Player      string
	Symbol      string
	AmountPaid  int64
	WishCount   int64
	BonusWishes int64
}

func (e WishesPurchasedEvent) Type() EventType {
	return EventTypeWishesPurchased
}

// TreasuryFundedEvent represents a deposit into the tracked treasury balance
type TreasuryFundedEvent struct {
	From       string
	Amount     int64
	NewBalance int64
}

func (e TreasuryFundedEvent) Type() EventType {
	return EventTypeTreasuryFunded
}

// TreasuryWithdrawalEvent represents an admin withdrawal from the treasury
type TreasuryWithdrawalEvent struct {
	To         string
	Amount     int64
	NewBalance int64
}

func (e TreasuryWithdrawalEvent) Type() EventType {
	return EventTypeTreasuryWithdrawal
}

// CommitExpiredEvent represents a commitment reclaimed by the sweeper
type CommitExpiredEvent struct {
	CommitID   int64
	Player     string
	WishSource entities.WishSource
	Refunded   bool
}

func (e CommitExpiredEvent) Type() EventType {
	return EventTypeCommitExpired
}
