package entities

import (
	"crypto/sha256"
	"time"
)

// WishSource identifies which credit a commit consumed.
type WishSource string

const (
	WishSourceFree      WishSource = "free"
	WishSourcePurchased WishSource = "purchased"
)

// CommitExpiry is how long a pending commit stays live before the sweeper
// may reclaim it.
const CommitExpiry = time.Hour

// WishCommit is a pending commitment: the hash binds the player's secret and
// wish CID before any block entropy exists. At most one live commit per
// player at any time.
type WishCommit struct {
	ID          int64      `db:"id"`
	Player      string     `db:"player"`
	CommitHash  []byte     `db:"commit_hash"`
	BlockHeight int64      `db:"block_height"`
	WishSource  WishSource `db:"wish_source"`
	CreatedAt   time.Time  `db:"created_at"`
}

// IsExpired reports whether the commit has outlived the expiry window at the
// given time.
func (c *WishCommit) IsExpired(now time.Time) bool {
	return now.Sub(c.CreatedAt) > CommitExpiry
}

// MatchesReveal verifies that the revealed secret and wish CID hash to the
// stored commitment.
func (c *WishCommit) MatchesReveal(secret, wishCID string) bool {
	computed := CommitDigest(secret, wishCID)
	if len(c.CommitHash) != len(computed) {
		return false
	}
	for i := range computed {
		if c.CommitHash[i] != computed[i] {
			return false
		}
	}
	return true
}

// CommitDigest computes the commitment hash over the raw concatenation
// secret || wishCID. There is no length framing between the two inputs, so
// clients own the framing and must reveal with the exact values they hashed.
func CommitDigest(secret, wishCID string) []byte {
	sum := sha256.Sum256([]byte(secret + wishCID))
	return sum[:]
}
