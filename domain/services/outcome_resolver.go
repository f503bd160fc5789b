package services

import (
	"crypto/sha256"
	"encoding/binary"

	"zoltaran/domain/entities"
)

// ResolveDraw derives the uniformly-distributed draw in [0, ProbabilityScale)
// for a reveal. The input concatenates the revealed secret, the block entropy
// that did not exist at commit time, and the player identity; the first four
// bytes of the SHA-256 digest are read big-endian and reduced modulo the
// scale. Pure function: anyone can recompute the draw from the inputs.
func ResolveDraw(secret string, entropy []byte, player string) uint32 {
	input := make([]byte, 0, len(secret)+len(entropy)+len(player))
	input = append(input, secret...)
	input = append(input, entropy...)
	input = append(input, player...)

	digest := sha256.Sum256(input)
	return binary.BigEndian.Uint32(digest[:4]) % entities.ProbabilityScale
}

// BucketForDraw maps a draw onto the configured probability buckets. The walk
// order granted, 250, 500, 1000, free spin is fixed; changing it changes
// every historical outcome, so it must match the published game rules.
func BucketForDraw(cfg *entities.GameConfig, draw uint32) entities.OutcomeCode {
	cumulative := int64(0)
	buckets := []struct {
		weight int64
		code   entities.OutcomeCode
	}{
		{cfg.ProbGranted, entities.OutcomeWishGranted},
		{cfg.ProbTokens250, entities.OutcomeTokens250},
		{cfg.ProbTokens500, entities.OutcomeTokens500},
		{cfg.ProbTokens1000, entities.OutcomeTokens1000},
		{cfg.ProbFreeSpin, entities.OutcomeFreeSpin},
	}

	for _, b := range buckets {
		cumulative += b.weight
		if int64(draw) < cumulative {
			return b.code
		}
	}
	return entities.OutcomeTryAgain
}

// ResolveOutcome computes the outcome code, reward and draw for a reveal.
func ResolveOutcome(cfg *entities.GameConfig, secret string, entropy []byte, player string) (entities.OutcomeCode, int64, uint32) {
	draw := ResolveDraw(secret, entropy, player)
	code := BucketForDraw(cfg, draw)
	return code, code.Reward(), draw
}
