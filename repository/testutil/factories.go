package testutil

import (
	"time"

	"zoltaran/domain/entities"
)

// CreateTestAccount creates a player account with default values
func CreateTestAccount(player string) *entities.Account {
	now := time.Now()
	return &entities.Account{
		Player:          player,
		PurchasedWishes: 0,
		LastFreeDay:     0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CreateTestAccountWithWishes creates an account holding purchased credits
func CreateTestAccountWithWishes(player string, purchased int64) *entities.Account {
	account := CreateTestAccount(player)
	account.PurchasedWishes = purchased
	return account
}

// CreateTestCommit creates a pending commitment for the player
func CreateTestCommit(player, secret, wishCID string, height int64) *entities.WishCommit {
	return &entities.WishCommit{
		Player:      player,
		CommitHash:  entities.CommitDigest(secret, wishCID),
		BlockHeight: height,
		WishSource:  entities.WishSourceFree,
	}
}

// CreateTestPurchasedCommit creates a commitment backed by a purchased credit
func CreateTestPurchasedCommit(player, secret, wishCID string, height int64) *entities.WishCommit {
	commit := CreateTestCommit(player, secret, wishCID, height)
	commit.WishSource = entities.WishSourcePurchased
	return commit
}

// CreateTestConfig creates a game configuration with the default weights
func CreateTestConfig(admin string) *entities.GameConfig {
	return &entities.GameConfig{
		Admin:           admin,
		PaymentContract: "token.pay",
		RewardSymbol:    "ZLTN",
		TreasuryBalance: 0,
		Paused:          false,
		ProbGranted:     2000,
		ProbTokens250:   1000,
		ProbTokens500:   800,
		ProbTokens1000:  200,
		ProbFreeSpin:    1000,
	}
}

// CreateTestConfigWithTreasury creates a configuration with a funded treasury
func CreateTestConfigWithTreasury(admin string, balance int64) *entities.GameConfig {
	cfg := CreateTestConfig(admin)
	cfg.TreasuryBalance = balance
	return cfg
}

// CreateTestToken creates an enabled payment token config
func CreateTestToken(symbol, contract string, pricePerWish int64) *entities.PaymentToken {
	return &entities.PaymentToken{
		Symbol:       symbol,
		Contract:     contract,
		PricePerWish: pricePerWish,
		BonusBps:     0,
		Enabled:      true,
	}
}

// CreateTestTokenWithBonus creates a token config granting bonus wishes
func CreateTestTokenWithBonus(symbol, contract string, pricePerWish int64, bonusBps int64) *entities.PaymentToken {
	token := CreateTestToken(symbol, contract, pricePerWish)
	token.BonusBps = bonusBps
	return token
}

// CreateTestResult creates a game result entry
func CreateTestResult(player string, code entities.OutcomeCode, tokensWon int64) *entities.GameResult {
	return &entities.GameResult{
		Player:      player,
		OutcomeCode: code,
		TokensWon:   tokensWon,
		WishCID:     "bafy-test-cid",
	}
}
