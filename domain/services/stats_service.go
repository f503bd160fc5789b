package services

import (
	"context"
	"fmt"

	"zoltaran/domain/entities"
	"zoltaran/domain/interfaces"
)

// statsService serves the read-side queries: accounts, leaderboard, game
// history, accepted tokens and the global counters.
type statsService struct {
	accountRepo     interfaces.AccountRepository
	resultRepo      interfaces.GameResultRepository
	leaderboardRepo interfaces.LeaderboardRepository
	tokenRepo       interfaces.PaymentTokenRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	accountRepo interfaces.AccountRepository,
	resultRepo interfaces.GameResultRepository,
	leaderboardRepo interfaces.LeaderboardRepository,
	tokenRepo interfaces.PaymentTokenRepository,
) interfaces.StatsService {
	return &statsService{
		accountRepo:     accountRepo,
		resultRepo:      resultRepo,
		leaderboardRepo: leaderboardRepo,
		tokenRepo:       tokenRepo,
	}
}

func (s *statsService) GetAccount(ctx context.Context, player string) (*entities.Account, error) {
	account, err := s.accountRepo.GetByPlayer(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *statsService) GetLeaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	entries, err := s.leaderboardRepo.GetTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}

func (s *statsService) GetRecentResults(ctx context.Context, limit int) ([]*entities.GameResult, error) {
	results, err := s.resultRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}
	return results, nil
}

func (s *statsService) GetPlayerResults(ctx context.Context, player string, limit int) ([]*entities.GameResult, error) {
	results, err := s.resultRepo.GetByPlayer(ctx, player, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get player results: %w", err)
	}
	return results, nil
}

func (s *statsService) GetTokens(ctx context.Context) ([]*entities.PaymentToken, error) {
	tokens, err := s.tokenRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment tokens: %w", err)
	}
	return tokens, nil
}

func (s *statsService) GetGlobalStats(ctx context.Context) (*interfaces.GlobalStats, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	stats := &interfaces.GlobalStats{Players: int64(len(accounts))}
	for _, account := range accounts {
		stats.TotalWishes += account.TotalWishes
		stats.TotalWins += account.TotalWins
		stats.TokensWon += account.TokensWon
	}
	return stats, nil
}
