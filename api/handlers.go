package api

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"

	"zoltaran/application"
	"zoltaran/domain/entities"

	"github.com/gin-gonic/gin"
)

// Handler exposes the game operations over HTTP.
type Handler struct {
	app *application.App
}

// NewHandler creates a new API handler
func NewHandler(app *application.App) *Handler {
	return &Handler{app: app}
}

// statusFor maps domain sentinel errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, entities.ErrExhausted):
		return http.StatusConflict
	case errors.Is(err, entities.ErrPolicy):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

type commitRequest struct {
	CommitHash string `json:"commit_hash" binding:"required"`
	Source     string `json:"source" binding:"required"`
}

// Commit handles POST /wishes/commit
func (h *Handler) Commit(c *gin.Context) {
	var req commitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	hash, err := hex.DecodeString(req.CommitHash)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "commit_hash must be hex encoded"})
		return
	}

	source := entities.WishSource(req.Source)
	if source != entities.WishSourceFree && source != entities.WishSourcePurchased {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source must be free or purchased"})
		return
	}

	caller := callerFrom(c)
	commit, err := h.app.Commit(c.Request.Context(), caller, caller, hash, source)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"commit_id":    commit.ID,
		"block_height": commit.BlockHeight,
		"wish_source":  commit.WishSource,
		"created_at":   commit.CreatedAt,
	})
}

type revealRequest struct {
	CommitID int64  `json:"commit_id" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
	WishCID  string `json:"wish_cid" binding:"required"`
}

// Reveal handles POST /wishes/reveal
func (h *Handler) Reveal(c *gin.Context) {
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, err := h.app.Reveal(c.Request.Context(), callerFrom(c), req.CommitID, req.Secret, req.WishCID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result_id":  result.Result.ID,
		"outcome":    result.Outcome.String(),
		"code":       result.Outcome,
		"tokens_won": result.TokensWon,
		"draw":       result.Draw,
	})
}

type transferRequest struct {
	Contract string `json:"contract" binding:"required"`
	Symbol   string `json:"symbol" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
	Memo     string `json:"memo"`
}

// Transfer handles POST /transfers, the inbound transfer notification hook
func (h *Handler) Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	err := h.app.HandleTransfer(c.Request.Context(), callerFrom(c), req.Contract, req.Symbol, req.Amount, req.Memo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type sweepRequest struct {
	MaxClean int `json:"max_clean" binding:"required"`
}

// Sweep handles POST /sweep. Callable by any authenticated player.
func (h *Handler) Sweep(c *gin.Context) {
	var req sweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	removed, err := h.app.Sweep(c.Request.Context(), req.MaxClean)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

type setConfigRequest struct {
	Admin           string `json:"admin" binding:"required"`
	PaymentContract string `json:"payment_contract" binding:"required"`
	RewardSymbol    string `json:"reward_symbol" binding:"required"`
	ProbGranted     int64  `json:"prob_granted"`
	ProbTokens250   int64  `json:"prob_tokens_250"`
	ProbTokens500   int64  `json:"prob_tokens_500"`
	ProbTokens1000  int64  `json:"prob_tokens_1000"`
	ProbFreeSpin    int64  `json:"prob_free_spin"`
}

// SetConfig handles POST /admin/config
func (h *Handler) SetConfig(c *gin.Context) {
	var req setConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	cfg := &entities.GameConfig{
		Admin:           req.Admin,
		PaymentContract: req.PaymentContract,
		RewardSymbol:    req.RewardSymbol,
		ProbGranted:     req.ProbGranted,
		ProbTokens250:   req.ProbTokens250,
		ProbTokens500:   req.ProbTokens500,
		ProbTokens1000:  req.ProbTokens1000,
		ProbFreeSpin:    req.ProbFreeSpin,
	}

	if err := h.app.SetConfig(c.Request.Context(), callerFrom(c), cfg); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type setTokenRequest struct {
	Symbol       string `json:"symbol" binding:"required"`
	Contract     string `json:"contract" binding:"required"`
	PricePerWish int64  `json:"price_per_wish" binding:"required"`
	BonusBps     int64  `json:"bonus_bps"`
	Enabled      *bool  `json:"enabled" binding:"required"`
}

// SetToken handles POST /admin/tokens
func (h *Handler) SetToken(c *gin.Context) {
	var req setTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	token := &entities.PaymentToken{
		Symbol:       req.Symbol,
		Contract:     req.Contract,
		PricePerWish: req.PricePerWish,
		BonusBps:     req.BonusBps,
		Enabled:      *req.Enabled,
	}

	if err := h.app.SetToken(c.Request.Context(), callerFrom(c), token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type setPauseRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// SetPause handles POST /admin/pause
func (h *Handler) SetPause(c *gin.Context) {
	var req setPauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.app.SetPause(c.Request.Context(), callerFrom(c), *req.Paused); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type withdrawRequest struct {
	To     string `json:"to" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

// Withdraw handles POST /admin/withdraw
func (h *Handler) Withdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.app.Withdraw(c.Request.Context(), callerFrom(c), req.To, req.Amount); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAccount handles GET /accounts/:player
func (h *Handler) GetAccount(c *gin.Context) {
	player := c.Param("player")

	account, err := h.app.GetAccount(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"player":           account.Player,
		"purchased_wishes": account.PurchasedWishes,
		"total_wishes":     account.TotalWishes,
		"total_wins":       account.TotalWins,
		"tokens_won":       account.TokensWon,
		"last_free_day":    account.LastFreeDay,
	})
}

// GetLeaderboard handles GET /leaderboard
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := parseLimit(c, 10)

	entries, err := h.app.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// GetHistory handles GET /history
func (h *Handler) GetHistory(c *gin.Context) {
	limit := parseLimit(c, 20)

	results, err := h.app.GetRecentResults(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetPlayerHistory handles GET /history/:player
func (h *Handler) GetPlayerHistory(c *gin.Context) {
	player := c.Param("player")
	limit := parseLimit(c, 20)

	results, err := h.app.GetPlayerResults(c.Request.Context(), player, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetTokens handles GET /tokens
func (h *Handler) GetTokens(c *gin.Context) {
	tokens, err := h.app.GetTokens(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, gin.H{
			"symbol":         token.Symbol,
			"contract":       token.Contract,
			"price_per_wish": token.PricePerWish,
			"bonus_bps":      token.BonusBps,
			"enabled":        token.Enabled,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tokens": out})
}

// GetStats handles GET /stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.app.GetGlobalStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players":      stats.Players,
		"total_wishes": stats.TotalWishes,
		"total_wins":   stats.TotalWins,
		"tokens_won":   stats.TokensWon,
	})
}

func parseLimit(c *gin.Context, def int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > 100 {
		return def
	}
	return limit
}
