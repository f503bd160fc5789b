package api

import (
	"net/http"
	"time"

	"zoltaran/application"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface. Identity comes from bearer tokens; the
// domain services enforce who may do what.
func NewRouter(app *application.App, jwtService *JWTService, environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := NewHandler(app)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Development-only token minting. Real deployments authenticate against
	// the ledger's key scheme instead.
	if environment != "production" {
		router.POST("/auth/token", func(c *gin.Context) {
			var req struct {
				Player string `json:"player" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
				return
			}
			token, err := jwtService.GenerateToken(req.Player, 24*time.Hour)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})
	}

	authed := router.Group("/api", AuthMiddleware(jwtService))
	{
		authed.POST("/wishes/commit", handler.Commit)
		authed.POST("/wishes/reveal", handler.Reveal)
		authed.POST("/transfers", handler.Transfer)
		authed.POST("/sweep", handler.Sweep)

		authed.POST("/admin/config", handler.SetConfig)
		authed.POST("/admin/tokens", handler.SetToken)
		authed.POST("/admin/pause", handler.SetPause)
		authed.POST("/admin/withdraw", handler.Withdraw)

		authed.GET("/accounts/:player", handler.GetAccount)
		authed.GET("/leaderboard", handler.GetLeaderboard)
		authed.GET("/history", handler.GetHistory)
		authed.GET("/history/:player", handler.GetPlayerHistory)
		authed.GET("/tokens", handler.GetTokens)
		authed.GET("/stats", handler.GetStats)
	}

	return router
}
