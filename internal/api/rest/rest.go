package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-goblet/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Gemstone endpoints
		v1.GET("/gemstones/:token_id", handler.GetGemstone)
		v1.POST("/gemstones/whitelist", auth, handler.AdmitToWhitelist)
		v1.POST("/gemstones/mint", auth, handler.MintGemstone)
		v1.POST("/gemstones/transfer", auth, handler.TransferGemstone)

		// Goblet endpoints
		v1.GET("/goblets", handler.GetGobletStatus)
		v1.GET("/goblets/:token_id", handler.GetGoblet)
		v1.POST("/goblets/mint", auth, handler.MintGoblet)
		v1.POST("/goblets/owner-mint", auth, handler.OwnerMintGoblet)
		v1.PUT("/goblets/cid", auth, handler.UpdateGobletCID)

		// Account endpoints (public read access)
		v1.GET("/accounts/:address/gemstones", handler.GetGemstoneHoldings)
		v1.GET("/accounts/:address/goblets", handler.GetGobletHoldings)
		v1.GET("/accounts/:address/eligibility", handler.GetEligibility)

		// Ledger event endpoints (public read access)
		v1.GET("/events", handler.ListEvents)
	}
}
