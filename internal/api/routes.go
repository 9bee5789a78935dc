package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/easycase/easycase/internal/auth"
	"github.com/easycase/easycase/internal/config"
	"github.com/easycase/easycase/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, tokens *auth.Manager, logger *logger.Logger, cfg *config.Config) {
	h := NewHandlers(db, tokens, logger, cfg)

	// Health check
	router.GET("/health", h.HealthCheck)

	// Account routes, rate limited per client IP
	account := router.Group("/auth")
	account.Use(RateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	{
		account.POST("/signup", h.Signup)
		account.POST("/login", h.Login)
	}

	// Protected resource routes; every handler sees a resolved owner id
	api := router.Group("/api")
	api.Use(RequireAuth(tokens))
	{
		api.GET("/clients", h.ListClients)
		api.POST("/clients", h.CreateClient)
		api.GET("/clients/:id", h.GetClient)
		api.PUT("/clients/:id", h.UpdateClient)
		api.DELETE("/clients/:id", h.DeleteClient)

		api.GET("/cases", h.ListCases)
		api.POST("/cases", h.CreateCase)
		api.GET("/cases/:id", h.GetCase)
		api.PUT("/cases/:id", h.UpdateCase)
		api.DELETE("/cases/:id", h.DeleteCase)
		api.GET("/cases/:id/timeline", h.CaseTimeline)

		api.GET("/hearings", h.ListHearings)
		api.POST("/hearings", h.CreateHearing)
		api.GET("/hearings/:id", h.GetHearing)
		api.PUT("/hearings/:id", h.UpdateHearing)
		api.DELETE("/hearings/:id", h.DeleteHearing)
	}

	// 404 fallback
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
