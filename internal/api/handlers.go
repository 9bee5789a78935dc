package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/easycase/easycase/internal/auth"
	"github.com/easycase/easycase/internal/config"
	"github.com/easycase/easycase/internal/database"
	"github.com/easycase/easycase/internal/store"
	"github.com/easycase/easycase/pkg/logger"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	db        *gorm.DB
	tokens    *auth.Manager
	logger    *logger.Logger
	cfg       *config.Config
	clients   *store.Scoped[database.Client]
	cases     *store.Scoped[database.Case]
	hearings  *store.Scoped[database.Hearing]
	caseViews *store.CaseViews
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, tokens *auth.Manager, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:        db,
		tokens:    tokens,
		logger:    logger,
		cfg:       cfg,
		clients:   store.NewScoped[database.Client](db),
		cases:     store.NewScoped[database.Case](db),
		hearings:  store.NewScoped[database.Hearing](db),
		caseViews: store.NewCaseViews(db),
	}
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// badRequest renders a 400 with a field-specific message.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// notFound renders the uniform 404 body; absent rows and foreign-owner rows
// are indistinguishable to the caller.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// storeError maps store failures onto the error taxonomy: scoped misses
// become 404, anything else is logged and surfaces as a generic 500.
func (h *Handlers) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		notFound(c)
		return
	}
	h.logger.Error("store operation failed",
		"error", err,
		"method", c.Request.Method,
		"path", c.FullPath(),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// parseTimestamp accepts RFC3339 instants and bare dates (YYYY-MM-DD).
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
