package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/easycase/easycase/internal/database"
	"github.com/easycase/easycase/internal/store"
	"github.com/easycase/easycase/internal/timeline"
)

// ListCases returns the owner's cases, newest first, with each referenced
// client's name joined in at read time. Optional filters: ?q= substring over
// title/number, exact courtType and courtPlace.
func (h *Handlers) ListCases(c *gin.Context) {
	scopes := []store.Scope{store.OrderBy("created_at DESC")}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		scopes = append(scopes, store.TextSearch(q, "title", "number"))
	}
	if v := c.Query("courtType"); v != "" {
		scopes = append(scopes, store.Eq("court_type", v))
	}
	if v := c.Query("courtPlace"); v != "" {
		scopes = append(scopes, store.Eq("court_place", v))
	}

	items, err := h.caseViews.FindWithClientName(c.Request.Context(), OwnerID(c), scopes...)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateCase validates the client reference against the owner's clients, then
// stores the case.
func (h *Handlers) CreateCase(c *gin.Context) {
	var req struct {
		Title      string `json:"title"`
		ClientID   string `json:"clientId"`
		Number     string `json:"number"`
		Type       string `json:"type"`
		CourtType  string `json:"courtType"`
		CourtPlace string `json:"courtPlace"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		badRequest(c, "title is required")
		return
	}
	if req.ClientID == "" {
		badRequest(c, "clientId is required")
		return
	}
	if req.Status != "" && !database.IsValidCaseStatus(req.Status) {
		badRequest(c, "invalid status")
		return
	}

	owner := OwnerID(c)
	ctx := c.Request.Context()

	ok, err := h.clients.ExistsOwned(ctx, owner, req.ClientID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	if !ok {
		badRequest(c, "Invalid clientId")
		return
	}

	kase := &database.Case{
		Title:      req.Title,
		ClientID:   req.ClientID,
		Number:     req.Number,
		Type:       req.Type,
		CourtType:  req.CourtType,
		CourtPlace: req.CourtPlace,
		Status:     req.Status,
	}
	if err := h.cases.CreateOwned(ctx, owner, kase); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, kase)
}

// GetCase fetches one case with its client name attached.
func (h *Handlers) GetCase(c *gin.Context) {
	view, err := h.caseViews.GetWithClientName(c.Request.Context(), OwnerID(c), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateCase applies a partial update. The client reference is re-validated
// only when the payload carries clientId.
func (h *Handlers) UpdateCase(c *gin.Context) {
	var req struct {
		Title      *string `json:"title"`
		ClientID   *string `json:"clientId"`
		Number     *string `json:"number"`
		Type       *string `json:"type"`
		CourtType  *string `json:"courtType"`
		CourtPlace *string `json:"courtPlace"`
		Status     *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	owner := OwnerID(c)
	ctx := c.Request.Context()
	fields := map[string]interface{}{}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			badRequest(c, "title is required")
			return
		}
		fields["title"] = *req.Title
	}
	if req.ClientID != nil {
		ok, err := h.clients.ExistsOwned(ctx, owner, *req.ClientID)
		if err != nil {
			h.storeError(c, err)
			return
		}
		if !ok {
			badRequest(c, "Invalid clientId")
			return
		}
		fields["client_id"] = *req.ClientID
	}
	if req.Status != nil {
		if !database.IsValidCaseStatus(*req.Status) {
			badRequest(c, "invalid status")
			return
		}
		fields["status"] = *req.Status
	}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.CourtType != nil {
		fields["court_type"] = *req.CourtType
	}
	if req.CourtPlace != nil {
		fields["court_place"] = *req.CourtPlace
	}

	kase, err := h.cases.UpdateOwned(ctx, owner, c.Param("id"), fields)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, kase)
}

// DeleteCase removes a case and its hearings in one transaction.
func (h *Handlers) DeleteCase(c *gin.Context) {
	owner := OwnerID(c)
	id := c.Param("id")
	ctx := c.Request.Context()

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := h.cases.WithTx(tx).DeleteOwned(ctx, owner, id); err != nil {
			return err
		}
		_, err := h.hearings.WithTx(tx).DeleteOwnedWhere(ctx, owner, store.Eq("case_id", id))
		return err
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CaseTimeline returns the rendered timeline entries and the computed next
// hearing for one case.
func (h *Handlers) CaseTimeline(c *gin.Context) {
	owner := OwnerID(c)
	id := c.Param("id")
	ctx := c.Request.Context()

	kase, err := h.cases.GetOwned(ctx, owner, id)
	if err != nil {
		h.storeError(c, err)
		return
	}

	rows, err := h.hearings.FindOwned(ctx, owner,
		store.Eq("case_id", id),
		store.OrderBy("date ASC"),
		store.Limit(maxHearings),
	)
	if err != nil {
		h.storeError(c, err)
		return
	}

	hearings := make([]timeline.Hearing, 0, len(rows))
	for _, r := range rows {
		hearings = append(hearings, timeline.Hearing{
			Date:     r.Date,
			NextDate: r.NextDate,
			Venue:    r.Venue,
			Notes:    r.Notes,
			Outcome:  r.Outcome,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":     timeline.Build(kase.CreatedAt, hearings),
		"nextHearing": timeline.NextHearing(hearings, time.Now()),
	})
}
