package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/easycase/easycase/internal/database"
	"github.com/easycase/easycase/internal/store"
)

// maxHearings caps every hearing listing.
const maxHearings = 200

// ListHearings returns the owner's hearings in date order, optionally
// restricted to one case and/or an inclusive date range. With no caseId the
// list covers all of the owner's hearings, still capped and date-filtered.
func (h *Handlers) ListHearings(c *gin.Context) {
	scopes := []store.Scope{
		store.OrderBy("date ASC"),
		store.Limit(maxHearings),
	}
	if caseID := c.Query("caseId"); caseID != "" {
		scopes = append(scopes, store.Eq("case_id", caseID))
	}
	if from := c.Query("from"); from != "" {
		t, err := parseTimestamp(from)
		if err != nil {
			badRequest(c, "invalid from")
			return
		}
		scopes = append(scopes, store.GTE("date", t))
	}
	if to := c.Query("to"); to != "" {
		t, err := parseTimestamp(to)
		if err != nil {
			badRequest(c, "invalid to")
			return
		}
		scopes = append(scopes, store.LTE("date", t))
	}

	hearings, err := h.hearings.FindOwned(c.Request.Context(), OwnerID(c), scopes...)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hearings)
}

// CreateHearing validates the case reference against the owner's cases, then
// stores the hearing.
func (h *Handlers) CreateHearing(c *gin.Context) {
	var req struct {
		CaseID   string     `json:"caseId"`
		Date     *time.Time `json:"date"`
		Venue    string     `json:"venue"`
		Notes    string     `json:"notes"`
		Outcome  string     `json:"outcome"`
		NextDate *time.Time `json:"nextDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.CaseID == "" {
		badRequest(c, "caseId is required")
		return
	}
	if req.Date == nil {
		badRequest(c, "date is required")
		return
	}

	owner := OwnerID(c)
	ctx := c.Request.Context()

	ok, err := h.cases.ExistsOwned(ctx, owner, req.CaseID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	if !ok {
		badRequest(c, "Invalid caseId")
		return
	}

	hearing := &database.Hearing{
		CaseID:   req.CaseID,
		Date:     *req.Date,
		Venue:    req.Venue,
		Notes:    req.Notes,
		Outcome:  req.Outcome,
		NextDate: req.NextDate,
	}
	if err := h.hearings.CreateOwned(ctx, owner, hearing); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hearing)
}

// GetHearing fetches one hearing scoped to the owner.
func (h *Handlers) GetHearing(c *gin.Context) {
	hearing, err := h.hearings.GetOwned(c.Request.Context(), OwnerID(c), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hearing)
}

// UpdateHearing applies a partial update. The case reference is re-validated
// only when the payload carries caseId.
func (h *Handlers) UpdateHearing(c *gin.Context) {
	var req struct {
		CaseID   *string    `json:"caseId"`
		Date     *time.Time `json:"date"`
		Venue    *string    `json:"venue"`
		Notes    *string    `json:"notes"`
		Outcome  *string    `json:"outcome"`
		NextDate *time.Time `json:"nextDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	owner := OwnerID(c)
	ctx := c.Request.Context()
	fields := map[string]interface{}{}

	if req.CaseID != nil {
		ok, err := h.cases.ExistsOwned(ctx, owner, *req.CaseID)
		if err != nil {
			h.storeError(c, err)
			return
		}
		if !ok {
			badRequest(c, "Invalid caseId")
			return
		}
		fields["case_id"] = *req.CaseID
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Venue != nil {
		fields["venue"] = *req.Venue
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Outcome != nil {
		fields["outcome"] = *req.Outcome
	}
	if req.NextDate != nil {
		fields["next_date"] = *req.NextDate
	}

	hearing, err := h.hearings.UpdateOwned(ctx, owner, c.Param("id"), fields)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hearing)
}

// DeleteHearing removes one hearing scoped to the owner.
func (h *Handlers) DeleteHearing(c *gin.Context) {
	if err := h.hearings.DeleteOwned(c.Request.Context(), OwnerID(c), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
