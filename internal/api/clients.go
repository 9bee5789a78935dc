package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/easycase/easycase/internal/database"
	"github.com/easycase/easycase/internal/store"
)

// ListClients returns the owner's clients, optionally filtered by a
// case-insensitive substring of name, email or phone.
func (h *Handlers) ListClients(c *gin.Context) {
	owner := OwnerID(c)

	scopes := []store.Scope{store.OrderBy("name ASC")}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		scopes = append(scopes, store.TextSearch(q, "name", "email", "phone"))
	}

	clients, err := h.clients.FindOwned(c.Request.Context(), owner, scopes...)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient stores a new client for the owner. Any ownerId in the payload
// is ignored; the store stamps the authenticated owner.
func (h *Handlers) CreateClient(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		District string `json:"district"`
		Type     string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		badRequest(c, "name is required")
		return
	}

	client := &database.Client{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		District: req.District,
		Type:     req.Type,
	}
	if err := h.clients.CreateOwned(c.Request.Context(), OwnerID(c), client); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClient fetches one client scoped to the owner.
func (h *Handlers) GetClient(c *gin.Context) {
	client, err := h.clients.GetOwned(c.Request.Context(), OwnerID(c), c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient applies a partial update; only fields present in the payload
// change.
func (h *Handlers) UpdateClient(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Phone    *string `json:"phone"`
		Address  *string `json:"address"`
		District *string `json:"district"`
		Type     *string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			badRequest(c, "name is required")
			return
		}
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.District != nil {
		fields["district"] = *req.District
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}

	client, err := h.clients.UpdateOwned(c.Request.Context(), OwnerID(c), c.Param("id"), fields)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. Deletion is restricted while any of the
// owner's cases still reference the client.
func (h *Handlers) DeleteClient(c *gin.Context) {
	owner := OwnerID(c)
	id := c.Param("id")
	ctx := c.Request.Context()

	dependents, err := h.cases.CountOwned(ctx, owner, store.Eq("client_id", id))
	if err != nil {
		h.storeError(c, err)
		return
	}
	if dependents > 0 {
		badRequest(c, "client has cases")
		return
	}

	if err := h.clients.DeleteOwned(ctx, owner, id); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
