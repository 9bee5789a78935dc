package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/easycase/easycase/internal/auth"
	"github.com/easycase/easycase/internal/database"
)

// Signup registers a practitioner account and returns a token plus a snapshot
// of the new user.
func (h *Handlers) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" {
		badRequest(c, "name is required")
		return
	}
	if req.Email == "" {
		badRequest(c, "email is required")
		return
	}
	if req.Password == "" {
		badRequest(c, "password is required")
		return
	}

	ctx := c.Request.Context()

	var existing int64
	if err := h.db.WithContext(ctx).Model(&database.User{}).
		Where("email = ?", req.Email).Count(&existing).Error; err != nil {
		h.storeError(c, err)
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		h.storeError(c, err)
		return
	}

	user := &database.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.db.WithContext(ctx).Create(user).Error; err != nil {
		h.storeError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.logger.Info("account created", "userId", user.ID)

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userSnapshot(user),
	})
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password are indistinguishable.
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		badRequest(c, "email and password are required")
		return
	}

	var user database.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.storeError(c, err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userSnapshot(&user),
	})
}

func userSnapshot(u *database.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}
