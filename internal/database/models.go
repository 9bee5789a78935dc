package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status values
const (
	CaseStatusOpen    = "open"
	CaseStatusPending = "pending"
	CaseStatusClosed  = "closed"
)

// IsValidCaseStatus reports whether status is one of the known case states.
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusOpen, CaseStatusPending, CaseStatusClosed:
		return true
	}
	return false
}

// User is a practitioner account. Every Client, Case and Hearing row belongs
// to exactly one User.
type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Client struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;index"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	District  string    `json:"district,omitempty"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Case references a Client owned by the same User; the handlers enforce that
// invariant before every write that sets ClientID.
type Case struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string    `json:"userId" gorm:"type:uuid;not null;index"`
	ClientID   string    `json:"clientId" gorm:"type:uuid;not null;index"`
	Title      string    `json:"title" gorm:"not null"`
	Number     string    `json:"number,omitempty"`
	Type       string    `json:"type,omitempty"`
	CourtType  string    `json:"courtType,omitempty"`
	CourtPlace string    `json:"courtPlace,omitempty"`
	Status     string    `json:"status" gorm:"not null;default:open"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Hearing references a Case owned by the same User. Date is stored as an
// opaque instant; NextDate is the optional adjournment date used for the
// next-hearing computation.
type Hearing struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null;index"`
	CaseID    string     `json:"caseId" gorm:"type:uuid;not null;index"`
	Date      time.Time  `json:"date" gorm:"not null;index"`
	Venue     string     `json:"venue,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Outcome   string     `json:"outcome,omitempty"`
	NextDate  *time.Time `json:"nextDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = CaseStatusOpen
	}
	return nil
}

func (h *Hearing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// SetOwner implements store.Owned for each tenant-scoped record.

func (c *Client) SetOwner(id string) { c.UserID = id }

func (c *Case) SetOwner(id string) { c.UserID = id }

func (h *Hearing) SetOwner(id string) { h.UserID = id }

func (User) TableName() string {
	return "users"
}

func (Client) TableName() string {
	return "clients"
}

func (Case) TableName() string {
	return "cases"
}

func (Hearing) TableName() string {
	return "hearings"
}
