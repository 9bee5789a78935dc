package database

import (
	"fmt"

	"gorm.io/gorm"
)

// createIndexes creates composite indexes for the owner-scoped queries
func createIndexes(db *gorm.DB) error {
	// Owner-scoped case listing sorts by creation time
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cases_owner_created
		ON cases(user_id, created_at)
	`).Error; err != nil {
		return fmt.Errorf("failed to create case index: %w", err)
	}

	// Hearing listings filter by owner, case and date range
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_hearings_owner_case_date
		ON hearings(user_id, case_id, date)
	`).Error; err != nil {
		return fmt.Errorf("failed to create hearing index: %w", err)
	}

	// Client search is always owner-scoped
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_clients_owner_name
		ON clients(user_id, name)
	`).Error; err != nil {
		return fmt.Errorf("failed to create client index: %w", err)
	}

	return nil
}
