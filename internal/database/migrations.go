package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes. The existence check reads
// pg_indexes, so this runs only against PostgreSQL deployments.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task indexes for filtering and sorting
		{"tasks", "idx_tasks_deal_id", "deal_id"},
		{"tasks", "idx_tasks_status", "status"},
		{"tasks", "idx_tasks_task_type", "task_type"},
		{"tasks", "idx_tasks_due_date", "due_date"},
		{"tasks", "idx_tasks_created_at", "created_at"},

		// Counsel rows are always read per deal and role
		{"deal_counsels", "idx_deal_counsels_deal_role", "deal_id, role"},
		{"deal_counsels", "idx_deal_counsels_law_firm_id", "law_firm_id"},

		// Directory lookups
		{"attorneys", "idx_attorneys_law_firm_id", "law_firm_id"},
		{"deals", "idx_deals_company_id", "company_id"},
		{"deals", "idx_deals_status", "status"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
