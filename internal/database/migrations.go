package database

import (
	"fmt"

	"github.com/lucasmonteiro/occurrence-api/internal/models"
	"gorm.io/gorm"
)

func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Occurrence{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(DB); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}

// AddIndexes adds the indexes the listing and dashboard queries depend on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Owner listing is filtered by user_id and sorted by created_at.
		{"occurrences", "idx_occurrences_user_id_created_at", "user_id, created_at"},
		// Dashboard counts occurrences created since midnight.
		{"occurrences", "idx_occurrences_created_at", "created_at"},
		{"occurrences", "idx_occurrences_status", "status"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
