// Package override provides persistence for per-store module overrides.
package override

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cartismo/default-theme/internal/db/models"
)

const (
	slugStoreQueryPattern = "slug = ? AND store_id = ?"
)

var (
	// ErrOverrideNotFound is returned when no override exists for a module and store.
	ErrOverrideNotFound = errors.New("module override not found")
	// ErrSlugEmpty is returned when a module slug is empty.
	ErrSlugEmpty = errors.New("module slug cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the override of module slug for a store.
func Get(db *gorm.DB, slug string, storeID uint64) (*models.InstalledModule, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if slug == "" {
		return nil, ErrSlugEmpty
	}

	var record models.InstalledModule
	result := db.Where(slugStoreQueryPattern, slug, storeID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, result.Error
	}

	return &record, nil
}

// GetAll retrieves every override of module slug keyed by store id.
func GetAll(db *gorm.DB, slug string) (map[uint64]models.InstalledModule, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if slug == "" {
		return nil, ErrSlugEmpty
	}

	var records []models.InstalledModule
	result := db.Where("slug = ?", slug).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[uint64]models.InstalledModule, len(records))
	for _, r := range records {
		out[r.StoreID] = r
	}

	return out, nil
}

// Set creates or updates the override of module slug for a store in a single
// statement, relying on the (slug, store_id) unique index.
func Set(db *gorm.DB, slug string, storeID uint64, enabled bool, settings []byte) (*models.InstalledModule, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if slug == "" {
		return nil, ErrSlugEmpty
	}

	if len(settings) == 0 {
		settings = []byte("{}")
	}

	record := &models.InstalledModule{
		Slug:      slug,
		StoreID:   storeID,
		IsEnabled: enabled,
		Settings:  datatypes.JSON(settings),
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}, {Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_enabled", "settings", "updated_at"}),
	}).Create(record)
	if result.Error != nil {
		return nil, result.Error
	}

	// the primary key returned by an upsert is not reliable across drivers
	return Get(db, slug, storeID)
}

// Delete removes the override of module slug for a store.
func Delete(db *gorm.DB, slug string, storeID uint64) error {
	if db == nil {
		return ErrDBNil
	}
	if slug == "" {
		return ErrSlugEmpty
	}

	result := db.Where(slugStoreQueryPattern, slug, storeID).Delete(&models.InstalledModule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}
