package models

import (
	"time"

	"gorm.io/datatypes"
)

// InstalledModule is the per-store record of a module: whether it is enabled
// for the store and which settings override its defaults. At most one row
// exists per (slug, store) pair.
type InstalledModule struct {
	ID uint64 `gorm:"primaryKey"`
	// Slug identifies the module, e.g. "default-theme".
	Slug    string `gorm:"size:100;not null;uniqueIndex:idx_module_store"`
	StoreID uint64 `gorm:"not null;uniqueIndex:idx_module_store"`
	// IsEnabled has no column default; gorm would skip a false value on insert.
	IsEnabled bool `gorm:"not null"`
	// Settings holds only the keys that differ from the module defaults.
	Settings  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for the InstalledModule model.
func (InstalledModule) TableName() string {
	return "installed_modules"
}
