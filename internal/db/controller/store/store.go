// Package store provides read access to the host platform's stores.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/models"
)

var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDomainEmpty is returned when looking up a store by an empty domain.
	ErrDomainEmpty = errors.New("store domain cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a store by its ID.
func Get(db *gorm.DB, id uint64) (*models.Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.Store
	result := db.First(&s, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// Exists reports whether a store with the given ID exists.
func Exists(db *gorm.DB, id uint64) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Store{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// GetActive retrieves all active stores ordered by ID.
func GetActive(db *gorm.DB) ([]models.Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var stores []models.Store
	result := db.Where("is_active = ?", true).Order("id").Find(&stores)
	if result.Error != nil {
		return nil, result.Error
	}

	return stores, nil
}

// GetByDomain retrieves an active store by its domain. A port suffix on
// domain is ignored.
func GetByDomain(db *gorm.DB, domain string) (*models.Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	domain = strings.ToLower(strings.TrimSpace(domain))
	if host, _, found := strings.Cut(domain, ":"); found {
		domain = host
	}
	if domain == "" {
		return nil, ErrDomainEmpty
	}

	var s models.Store
	result := db.Where("domain = ? AND is_active = ?", domain, true).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}
