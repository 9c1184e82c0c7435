// Package slider reads homepage sliders owned by the slider module. The
// sliders table is optional.
package slider

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// ListActive returns the active sliders ordered by name. A missing table or
// a failed query yields an empty list.
func ListActive(db *gorm.DB) []models.Slider {
	sliders := make([]models.Slider, 0)

	if db == nil {
		log.Warn().Err(ErrDBNil).Msg("slider lookup skipped")
		return sliders
	}

	if !db.Migrator().HasTable(&models.Slider{}) {
		log.Debug().Msg("sliders table not present, returning no sliders")
		return sliders
	}

	if err := db.Where("is_active = ?", true).Order("name").Find(&sliders).Error; err != nil {
		log.Warn().Err(err).Msg("failed to list sliders")
		return make([]models.Slider, 0)
	}

	return sliders
}
