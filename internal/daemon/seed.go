package daemon

import (
	"gorm.io/gorm"

	"github.com/rs/zerolog/log"

	"github.com/cartismo/default-theme/internal/auth"
	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/db/models"
)

const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "changeme"
	defaultAdminEmail    = "admin@localhost"
)

// seed creates permissions, the admin role, a first admin user and a
// default store on an empty database. Existing rows are left alone.
func seed(cfg *config.Config, db *gorm.DB) error {
	for _, p := range auth.Permissions {
		perm := models.Permission{Name: p.Name}
		if err := db.Where(&perm).Attrs(models.Permission{
			Resource:    p.Resource,
			Action:      p.Action,
			Description: p.Description,
		}).FirstOrCreate(&perm).Error; err != nil {
			return err
		}
	}

	role := models.Role{Name: auth.RoleAdmin}
	if err := db.Where(&role).Attrs(models.Role{
		Description: "Full access to the theme administration",
		IsSystem:    true,
	}).FirstOrCreate(&role).Error; err != nil {
		return err
	}

	names := make([]string, 0, len(auth.Permissions))
	for _, p := range auth.Permissions {
		names = append(names, p.Name)
	}

	if err := auth.NewService(db).GrantPermissions(role.ID, names...); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		if _, err := auth.NewLocalProvider(db).CreateUser(
			defaultAdminUser, defaultAdminEmail, defaultAdminPassword, role.ID,
		); err != nil {
			return err
		}

		log.Warn().Str("username", defaultAdminUser).Msg("created default admin user, change its password")
	}

	if err := db.Model(&models.Store{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 && cfg.Theme.DefaultStoreID != 0 {
		if err := db.Create(&models.Store{
			ID:       cfg.Theme.DefaultStoreID,
			Name:     cfg.Title,
			IsActive: true,
		}).Error; err != nil {
			return err
		}

		log.Info().Uint64("store_id", cfg.Theme.DefaultStoreID).Msg("created default store")
	}

	return nil
}
