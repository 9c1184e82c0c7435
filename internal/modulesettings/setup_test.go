package modulesettings

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/models"
	"github.com/cartismo/default-theme/internal/theme"
)

// setupTestDB creates an in-memory SQLite database with stores 7 and 9.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Store{}, &models.InstalledModule{}))

	require.NoError(t, db.Create(&[]models.Store{
		{ID: 7, Name: "Seven", Domain: "seven.example.com", IsActive: true},
		{ID: 9, Name: "Nine", Domain: "nine.example.com", IsActive: true},
	}).Error)

	return db
}

func themeDefinition() Definition[theme.Settings] {
	return Definition[theme.Settings]{
		Slug:      theme.Slug,
		Manifest:  theme.DefaultManifest(),
		Defaults:  theme.Defaults,
		Validator: theme.NewValidator(),
	}
}

func setupEditor(t *testing.T) (*gorm.DB, *Resolver[theme.Settings], *Editor[theme.Settings]) {
	t.Helper()

	db := setupTestDB(t)

	resolver, err := NewResolver(db, themeDefinition())
	require.NoError(t, err)

	return db, resolver, NewEditor(resolver)
}
