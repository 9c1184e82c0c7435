package override

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/models"
)

const testSlug = "default-theme"

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.InstalledModule{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, testSlug, 7, true, []byte(`{"homepage":{"products_per_row":3}}`))
	require.NoError(t, err)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		slug          string
		storeID       uint64
		expectedError error
	}{
		{name: "nil database", dbParam: nil, slug: testSlug, storeID: 7, expectedError: ErrDBNil},
		{name: "empty slug", dbParam: db, slug: "", storeID: 7, expectedError: ErrSlugEmpty},
		{name: "other store", dbParam: db, slug: testSlug, storeID: 9, expectedError: ErrOverrideNotFound},
		{name: "other module", dbParam: db, slug: "slider", storeID: 7, expectedError: ErrOverrideNotFound},
		{name: "found", dbParam: db, slug: testSlug, storeID: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := Get(tc.dbParam, tc.slug, tc.storeID)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, record)

				return
			}

			require.NoError(t, err)
			assert.True(t, record.IsEnabled)
			assert.JSONEq(t, `{"homepage":{"products_per_row":3}}`, string(record.Settings))
		})
	}
}

func TestSetUpsertsSingleRow(t *testing.T) {
	db := setupTestDB(t)

	first, err := Set(db, testSlug, 7, true, []byte(`{"colors":{"primary":"#000000"}}`))
	require.NoError(t, err)

	second, err := Set(db, testSlug, 7, false, []byte(`{"colors":{"primary":"#FFFFFF"}}`))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.IsEnabled)
	assert.JSONEq(t, `{"colors":{"primary":"#FFFFFF"}}`, string(second.Settings))

	var count int64
	require.NoError(t, db.Model(&models.InstalledModule{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetEmptySettings(t *testing.T) {
	db := setupTestDB(t)

	record, err := Set(db, testSlug, 1, true, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(record.Settings))
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, testSlug, 7, true, nil)
	require.NoError(t, err)
	_, err = Set(db, testSlug, 9, false, nil)
	require.NoError(t, err)
	_, err = Set(db, "slider", 7, true, nil)
	require.NoError(t, err)

	all, err := GetAll(db, testSlug)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[7].IsEnabled)
	assert.False(t, all[9].IsEnabled)

	_, err = GetAll(nil, testSlug)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Set(db, testSlug, 7, true, nil)
	require.NoError(t, err)

	require.NoError(t, Delete(db, testSlug, 7))
	require.ErrorIs(t, Delete(db, testSlug, 7), ErrOverrideNotFound)
	require.ErrorIs(t, Delete(db, "", 7), ErrSlugEmpty)
}
