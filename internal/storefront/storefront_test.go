package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/controller/override"
	"github.com/cartismo/default-theme/internal/db/models"
	"github.com/cartismo/default-theme/internal/modulesettings"
	"github.com/cartismo/default-theme/internal/theme"
)

type stubCatalog struct {
	err   error
	limit int
}

func (s *stubCatalog) FeaturedProducts(_ context.Context, _ uint64, limit int) ([]Product, error) {
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}

	return []Product{{ID: 1, Name: "Mug", Slug: "mug", Price: "9.90"}}, nil
}

func (s *stubCatalog) FeaturedCategories(context.Context, uint64) ([]Category, error) {
	if s.err != nil {
		return nil, s.err
	}

	return []Category{{ID: 2, Name: "Kitchen", Slug: "kitchen"}}, nil
}

func setup(t *testing.T, catalog Catalog) (*gorm.DB, *Presenter) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Store{}, &models.InstalledModule{}))
	require.NoError(t, db.Create(&[]models.Store{
		{ID: 1, Name: "Main", Domain: "shop.example.com", IsActive: true},
		{ID: 2, Name: "Outlet", Domain: "outlet.example.com", IsActive: true},
	}).Error)

	resolver, err := modulesettings.NewResolver(db, modulesettings.Definition[theme.Settings]{
		Slug:     theme.Slug,
		Defaults: theme.Defaults,
	})
	require.NoError(t, err)

	return db, NewPresenter(db, resolver, catalog)
}

func TestStoreForHost(t *testing.T) {
	_, p := setup(t, nil)
	ctx := context.Background()

	testCases := []struct {
		name       string
		host       string
		fallback   uint64
		expectedID uint64
	}{
		{name: "domain match", host: "outlet.example.com", fallback: 1, expectedID: 2},
		{name: "unknown host falls back", host: "localhost:8080", fallback: 1, expectedID: 1},
		{name: "empty host falls back", host: "", fallback: 2, expectedID: 2},
		{name: "no fallback", host: "localhost", fallback: 0},
		{name: "missing fallback", host: "localhost", fallback: 99},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := p.StoreForHost(ctx, tc.host, tc.fallback)
			require.NoError(t, err)

			if tc.expectedID == 0 {
				assert.Nil(t, s)
				return
			}

			require.NotNil(t, s)
			assert.Equal(t, tc.expectedID, s.ID)
		})
	}
}

func TestRenderHomeDefaults(t *testing.T) {
	_, p := setup(t, nil)

	page, err := p.RenderHome(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, page.Store)
	assert.Equal(t, theme.Defaults(), page.Settings)
	assert.True(t, page.Enabled)
	assert.NotNil(t, page.Products)
	assert.Empty(t, page.Products)
	// sliders table does not exist
	assert.NotNil(t, page.Sliders)
	assert.Empty(t, page.Sliders)
}

func TestRenderHomeUsesStoreOverride(t *testing.T) {
	db, p := setup(t, nil)
	require.NoError(t, db.AutoMigrate(&models.Slider{}))
	require.NoError(t, db.Create(&models.Slider{Name: "Hero", Slug: "hero", Location: "homepage", IsActive: true}).Error)

	_, err := override.Set(db, theme.Slug, 2, false, []byte(`{"homepage":{"products_per_row":3}}`))
	require.NoError(t, err)

	outlet := &models.Store{ID: 2}
	page, err := p.RenderHome(context.Background(), outlet)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Settings.Homepage.ProductsPerRow)
	assert.False(t, page.Enabled)
	require.Len(t, page.Sliders, 1)
	assert.Equal(t, "hero", page.Sliders[0].Slug)

	primary := &models.Store{ID: 1}
	page, err = p.RenderHome(context.Background(), primary)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Settings.Homepage.ProductsPerRow)
	assert.True(t, page.Enabled)
}

func TestRenderHomeSkipsSlidersWhenDisabled(t *testing.T) {
	db, p := setup(t, nil)
	require.NoError(t, db.AutoMigrate(&models.Slider{}))
	require.NoError(t, db.Create(&models.Slider{Name: "Hero", IsActive: true}).Error)

	_, err := override.Set(db, theme.Slug, 1, true, []byte(`{"homepage":{"show_slider":false}}`))
	require.NoError(t, err)

	page, err := p.RenderHome(context.Background(), &models.Store{ID: 1})
	require.NoError(t, err)
	assert.Empty(t, page.Sliders)
}

func TestRenderHomeCatalog(t *testing.T) {
	catalog := &stubCatalog{}
	_, p := setup(t, catalog)

	page, err := p.RenderHome(context.Background(), &models.Store{ID: 1})
	require.NoError(t, err)

	assert.Equal(t, 8, catalog.limit)
	require.Len(t, page.Products, 1)
	require.Len(t, page.Categories, 1)

	catalog.err = errors.New("catalog down")
	page, err = p.RenderHome(context.Background(), &models.Store{ID: 1})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Empty(t, page.Categories)
}
