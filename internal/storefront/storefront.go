// Package storefront builds the shopper facing page models of the theme.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/controller/slider"
	"github.com/cartismo/default-theme/internal/db/controller/store"
	"github.com/cartismo/default-theme/internal/db/models"
	"github.com/cartismo/default-theme/internal/metrics"
	"github.com/cartismo/default-theme/internal/modulesettings"
	"github.com/cartismo/default-theme/internal/theme"
)

// Product is a catalog entry shown on the homepage.
type Product struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// Category is a catalog category shown on the homepage.
type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Catalog supplies products and categories. It is provided by the host
// platform; EmptyCatalog is used when none is wired.
type Catalog interface {
	FeaturedProducts(ctx context.Context, storeID uint64, limit int) ([]Product, error)
	FeaturedCategories(ctx context.Context, storeID uint64) ([]Category, error)
}

// EmptyCatalog returns no products and no categories.
type EmptyCatalog struct{}

// FeaturedProducts implements Catalog.
func (EmptyCatalog) FeaturedProducts(context.Context, uint64, int) ([]Product, error) {
	return []Product{}, nil
}

// FeaturedCategories implements Catalog.
func (EmptyCatalog) FeaturedCategories(context.Context, uint64) ([]Category, error) {
	return []Category{}, nil
}

// HomePage is the model rendered by the homepage template.
type HomePage struct {
	Store      *models.Store   `json:"store"`
	Settings   theme.Settings  `json:"settings"`
	Enabled    bool            `json:"is_enabled"`
	Products   []Product       `json:"products"`
	Categories []Category      `json:"categories"`
	Sliders    []models.Slider `json:"sliders"`
}

// Presenter assembles storefront pages.
type Presenter struct {
	db       *gorm.DB
	resolver *modulesettings.Resolver[theme.Settings]
	catalog  Catalog
}

// NewPresenter returns a presenter. A nil catalog selects EmptyCatalog.
func NewPresenter(db *gorm.DB, resolver *modulesettings.Resolver[theme.Settings], catalog Catalog) *Presenter {
	if catalog == nil {
		catalog = EmptyCatalog{}
	}

	return &Presenter{db: db, resolver: resolver, catalog: catalog}
}

// StoreForHost returns the active store serving host, or the store with
// fallbackID when no store claims the host. A nil store means neither exists.
func (p *Presenter) StoreForHost(ctx context.Context, host string, fallbackID uint64) (*models.Store, error) {
	db := p.db.WithContext(ctx)

	s, err := store.GetByDomain(db, host)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, store.ErrStoreNotFound) && !errors.Is(err, store.ErrDomainEmpty) {
		return nil, err
	}

	if fallbackID == 0 {
		return nil, nil
	}

	s, err = store.Get(db, fallbackID)
	if errors.Is(err, store.ErrStoreNotFound) {
		return nil, nil
	}

	return s, err
}

// RenderHome builds the homepage model for s. A nil store renders the
// default settings without store specific data.
func (p *Presenter) RenderHome(ctx context.Context, s *models.Store) (HomePage, error) {
	start := time.Now()

	page := HomePage{
		Store:      s,
		Enabled:    modulesettings.DefaultEnabled,
		Products:   []Product{},
		Categories: []Category{},
		Sliders:    []models.Slider{},
	}

	var storeID uint64

	if s == nil {
		page.Settings = p.resolver.Defaults()
	} else {
		storeID = s.ID

		resolved, err := p.resolver.ResolveStore(ctx, s.ID)
		if err != nil {
			return HomePage{}, fmt.Errorf("resolve theme settings: %w", err)
		}

		page.Settings = resolved.Settings
		page.Enabled = resolved.Enabled
	}

	metrics.SettingsResolveDuration.Observe(time.Since(start).Seconds())

	home := page.Settings.Homepage

	if home.ShowFeaturedProducts {
		products, err := p.catalog.FeaturedProducts(ctx, storeID, home.FeaturedProductsLimit)
		if err != nil {
			log.Warn().Err(err).Uint64("store_id", storeID).Msg("failed to load featured products")
		} else if products != nil {
			page.Products = products
		}
	}

	if home.ShowFeaturedCategories {
		categories, err := p.catalog.FeaturedCategories(ctx, storeID)
		if err != nil {
			log.Warn().Err(err).Uint64("store_id", storeID).Msg("failed to load featured categories")
		} else if categories != nil {
			page.Categories = categories
		}
	}

	if home.ShowSlider {
		page.Sliders = slider.ListActive(p.db.WithContext(ctx))
	}

	metrics.HomepageRenders.Inc()

	return page, nil
}
