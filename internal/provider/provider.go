// Package provider assembles the theme's settings services on top of a
// database handle.
package provider

import (
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/modulesettings"
	"github.com/cartismo/default-theme/internal/storefront"
	"github.com/cartismo/default-theme/internal/theme"
)

// Definition returns the settings definition of the default theme.
func Definition() modulesettings.Definition[theme.Settings] {
	return modulesettings.Definition[theme.Settings]{
		Slug:      theme.Slug,
		Manifest:  theme.DefaultManifest(),
		Defaults:  theme.Defaults,
		Validator: theme.NewValidator(),
	}
}

// Provider bundles the services built around the theme settings.
type Provider struct {
	Resolver  *modulesettings.Resolver[theme.Settings]
	Editor    *modulesettings.Editor[theme.Settings]
	Presenter *storefront.Presenter
}

// New builds the theme services. A nil catalog renders homepages without
// products or categories.
func New(db *gorm.DB, catalog storefront.Catalog) (*Provider, error) {
	resolver, err := modulesettings.NewResolver(db, Definition())
	if err != nil {
		return nil, err
	}

	return &Provider{
		Resolver:  resolver,
		Editor:    modulesettings.NewEditor(resolver),
		Presenter: storefront.NewPresenter(db, resolver, catalog),
	}, nil
}
