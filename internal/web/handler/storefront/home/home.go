// Package home serves the storefront homepage.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/auth"
	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/provider"
	"github.com/cartismo/default-theme/internal/storefront"
	"github.com/cartismo/default-theme/internal/web/handler"
	authmiddleware "github.com/cartismo/default-theme/internal/web/middleware/auth"
)

const (
	// Path is the homepage route.
	Path = handler.RootPath

	// TemplateName is the name of the homepage template.
	TemplateName = "frontend/home"
)

// Service is the homepage handler service.
type Service struct {
	// Provider supplies the homepage presenter and must be set before Init.
	Provider *provider.Provider

	cfg       *config.Config
	presenter *storefront.Presenter
}

// Handler is the homepage handler.
var Handler = Service{}

// Init registers the homepage route when the storefront is enabled.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB, _ *auth.Service) error {
	if app == nil || cfg == nil || db == nil || s.Provider == nil {
		return handler.ErrNilACD
	}

	if !cfg.Theme.StorefrontEnabled {
		log.Info().Msg("storefront routes disabled")
		return nil
	}

	s.cfg = cfg
	s.presenter = s.Provider.Presenter

	app.Get(Path, s.Get)

	return nil
}

// Get renders the homepage of the store serving the request host.
func (s *Service) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	store, err := s.presenter.StoreForHost(ctx, c.Hostname(), s.cfg.Theme.DefaultStoreID)
	if err != nil {
		log.Error().Err(err).Str("host", c.Hostname()).Msg("failed to resolve store")
		return err
	}

	page, err := s.presenter.RenderHome(ctx, store)
	if err != nil {
		log.Error().Err(err).Msg("failed to build homepage")
		return err
	}

	if authmiddleware.WantsJSON(c) {
		return c.JSON(page)
	}

	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
		"Page":  page,
	}, handler.BaseLayout)
}
