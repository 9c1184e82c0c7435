// Package login provides HTTP handlers for administrator sign in.
package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/auth"
	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/web/handler"
	"github.com/cartismo/default-theme/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Service is the login handler service.
type Service struct {
	cfg       *config.Config
	provider  *auth.LocalProvider
	validator *validator.Validate
}

// Form is the submitted login form.
type Form struct {
	Username string `form:"username" json:"username" validate:"required,max=100"`
	Password string `form:"password" json:"password" validate:"required"`
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB, _ *auth.Service) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.provider = auth.NewLocalProvider(db)
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	if _, err := session.FromRequest(c); err == nil {
		return c.Redirect(handler.AdminHomePath)
	}

	return s.render(c, nil)
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		log.Debug().Err(err).Msg("failed to parse login form")
		return s.render(c, ErrInvalidFormData)
	}

	if err := s.validator.Struct(form); err != nil {
		return s.render(c, ErrInvalidFormData)
	}

	user, err := s.provider.Authenticate(form.Username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidPassword):
			log.Info().Str("username", form.Username).Msg("login failed: invalid credentials")
			return s.render(c, ErrInvalidCredentials)
		case errors.Is(err, auth.ErrUserAccountDisabled):
			log.Info().Str("username", form.Username).Msg("login failed: account disabled")
			return s.render(c, auth.ErrUserAccountDisabled)
		default:
			log.Error().Err(err).Msg("login failed")
			return s.render(c, ErrInternalServerError)
		}
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return s.render(c, ErrInternalServerError)
	}

	userSession := &session.Data{
		User: session.User{ID: user.ID, Username: user.Username},
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.render(c, ErrInternalServerError)
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}

	c.Cookie(cookieSettings)

	log.Info().Uint64("user_id", user.ID).Str("username", user.Username).Msg("user signed in")

	return c.Redirect(handler.AdminHomePath)
}

func (s *Service) render(c *fiber.Ctx, err error) error {
	data := fiber.Map{"title": s.cfg.Title}
	if err != nil {
		data["error"] = err.Error()
	}

	return c.Render(TemplateName, data)
}
