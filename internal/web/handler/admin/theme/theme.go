// Package theme provides the admin handlers for per-store theme settings.
package theme

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/auth"
	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/db/controller/slider"
	"github.com/cartismo/default-theme/internal/db/models"
	"github.com/cartismo/default-theme/internal/metrics"
	"github.com/cartismo/default-theme/internal/modulesettings"
	"github.com/cartismo/default-theme/internal/provider"
	themesettings "github.com/cartismo/default-theme/internal/theme"
	"github.com/cartismo/default-theme/internal/web/handler"
)

const (
	// RelPath is the settings route relative to the admin group.
	RelPath = "/modules/themes/" + themesettings.Slug + "/settings"

	// Path is the absolute path of the settings route.
	Path = handler.AdminPath + RelPath

	invalidDataMessage = "The given data was invalid."
)

// Page is the payload of the settings screen.
type Page struct {
	modulesettings.AdminData[themesettings.Settings]
	Sliders []models.Slider `json:"sliders"`
}

// Service is the theme settings handler service.
type Service struct {
	// Provider supplies the settings editor and must be set before Init.
	Provider *provider.Provider

	db     *gorm.DB
	editor *modulesettings.Editor[themesettings.Settings]
}

// Handler is the theme settings handler.
var Handler = Service{}

// Init registers the settings routes on the admin router.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || s.Provider == nil {
		return handler.ErrNilACD
	}

	s.db = db
	s.editor = s.Provider.Editor

	guard := auth.RequirePermission(authService, auth.PermAdminThemeSettings)

	app.Get(RelPath, guard, s.Get)
	app.Put(RelPath, guard, s.Put)
	// HTML forms cannot send PUT
	app.Post(RelPath, guard, s.Put)

	return nil
}

// Get returns the effective settings of every active store.
func (s *Service) Get(c *fiber.Ctx) error {
	data, err := s.editor.ListForAdmin(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("failed to list theme settings")
		return err
	}

	return c.JSON(Page{
		AdminData: data,
		Sliders:   slider.ListActive(s.db.WithContext(c.UserContext())),
	})
}

// Put saves the settings override of one store.
func (s *Service) Put(c *fiber.Ctx) error {
	in, err := parseInput(c)
	if err != nil {
		metrics.SettingsSaves.WithLabelValues(metrics.ResultInvalid).Inc()

		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": invalidDataMessage,
			"errors":  map[string][]string{"body": {"The request body must be a JSON object."}},
		})
	}

	result, err := s.editor.Save(c.UserContext(), in)
	if err != nil {
		if verr, ok := modulesettings.AsValidationError(err); ok {
			metrics.SettingsSaves.WithLabelValues(metrics.ResultInvalid).Inc()
			log.Info().Interface("errors", verr.Fields).Msg("theme settings rejected")

			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": invalidDataMessage,
				"errors":  verr.Fields,
			})
		}

		metrics.SettingsSaves.WithLabelValues(metrics.ResultError).Inc()
		log.Error().Err(err).Msg("failed to save theme settings")

		return err
	}

	metrics.SettingsSaves.WithLabelValues(metrics.ResultSaved).Inc()

	log.Info().
		Uint64("store_id", result.StoreID).
		Bool("is_enabled", result.Enabled).
		Msg("theme settings saved successfully")

	return c.Redirect(Path, fiber.StatusSeeOther)
}

// parseInput reads a JSON body or form fields into a save request.
func parseInput(c *fiber.Ctx) (modulesettings.SaveInput, error) {
	var in modulesettings.SaveInput

	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		err := json.Unmarshal(c.Body(), &in)
		return in, err
	}

	if v := c.FormValue("store_id"); v != "" {
		in.StoreID = json.RawMessage(strconv.Quote(v))
	}

	if v := c.FormValue("is_enabled"); v != "" {
		in.IsEnabled = formBool(v)
	}

	if v := c.FormValue("settings"); v != "" {
		if json.Valid([]byte(v)) {
			in.Settings = json.RawMessage(v)
		} else {
			in.Settings = json.RawMessage(strconv.Quote(v))
		}
	}

	return in, nil
}

// formBool maps form literals onto JSON; anything else stays a string and is
// rejected by the editor.
func formBool(v string) json.RawMessage {
	switch v {
	case "true", "false", "1", "0":
		return json.RawMessage(v)
	default:
		return json.RawMessage(strconv.Quote(v))
	}
}
