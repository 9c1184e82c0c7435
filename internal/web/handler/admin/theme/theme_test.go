package theme

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/auth"
	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/db/models"
	"github.com/cartismo/default-theme/internal/provider"
	"github.com/cartismo/default-theme/internal/web/handler"
	"github.com/cartismo/default-theme/internal/web/session"
)

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	sessionID string
}

func setup(t *testing.T, withSliders bool) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Permission{}, &models.Role{}, &models.RolePermission{}, &models.User{},
		&models.Store{}, &models.InstalledModule{},
	))

	if withSliders {
		require.NoError(t, db.AutoMigrate(&models.Slider{}))
		require.NoError(t, db.Create(&[]models.Slider{
			{Name: "Zeta", Slug: "zeta", Location: "homepage", IsActive: true},
			{Name: "Alpha", Slug: "alpha", Location: "homepage", IsActive: true},
		}).Error)
	}

	require.NoError(t, db.Create(&[]models.Store{
		{ID: 7, Name: "Seven", Domain: "seven.example.com", IsActive: true},
		{ID: 9, Name: "Nine", Domain: "nine.example.com", IsActive: true},
	}).Error)

	perm := models.Permission{Name: auth.PermAdminThemeSettings, Resource: "admin.theme", Action: "settings"}
	role := models.Role{Name: auth.RoleAdmin}
	require.NoError(t, db.Create(&perm).Error)
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Create(&models.RolePermission{RoleID: role.ID, PermissionID: perm.ID}).Error)

	user, err := auth.NewLocalProvider(db).CreateUser("admin", "admin@example.com", "changeme", role.ID)
	require.NoError(t, err)

	session.Init(nil)

	sessionID, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{User: session.User{ID: user.ID, Username: user.Username}}).Write(sessionID, time.Minute))

	app := fiber.New()
	admin := app.Group(handler.AdminPath)

	p, err := provider.New(db, nil)
	require.NoError(t, err)

	s := Service{Provider: p}
	require.NoError(t, s.Init(admin, &config.Config{}, db, auth.NewService(db)))

	return testEnv{app: app, db: db, sessionID: sessionID}
}

func (e testEnv) do(t *testing.T, method, contentType, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, Path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: e.sessionID})

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

type pageResponse struct {
	Module        map[string]any `json:"module"`
	Defaults      map[string]any `json:"defaults"`
	Stores        []models.Store `json:"stores"`
	StoreSettings []struct {
		Store      models.Store              `json:"store"`
		StoreID    uint64                    `json:"store_id"`
		IsEnabled  bool                      `json:"is_enabled"`
		Overridden bool                      `json:"overridden"`
		Settings   map[string]map[string]any `json:"settings"`
	} `json:"store_settings"`
	Sliders []models.Slider `json:"sliders"`
}

func (e testEnv) page(t *testing.T) pageResponse {
	t.Helper()

	resp := e.do(t, http.MethodGet, "", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out pageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func errorsOf(t *testing.T, resp *http.Response) map[string][]string {
	t.Helper()

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, invalidDataMessage, body.Message)

	return body.Errors
}

func TestPathMatchesAdminHome(t *testing.T) {
	assert.Equal(t, handler.AdminHomePath, Path)
}

func TestInitNil(t *testing.T) {
	var s Service
	require.ErrorIs(t, s.Init(nil, nil, nil, nil), handler.ErrNilACD)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a router, config and database are not enough without a provider
	require.ErrorIs(t, s.Init(fiber.New(), &config.Config{}, db, nil), handler.ErrNilACD)
}

func TestGetRequiresSession(t *testing.T) {
	env := setup(t, false)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, Path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetListsStores(t *testing.T) {
	env := setup(t, false)

	page := env.page(t)

	assert.Equal(t, "default-theme", page.Module["slug"])
	assert.Contains(t, page.Defaults, "homepage")
	require.Len(t, page.Stores, 2)
	require.Len(t, page.StoreSettings, 2)
	assert.Equal(t, uint64(7), page.StoreSettings[0].StoreID)
	assert.True(t, page.StoreSettings[0].IsEnabled)
	assert.False(t, page.StoreSettings[0].Overridden)

	// no sliders table
	assert.NotNil(t, page.Sliders)
	assert.Empty(t, page.Sliders)
}

func TestGetListsSliders(t *testing.T) {
	env := setup(t, true)

	page := env.page(t)
	require.Len(t, page.Sliders, 2)
	assert.Equal(t, "Alpha", page.Sliders[0].Name)
}

func TestPutJSON(t *testing.T) {
	env := setup(t, false)

	resp := env.do(t, http.MethodPut, fiber.MIMEApplicationJSON,
		`{"store_id":7,"is_enabled":true,"settings":{"homepage":{"products_per_row":3}}}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, Path, resp.Header.Get("Location"))

	page := env.page(t)

	seven, nine := page.StoreSettings[0], page.StoreSettings[1]
	assert.True(t, seven.Overridden)
	assert.InDelta(t, 3, seven.Settings["homepage"]["products_per_row"], 0)
	assert.Equal(t, true, seven.Settings["homepage"]["show_slider"])
	assert.InDelta(t, 4, nine.Settings["homepage"]["products_per_row"], 0)
}

func TestPutForm(t *testing.T) {
	env := setup(t, false)

	form := url.Values{
		"store_id":   {"9"},
		"is_enabled": {"0"},
		"settings":   {`{"layout":{"header_style":"centered"}}`},
	}

	resp := env.do(t, http.MethodPost, fiber.MIMEApplicationForm, form.Encode())
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	nine := env.page(t).StoreSettings[1]
	assert.False(t, nine.IsEnabled)
	assert.Equal(t, "centered", nine.Settings["layout"]["header_style"])
}

func TestPutValidation(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		fields      []string
	}{
		{
			name:        "non boolean is_enabled",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"store_id":7,"is_enabled":"yes"}`,
			fields:      []string{"is_enabled"},
		},
		{
			name:        "unknown store",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"store_id":999}`,
			fields:      []string{"store_id"},
		},
		{
			name:        "missing store",
			contentType: fiber.MIMEApplicationForm,
			body:        url.Values{"is_enabled": {"1"}}.Encode(),
			fields:      []string{"store_id"},
		},
		{
			name:        "settings form field not json",
			contentType: fiber.MIMEApplicationForm,
			body:        url.Values{"store_id": {"7"}, "settings": {"dark"}}.Encode(),
			fields:      []string{"settings"},
		},
		{
			name:        "enum",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"store_id":7,"settings":{"cart":{"mini_cart_style":"popup"}}}`,
			fields:      []string{"settings.cart.mini_cart_style"},
		},
		{
			name:        "malformed body",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"store_id":`,
			fields:      []string{"body"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := setup(t, false)

			resp := env.do(t, http.MethodPut, tc.contentType, tc.body)
			defer resp.Body.Close()

			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			errs := errorsOf(t, resp)
			keys := make([]string, 0, len(errs))
			for k := range errs {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tc.fields, keys)

			var count int64
			require.NoError(t, env.db.Model(&models.InstalledModule{}).Count(&count).Error)
			assert.Equal(t, int64(0), count)
		})
	}
}

func TestPutRejectedKeepsState(t *testing.T) {
	env := setup(t, false)

	resp := env.do(t, http.MethodPut, fiber.MIMEApplicationJSON, `{"store_id":7,"settings":{"footer":{"columns":2}}}`)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = env.do(t, http.MethodPut, fiber.MIMEApplicationJSON,
		`{"store_id":7,"is_enabled":"yes","settings":{"footer":{"columns":5}}}`)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))

	seven := env.page(t).StoreSettings[0]
	assert.InDelta(t, 2, seven.Settings["footer"]["columns"], 0)
	assert.True(t, seven.IsEnabled)
}
