// Package web wires the theme into a fiber application: views, assets,
// admin and storefront routes, health and metrics endpoints.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/auth"
	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/logger/adapter/accesslog"
	"github.com/cartismo/default-theme/internal/provider"
	"github.com/cartismo/default-theme/internal/storefront"
	"github.com/cartismo/default-theme/internal/theme"
	"github.com/cartismo/default-theme/internal/web/handler"
	admintheme "github.com/cartismo/default-theme/internal/web/handler/admin/theme"
	"github.com/cartismo/default-theme/internal/web/handler/login"
	"github.com/cartismo/default-theme/internal/web/handler/logout"
	"github.com/cartismo/default-theme/internal/web/handler/storefront/home"
	authmiddleware "github.com/cartismo/default-theme/internal/web/middleware/auth"
)

const (
	// AssetsPath is where the theme's static files are served.
	AssetsPath = "/modules/" + theme.LowerName

	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes prometheus metrics when enabled.
	MetricsPath = "/metrics"

	devTemplateDir = "./internal/web/templates"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	go func() {
		err := s.App.Listen(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			doneFiber <- err
			return
		}

		doneFiber <- nil
	}()

	return <-doneFiber
}

// WaitShutdown blocks until SIGINT or SIGTERM and then stops the server
// gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// let load balancers see a failing checkalive before the listener closes
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive reports 200 while the service accepts traffic and 503 during
// shutdown.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

// New creates the web service: template engine, middleware, assets and the
// admin and storefront routes. catalog supplies homepage products and
// categories; nil renders homepages without them.
func New(cfg *config.Config, db *gorm.DB, catalog storefront.Catalog) (*Service, error) {
	if cfg == nil || db == nil {
		return nil, handler.ErrNilACD
	}

	themeProvider, err := provider.New(db, catalog)
	if err != nil {
		return nil, err
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: cfg.Webserver.ReadBufferSize,
			AppName:        theme.Name,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newViews(cfg.DevMode),
			ErrorHandler:   errorHandler,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		authService:  auth.NewService(db),
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Use(AssetsPath,
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
				MaxAge:     3600,
			},
		),
	)

	app.Get(CheckAlivePath, service.CheckAlive)

	if cfg.Webserver.MetricsEnabled {
		app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	public := []handler.Service{&login.Handler, &logout.Handler}
	for _, h := range public {
		if err := h.Init(app, cfg, db, service.authService); err != nil {
			return nil, err
		}
	}

	admin := app.Group(handler.AdminPath,
		authmiddleware.Middleware,
		auth.AddPermissionsToLocals(service.authService),
	)

	admintheme.Handler.Provider = themeProvider
	if err := admintheme.Handler.Init(admin, cfg, db, service.authService); err != nil {
		return nil, err
	}

	// storefront routes come last so "/" never shadows the admin group
	home.Handler.Provider = themeProvider
	if err := home.Handler.Init(app, cfg, db, service.authService); err != nil {
		return nil, err
	}

	return service, nil
}

func newViews(devMode bool) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if devMode {
		templateEngine = html.New(devTemplateDir, ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("asset", func(p string) string {
		return AssetsPath + "/" + p
	})
	templateEngine.AddFunc("cssFont", func(family string) template.CSS {
		return template.CSS(cssQuote(family))
	})

	return templateEngine
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(code).SendString(http.StatusText(code))
	}

	return c.Status(code).SendString(err.Error())
}
