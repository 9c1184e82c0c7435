// Package daemon opens the database, prepares the schema and runs the web service.
package daemon

import (
	"fmt"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/config"
	"github.com/cartismo/default-theme/internal/db/dsn"
	"github.com/cartismo/default-theme/internal/db/models"
	"github.com/cartismo/default-theme/internal/web"
	"github.com/cartismo/default-theme/internal/web/session"
)

const sessionTable = "sessions"

// ErrConfigNil is returned when New is called without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start runs the web service and blocks until a shutdown signal is handled.
func (d *Daemon) Start() error {
	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)

	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start(addr)
	}()

	log.Info().Str("addr", addr).Msg("web service started")

	go func() {
		d.webService.WaitShutdown()
	}()

	return <-errCh
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	if err = seed(cfg, db); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	session.Init(sessionStorage(cfg))

	webService, err := web.New(cfg, db, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{cfg: cfg, webService: webService}, nil
}

// Open connects to the database selected by cfg.DB.GormEngine.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.CreatePostgres(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(cfg.DB.Name)
	default:
		return nil, errors.Wrapf(config.ErrUnsupportedGormEngine, "engine %q", cfg.DB.GormEngine)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.DB.GormEngine)
	}

	return db, nil
}

// Migrate creates the tables owned by this module. Stores and sliders
// belong to the host and are only created when missing so a standalone
// installation has somewhere to keep its stores.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Permission{},
		&models.Role{},
		&models.RolePermission{},
		&models.User{},
		&models.InstalledModule{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	if !db.Migrator().HasTable(&models.Store{}) {
		if err := db.Migrator().CreateTable(&models.Store{}); err != nil {
			return errors.Wrap(err, "failed to create stores table")
		}
	}

	return nil
}

// sessionStorage returns the session backend for the configured engine. A
// nil storage selects fiber's in-memory storage.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: postgresURI(cfg),
			Table:         sessionTable,
		})
	default:
		log.Warn().Str("engine", cfg.DB.GormEngine).Msg("sessions are kept in memory")
		return nil
	}
}

func postgresURI(cfg *config.Config) string {
	uri := fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)

	if cfg.DB.Extras != "" {
		uri += "?" + cfg.DB.Extras
	}

	return uri
}
