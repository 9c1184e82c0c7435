package config

import (
	"time"

	"github.com/cartismo/default-theme/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Theme     Theme
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	MetricsEnabled bool    // expose prometheus metrics on /metrics
	ReadBufferSize int     // fiber read buffer size, raise for large cookies
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// Theme holds runtime switches of the theme module. The theme's settings
// defaults are compiled in and can not be changed here.
type Theme struct {
	// StorefrontEnabled registers the storefront homepage route.
	StorefrontEnabled bool
	// DefaultStoreID is used by the storefront when no store matches the request host.
	DefaultStoreID uint64
}
