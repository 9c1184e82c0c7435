// Package dsn builds database connection strings from the configuration.
package dsn

import (
	"fmt"
	"strings"

	"github.com/cartismo/default-theme/internal/config"
)

// Create builds the MySQL Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// CreatePostgres builds a key/value PostgreSQL connection string. Extras are
// appended verbatim, e.g. "sslmode=disable TimeZone=UTC".
func CreatePostgres(cfg *config.Config) string {
	parts := []string{
		"host=" + cfg.DB.Host,
		fmt.Sprintf("port=%d", cfg.DB.Port),
		"user=" + cfg.DB.User,
		"password=" + cfg.DB.Password,
		"dbname=" + cfg.DB.Name,
	}

	if extras := strings.TrimSpace(cfg.DB.Extras); extras != "" {
		parts = append(parts, extras)
	}

	return strings.Join(parts, " ")
}
