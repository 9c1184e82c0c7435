package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartismo/default-theme/internal/config"
)

func testConfig(extras string) *config.Config {
	return &config.Config{
		DB: config.DB{
			Host:     "db.local",
			Port:     3306,
			User:     "theme",
			Password: "secret",
			Name:     "shop",
			Extras:   extras,
		},
	}
}

func TestCreate(t *testing.T) {
	assert.Equal(t,
		"theme:secret@tcp(db.local:3306)/shop?parseTime=true",
		Create(testConfig("parseTime=true")),
	)
}

func TestCreatePostgres(t *testing.T) {
	assert.Equal(t,
		"host=db.local port=3306 user=theme password=secret dbname=shop sslmode=disable",
		CreatePostgres(testConfig("sslmode=disable")),
	)
	assert.Equal(t,
		"host=db.local port=3306 user=theme password=secret dbname=shop",
		CreatePostgres(testConfig("  ")),
	)
}
