package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/auth"
	"github.com/cartismo/default-theme/internal/config"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app fiber.Router, cfg *config.Config, db *gorm.DB, authService *auth.Service) error
}
