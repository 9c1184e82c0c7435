package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cartismo/default-theme/internal/db/models"
)

// Service provides authorization checks.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// HasPermission checks whether the user's role grants permission.
func (s *Service) HasPermission(userID uint64, permission string) (bool, error) {
	var count int64

	err := s.db.Table("permissions").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN users ON users.role_id = role_permissions.role_id").
		Where("users.id = ? AND users.active = ? AND permissions.name = ?", userID, true, permission).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role permission: %w", err)
	}

	return count > 0, nil
}

// GetUserPermissions retrieves the permission names granted to a user.
func (s *Service) GetUserPermissions(userID uint64) ([]string, error) {
	var permissions []string

	err := s.db.Table("permissions").
		Select("DISTINCT permissions.name").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN users ON users.role_id = role_permissions.role_id").
		Where("users.id = ?", userID).
		Order("permissions.name").
		Pluck("permissions.name", &permissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user permissions: %w", err)
	}

	return permissions, nil
}

// GrantPermissions assigns the named permissions to a role. Unknown
// permission names are skipped; existing grants are kept.
func (s *Service) GrantPermissions(roleID uint, names ...string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		var perms []models.Permission
		if err := tx.Where("name IN ?", names).Find(&perms).Error; err != nil {
			return fmt.Errorf("failed to load permissions: %w", err)
		}

		for _, p := range perms {
			grant := models.RolePermission{RoleID: role.ID, PermissionID: p.ID}
			if err := tx.Where(&grant).FirstOrCreate(&grant).Error; err != nil {
				return fmt.Errorf("failed to grant %s: %w", p.Name, err)
			}
		}

		return nil
	})
}
