package auth

const (
	// PermAdminThemeSettings allows viewing and saving theme settings of every store.
	PermAdminThemeSettings = "admin.theme.settings"

	// RoleAdmin is the system role seeded with every permission.
	RoleAdmin = "admin"
)

// PermissionDef describes a permission for seeding.
type PermissionDef struct {
	Name        string
	Resource    string
	Action      string
	Description string
}

// Permissions lists every permission known to the application.
var Permissions = []PermissionDef{
	{
		Name:        PermAdminThemeSettings,
		Resource:    "admin.theme",
		Action:      "settings",
		Description: "Manage storefront theme settings per store",
	},
}
