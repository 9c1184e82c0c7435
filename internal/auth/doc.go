// Package auth provides authentication and authorization for the admin surface.
//
// Administrators sign in against the local users table; passwords are stored
// as Argon2id hashes. Authorization is role based: every user has one role
// and a role holds a set of permissions.
//
// Example usage:
//
//	authService := auth.NewService(db)
//
//	app.Get("/admin/modules/themes/default-theme/settings",
//	    auth.RequirePermission(authService, auth.PermAdminThemeSettings),
//	    handler,
//	)
package auth
