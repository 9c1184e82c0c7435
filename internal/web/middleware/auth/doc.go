// Package auth provides the session gate for the admin route group.
//
// Requests without a valid session are redirected to the login page, or
// answered with 401 when the client asks for JSON. Signed-in users are added
// to fiber.Locals under "CurrentUser".
//
// Usage:
//
//	admin := app.Group("/admin", authmiddleware.Middleware)
package auth
