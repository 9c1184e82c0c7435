package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cartismo/default-theme/internal/web/handler/login"
	"github.com/cartismo/default-theme/internal/web/session"
)

// LocalsCurrentUser is the fiber.Locals key holding the signed-in session user.
const LocalsCurrentUser = "CurrentUser"

// Middleware is a Fiber middleware that checks for user authentication.
func Middleware(c *fiber.Ctx) error {
	sessData, err := session.FromRequest(c)
	if err != nil {
		if WantsJSON(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthenticated."})
		}

		return c.Redirect(login.Path)
	}

	c.Locals(LocalsCurrentUser, sessData.User)

	return c.Next()
}

// WantsJSON reports whether the client prefers a JSON response.
func WantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
