package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/storage"
)

var store storage.Store

func SetupAuthRoutes(app *fiber.App, s storage.Store) {
	store = s

	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
	api.Get("/me", AuthMiddleware, MeAPI)
}

// AuthMiddleware validates the JWT from the cookie or Authorization header and
// stores the authenticated principal on the request context. Handlers read it
// with CurrentUser; there is no ambient global session state.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(tokenCookie)
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user", &models.User{
		ID:        claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
		Subjects:  claims.Subjects,
	})
	return c.Next()
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil || !user.IsAdmin() {
		return c.Status(403).JSON(fiber.Map{"error": "Forbidden"})
	}
	return c.Next()
}

// CurrentUser returns the authenticated principal for this request, or nil on
// unauthenticated routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
