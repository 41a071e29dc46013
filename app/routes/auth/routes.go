package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/register", RegisterAPI)
	auth.Post("/logout", LogoutAPI)
	auth.Get("/forgot-password", ShowForgotPasswordPage)
	auth.Post("/forgot-password", ForgotPasswordAPI)
	auth.Get("/reset-password", ShowResetPasswordPage)
	auth.Post("/reset-password", ResetPasswordAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			if claims.RoleID == models.RoleAdmin {
				return c.Redirect("/admin")
			}
			return c.Redirect("/calendario")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Iniciar Sesión - GAG",
	}, "")
}

func ShowForgotPasswordPage(c *fiber.Ctx) error {
	return c.Render("auth/forgot-password", fiber.Map{
		"Title": "Recuperar Contraseña - GAG",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("auth/profile", fiber.Map{
		"Title":       "Mi Perfil - GAG",
		"CurrentPage": "profile",
		"User":        user,
	})
}

// AuthMiddleware validates the JWT cookie and sets the user context. API
// paths answer 401 JSON; page paths redirect to the login form.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user := &models.User{
		ID:       claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		RoleID:   claims.RoleID,
		IsActive: true,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_name", user.Name)
	c.Locals("user_role", user.RoleID)
	c.Locals("user", user)

	return c.Next()
}

// AdminMiddleware gates the administration area.
func AdminMiddleware(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if user.IsAdmin() {
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(403).JSON(fiber.Map{"success": false, "message": "Insufficient permissions"})
	}

	return c.Status(403).Render("error", fiber.Map{
		"Title":        "Acceso Denegado - GAG",
		"CurrentPage":  "",
		"ErrorCode":    "403",
		"ErrorTitle":   "Acceso Denegado",
		"ErrorMessage": "No tienes permiso para acceder a esta sección.",
		"User":         user,
	})
}
