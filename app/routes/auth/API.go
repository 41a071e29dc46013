package auth

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Credenciales inválidas"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Credenciales inválidas"})
	}

	token, err := GenerateJWT(user.ID, user.Email, user.Name, user.RoleID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	redirect := "/calendario"
	if user.IsAdmin() {
		redirect = "/admin"
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Login successful",
		"redirect": redirect,
		"user":     user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/auth/login")
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" form:"current_password"`
		NewPassword     string `json:"new_password" form:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "La contraseña debe tener al menos 8 caracteres."})
	}

	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "La contraseña actual es incorrecta."})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Contraseña actualizada exitosamente."})
}

// RegisterAPI creates a regular user account.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
		Name     string `json:"name" form:"name"`
		Phone    string `json:"phone" form:"phone"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}
	if req.Email == "" || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Email y nombre son obligatorios."})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "La contraseña debe tener al menos 8 caracteres."})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to hash password"})
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Phone:    req.Phone,
		RoleID:   models.RoleUser,
	}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo crear la cuenta."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Cuenta creada exitosamente.", "user": user})
}
