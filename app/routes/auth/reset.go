package auth

import (
	"database/sql"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/services"
)

// ForgotPasswordAPI mints a recovery token and mails the reset link. The
// response does not reveal whether the email exists.
func ForgotPasswordAPI(c *fiber.Ctx) error {
	type ForgotPasswordRequest struct {
		Email string `json:"email" form:"email"`
	}

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	neutral := fiber.Map{
		"success": true,
		"message": "Si el correo está registrado, recibirás un enlace de recuperación.",
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(neutral)
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	token := GenerateResetToken()
	if err := database.SetResetToken(config.GetDB(), user.ID, token, time.Now().Add(ResetTokenTTL)); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo generar el enlace."})
	}

	resetURL := config.AppConfig.BaseURL + "/auth/reset-password?token=" + url.QueryEscape(token)
	if err := services.SendPasswordResetEmail(config.AppConfig.SMTP, user.Email, resetURL); err != nil {
		log.Printf("Failed to send reset email to %s: %v", user.Email, err)
	}

	return c.JSON(neutral)
}

// ShowResetPasswordPage validates the token from the emailed link and shows
// the new-password form only while the token is usable. Expired tokens are
// burned on sight so they cannot be retried later.
func ShowResetPasswordPage(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return renderResetMessage(c, "Token inválido o no encontrado.", false)
	}

	reset, err := database.GetPasswordReset(config.GetDB(), token)
	if err != nil {
		if err == sql.ErrNoRows {
			return renderResetMessage(c, "Token inválido o no encontrado.", false)
		}
		return renderResetMessage(c, "Error de base de datos.", false)
	}

	if reset.Used {
		return renderResetMessage(c, "Este enlace ya fue utilizado. Solicita uno nuevo.", true)
	}
	if reset.ExpiresAt.Before(time.Now()) {
		if err := database.InvalidateResetToken(config.GetDB(), token); err != nil {
			log.Printf("Failed to invalidate expired token: %v", err)
		}
		return renderResetMessage(c, "El enlace de recuperación ha expirado. Solicita uno nuevo.", true)
	}

	return c.Render("auth/reset-password", fiber.Map{
		"Title": "Cambiar Contraseña - GAG",
		"Token": token,
	}, "")
}

// ResetPasswordAPI sets the new password. Validity is re-checked inside the
// update so the token cannot be raced between page load and submit.
func ResetPasswordAPI(c *fiber.Ctx) error {
	type ResetPasswordRequest struct {
		Token       string `json:"token" form:"token"`
		NewPassword string `json:"new_password" form:"new_password"`
	}

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	req.NewPassword = strings.TrimSpace(req.NewPassword)
	if req.Token == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Token inválido o no encontrado."})
	}
	if req.NewPassword == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Por favor, ingrese una nueva contraseña."})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "La contraseña debe tener al menos 8 caracteres."})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to hash password"})
	}

	ok, err := database.ResetPasswordByToken(config.GetDB(), req.Token, hashedPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Database error"})
	}
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Token inválido, expirado o ya usado."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Contraseña actualizada exitosamente."})
}

func renderResetMessage(c *fiber.Ctx, message string, offerNewLink bool) error {
	return c.Render("auth/reset-password", fiber.Map{
		"Title":        "Cambiar Contraseña - GAG",
		"Message":      message,
		"OfferNewLink": offerNewLink,
	}, "")
}
