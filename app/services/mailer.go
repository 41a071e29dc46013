package services

import (
	"fmt"
	"net/smtp"

	"github.com/DavidBallares/proyecto-gag/app/config"
)

// SendPasswordResetEmail mails the recovery link. The link embeds a
// single-use token; the page behind it enforces expiry.
func SendPasswordResetEmail(cfg config.SMTPConfig, to, resetURL string) error {
	if cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("mailer: SMTP credentials not configured")
	}

	subject := "Recuperación de contraseña - GAG"
	body := "Hola,\r\n\r\n" +
		"Recibimos una solicitud para restablecer tu contraseña.\r\n" +
		"Abre el siguiente enlace para continuar (válido por 1 hora):\r\n\r\n" +
		resetURL + "\r\n\r\n" +
		"Si no solicitaste este cambio, ignora este mensaje.\r\n"

	msg := []byte("From: " + cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	return smtp.SendMail(addr, auth, cfg.From, []string{to}, msg)
}
