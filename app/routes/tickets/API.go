package tickets

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
)

// GetTicketsAPI lists tickets. Admins see every ticket, regular users only
// their own.
func GetTicketsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var (
		tickets []models.Ticket
		err     error
	)
	if user.IsAdmin() {
		tickets, err = database.GetAllTickets(config.GetDB())
	} else {
		tickets, err = database.GetTicketsByUser(config.GetDB(), user.ID)
	}
	if err != nil {
		log.Printf("Error fetching tickets: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Error al cargar los tickets.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"tickets": tickets,
	})
}

// CreateTicketAPI opens a support ticket for the logged-in user
func CreateTicketAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var req struct {
		Subject string `json:"subject" form:"asunto"`
		Message string `json:"message" form:"mensaje"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Datos inválidos.",
		})
	}

	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.Subject == "" || req.Message == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "El asunto y el mensaje son obligatorios.",
		})
	}

	ticket := &models.Ticket{
		UserID:  user.ID,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.TicketOpen,
	}
	if err := database.CreateTicket(config.GetDB(), ticket); err != nil {
		log.Printf("Error creating ticket: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Error al crear el ticket.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Tu solicitud fue enviada. Te responderemos pronto.",
		"ticket":  ticket,
	})
}

// CloseTicketAPI marks a ticket as closed. Admin only.
func CloseTicketAPI(c *fiber.Ctx) error {
	ticketID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "ID de ticket inválido.",
		})
	}

	if err := database.CloseTicket(config.GetDB(), ticketID); err != nil {
		log.Printf("Error closing ticket %d: %v", ticketID, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Error al cerrar el ticket.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Ticket cerrado.",
	})
}
