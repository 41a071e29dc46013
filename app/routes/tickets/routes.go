package tickets

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
	"github.com/DavidBallares/proyecto-gag/app/routes/auth"
)

// SetupTicketRoutes sets up the support ticket pages and API
func SetupTicketRoutes(app *fiber.App) {
	// Page routes
	app.Get("/ayuda", auth.AuthMiddleware, renderHelpPage)
	app.Get("/admin/tickets", auth.AuthMiddleware, auth.AdminMiddleware, renderAdminTicketsPage)

	// API routes
	api := app.Group("/api/tickets", auth.AuthMiddleware)
	api.Get("/", GetTicketsAPI)
	api.Post("/", CreateTicketAPI)
	api.Put("/:id/cerrar", auth.AdminMiddleware, CloseTicketAPI)
}

func renderHelpPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	errorMsg := ""
	tickets, err := database.GetTicketsByUser(config.GetDB(), user.ID)
	if err != nil {
		errorMsg = "Error al cargar tus solicitudes."
	}

	return c.Render("tickets/ayuda", fiber.Map{
		"Title":        "Ayuda y Soporte - GAG",
		"CurrentPage":  "ayuda",
		"User":         user,
		"Tickets":      tickets,
		"ErrorMessage": errorMsg,
	})
}

func renderAdminTicketsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	errorMsg := ""
	tickets, err := database.GetAllTickets(config.GetDB())
	if err != nil {
		errorMsg = "Error al cargar los tickets."
	}

	return c.Render("tickets/admin", fiber.Map{
		"Title":        "Tickets de Soporte - GAG",
		"CurrentPage":  "admin",
		"User":         user,
		"Tickets":      tickets,
		"ErrorMessage": errorMsg,
	})
}
