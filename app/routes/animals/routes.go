package animals

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
	"github.com/DavidBallares/proyecto-gag/app/routes/auth"
)

// SetupAnimalsRoutes sets up animal routes
func SetupAnimalsRoutes(app *fiber.App) {
	// Page routes
	app.Get("/animales", auth.AuthMiddleware, renderAnimalsPage)

	// API routes
	api := app.Group("/api/animales")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAnimalsAPI)
	api.Post("/", CreateAnimalAPI)
	api.Delete("/:id", DeleteAnimalAPI)
}

func renderAnimalsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	errorMsg := ""
	animals, err := database.GetAnimalsByUser(config.GetDB(), user.ID)
	if err != nil {
		errorMsg = "Error al cargar tus animales."
	}

	return c.Render("animales/index", fiber.Map{
		"Title":        "Mis Animales - GAG",
		"CurrentPage":  "animales",
		"User":         user,
		"Animals":      animals,
		"HasAnimals":   len(animals) > 0,
		"ErrorMessage": errorMsg,
	})
}
