package crops

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
	"github.com/DavidBallares/proyecto-gag/app/routes/auth"
)

// SetupCropsRoutes sets up crop routes
func SetupCropsRoutes(app *fiber.App) {
	// Page routes
	app.Get("/cultivos", auth.AuthMiddleware, renderCropsPage)

	// API routes
	api := app.Group("/api/cultivos")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCropsAPI)
	api.Post("/", CreateCropAPI)
	api.Post("/:id/tratamientos", CreateTreatmentAPI)
	api.Put("/:id/finalizar", FinishCropAPI)
}

func renderCropsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	errorMsg := ""
	crops, err := database.GetActiveCropsByUser(db, user.ID)
	if err != nil {
		errorMsg = "Error al cargar tus cultivos."
	}

	types, _ := database.GetCropTypes(db)
	municipalities, _ := database.GetMunicipalities(db)

	return c.Render("cultivos/index", fiber.Map{
		"Title":          "Mis Cultivos - GAG",
		"CurrentPage":    "cultivos",
		"User":           user,
		"Crops":          crops,
		"HasCrops":       len(crops) > 0,
		"CropTypes":      types,
		"Municipalities": municipalities,
		"ErrorMessage":   errorMsg,
	})
}
