package admin

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
	"github.com/DavidBallares/proyecto-gag/app/routes/auth"
)

// SetupAdminRoutes sets up the administration area
func SetupAdminRoutes(app *fiber.App) {
	// Page routes
	admin := app.Group("/admin", auth.AuthMiddleware, auth.AdminMiddleware)
	admin.Get("/", renderDashboardPage)
	admin.Get("/cultivos", renderAllCropsPage)
	admin.Get("/animales", renderAllAnimalsPage)
	admin.Get("/report.xlsx", GenerateReportAPI)

	// API routes
	api := app.Group("/api/admin", auth.AuthMiddleware, auth.AdminMiddleware)
	api.Get("/stats", GetStatsAPI)

	// The weather proxy serves the dashboard card; the API key never
	// reaches the browser.
	app.Get("/api/clima", auth.AuthMiddleware, GetWeatherAPI)
}

func renderDashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	errorMsg := ""
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		errorMsg = "Error al cargar estadísticas."
		stats = &models.DashboardStats{}
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":        "Panel de Administración - GAG",
		"CurrentPage":  "admin",
		"User":         user,
		"Stats":        stats,
		"WeatherCity":  config.AppConfig.Weather.DefaultCity,
		"ErrorMessage": errorMsg,
	})
}

func renderAllCropsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	errorMsg := ""
	crops, err := database.GetAllCrops(config.GetDB())
	if err != nil {
		errorMsg = "Error al cargar los cultivos."
	}

	return c.Render("admin/cultivos", fiber.Map{
		"Title":        "Todos los Cultivos - GAG",
		"CurrentPage":  "admin",
		"User":         user,
		"Crops":        crops,
		"ErrorMessage": errorMsg,
	})
}

func renderAllAnimalsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	errorMsg := ""
	animals, err := database.GetAllAnimals(config.GetDB())
	if err != nil {
		errorMsg = "Error al cargar los animales."
	}

	return c.Render("admin/animales", fiber.Map{
		"Title":        "Todos los Animales - GAG",
		"CurrentPage":  "admin",
		"User":         user,
		"Animals":      animals,
		"ErrorMessage": errorMsg,
	})
}
