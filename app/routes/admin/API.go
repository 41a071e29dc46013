package admin

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/services"
)

// GetStatsAPI returns the dashboard counters as JSON
func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Error al cargar estadísticas.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// GetWeatherAPI proxies the current-weather lookup for the dashboard card
func GetWeatherAPI(c *fiber.Ctx) error {
	city := c.Query("ciudad")
	if city == "" {
		city = config.AppConfig.Weather.DefaultCity
	}

	client := services.NewWeatherClient(config.AppConfig.Weather.APIKey)
	report, err := client.Current(city)
	if err != nil {
		if errors.Is(err, services.ErrWeatherNotConfigured) {
			return c.Status(503).JSON(fiber.Map{
				"success": false,
				"message": "El servicio de clima no está configurado.",
			})
		}
		log.Printf("Error fetching weather for %s: %v", city, err)
		return c.Status(502).JSON(fiber.Map{
			"success": false,
			"message": "No se pudo obtener el clima en este momento.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"weather": report,
	})
}
