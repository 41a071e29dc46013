package animals

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
)

func GetAnimalsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	animals, err := database.GetAnimalsByUser(config.GetDB(), user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Error al cargar animales."})
	}
	return c.JSON(fiber.Map{"success": true, "animals": animals})
}

func CreateAnimalAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	type CreateAnimalRequest struct {
		Species  string `json:"species" form:"species"`
		Name     string `json:"name" form:"name"`
		Quantity int    `json:"quantity" form:"quantity"`
		Health   string `json:"health" form:"health"`
	}
	var req CreateAnimalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Solicitud inválida."})
	}

	req.Species = strings.TrimSpace(req.Species)
	if req.Species == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "La especie es obligatoria."})
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	animal := &models.Animal{
		UserID:   user.ID,
		Species:  req.Species,
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
		Health:   strings.TrimSpace(req.Health),
	}
	if err := database.CreateAnimal(config.GetDB(), animal); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo registrar el animal."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Animal registrado.", "animal": animal})
}

func DeleteAnimalAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	animalID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Animal inválido."})
	}

	if err := database.DeleteAnimal(config.GetDB(), animalID, user.ID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Animal no encontrado."})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo eliminar el animal."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Animal eliminado."})
}
