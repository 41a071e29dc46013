package calendario

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
)

// GetEventsAPI returns the caller's derived event list. Dates are YYYY-MM-DD
// strings; synthetic harvest markers carry no id.
func GetEventsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	events, errorMsg := loadUserEvents(user.ID)
	resp := fiber.Map{
		"success": true,
		"events":  events,
	}
	if errorMsg != "" {
		resp["message"] = errorMsg
	}
	return c.JSON(resp)
}

// CompleteTreatmentAPI marks one treatment as completed. The response always
// carries success and message; anything but success true is a failure the
// client surfaces verbatim.
func CompleteTreatmentAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	treatmentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Tratamiento inválido."})
	}

	type CompleteRequest struct {
		CompletionDate string `json:"fecha_realizacion" form:"fecha_realizacion"`
		Notes          string `json:"observaciones" form:"observaciones"`
	}
	var req CompleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Solicitud inválida."})
	}

	req.CompletionDate = strings.TrimSpace(req.CompletionDate)
	if req.CompletionDate == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Por favor, selecciona la fecha de realización."})
	}

	ok, err := database.MarkTreatmentCompleted(config.GetDB(), treatmentID, user.ID, req.CompletionDate, strings.TrimSpace(req.Notes))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Error al actualizar el tratamiento."})
	}
	if !ok {
		return c.JSON(fiber.Map{"success": false, "message": "Tratamiento no encontrado o ya completado."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "¡Tratamiento marcado como completado!"})
}
