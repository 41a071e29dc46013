package crops

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
)

func GetCropsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	crops, err := database.GetActiveCropsByUser(config.GetDB(), user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Error al cargar cultivos."})
	}
	return c.JSON(fiber.Map{"success": true, "crops": crops})
}

// CreateCropAPI registers a crop and seeds its default treatments.
func CreateCropAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	type CreateCropRequest struct {
		TypeID         int    `json:"type_id" form:"type_id"`
		MunicipalityID int    `json:"municipality_id" form:"municipality_id"`
		StartDate      string `json:"start_date" form:"start_date"`
		EndDate        string `json:"end_date" form:"end_date"`
	}
	var req CreateCropRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Solicitud inválida."})
	}

	req.StartDate = strings.TrimSpace(req.StartDate)
	if req.TypeID == 0 || req.MunicipalityID == 0 || req.StartDate == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Tipo, municipio y fecha de inicio son obligatorios."})
	}

	crop := &models.Crop{
		UserID:           user.ID,
		TypeID:           req.TypeID,
		MunicipalityID:   req.MunicipalityID,
		StartDate:        req.StartDate,
		EstimatedEndDate: strings.TrimSpace(req.EndDate),
	}
	if err := database.CreateCrop(config.GetDB(), crop); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo registrar el cultivo."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Cultivo registrado.", "crop": crop})
}

// CreateTreatmentAPI adds a one-off treatment to one of the caller's crops.
func CreateTreatmentAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	cropID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Cultivo inválido."})
	}

	crop, err := database.GetCropByID(config.GetDB(), cropID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Cultivo no encontrado."})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Error al cargar el cultivo."})
	}
	if crop.UserID != user.ID {
		return c.Status(403).JSON(fiber.Map{"success": false, "message": "Este cultivo no te pertenece."})
	}

	type TreatmentRequest struct {
		Kind          string `json:"kind" form:"kind"`
		ProductUsed   string `json:"product_used" form:"product_used"`
		Stage         string `json:"stage" form:"stage"`
		Dose          string `json:"dose" form:"dose"`
		Notes         string `json:"notes" form:"notes"`
		EstimatedDate string `json:"estimated_date" form:"estimated_date"`
	}
	var req TreatmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Solicitud inválida."})
	}
	if strings.TrimSpace(req.Kind) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "El tipo de tratamiento es obligatorio."})
	}

	treatment := &models.Treatment{
		CropID:        cropID,
		Kind:          strings.TrimSpace(req.Kind),
		ProductUsed:   strings.TrimSpace(req.ProductUsed),
		Stage:         strings.TrimSpace(req.Stage),
		Dose:          strings.TrimSpace(req.Dose),
		Notes:         strings.TrimSpace(req.Notes),
		EstimatedDate: strings.TrimSpace(req.EstimatedDate),
		Status:        models.TreatmentPending,
	}
	if err := database.CreateTreatment(config.GetDB(), treatment); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo registrar el tratamiento."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Tratamiento registrado.", "treatment": treatment})
}

// FinishCropAPI moves one of the caller's crops to the finished state; its
// events stop appearing on the calendar.
func FinishCropAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	cropID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Cultivo inválido."})
	}

	if err := database.UpdateCropState(config.GetDB(), cropID, user.ID, models.CropFinished); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Cultivo no encontrado."})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo finalizar el cultivo."})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Cultivo finalizado."})
}
