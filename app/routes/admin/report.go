package admin

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
)

var cropStateLabels = map[models.CropState]string{
	models.CropInProgress: "En Progreso",
	models.CropFinished:   "Finalizado",
	models.CropCancelled:  "Cancelado",
}

// GenerateReportAPI streams an xlsx workbook with the dashboard counters and
// the full crop list.
func GenerateReportAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	stats, err := database.GetDashboardStats(db)
	if err != nil {
		log.Printf("Error fetching stats for report: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Error al generar el reporte.",
		})
	}

	crops, err := database.GetAllCrops(db)
	if err != nil {
		log.Printf("Error fetching crops for report: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Error al generar el reporte.",
		})
	}

	f, err := buildReport(stats, crops)
	if err != nil {
		log.Printf("Error building report workbook: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Error al generar el reporte.",
		})
	}
	defer f.Close()

	filename := "reporte_gag_" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := f.Write(c.Response().BodyWriter()); err != nil {
		log.Printf("Error streaming report: %v", err)
		return err
	}
	return nil
}

func buildReport(stats *models.DashboardStats, crops []models.Crop) (*excelize.File, error) {
	f := excelize.NewFile()

	summary := "Resumen"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}

	summaryRows := [][]interface{}{
		{"Reporte General GAG", ""},
		{"Generado", time.Now().Format("2006-01-02 15:04")},
		{"", ""},
		{"Usuarios registrados", stats.TotalUsers},
		{"Cultivos", stats.TotalCrops},
		{"Animales", stats.TotalAnimals},
		{"Tickets abiertos", stats.OpenTickets},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return nil, err
		}
	}

	sheet := "Cultivos"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	header := []interface{}{"ID", "Usuario", "Tipo", "Municipio", "Fecha Inicio", "Fecha Fin Est.", "Estado"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, crop := range crops {
		state := cropStateLabels[crop.StateID]
		if state == "" {
			state = "Desconocido"
		}
		row := []interface{}{
			crop.ID,
			crop.UserID,
			crop.TypeName,
			crop.MunicipalityName,
			crop.StartDate,
			crop.EstimatedEndDate,
			state,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
