package calendario

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DavidBallares/proyecto-gag/app/calendar"
	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
	"github.com/DavidBallares/proyecto-gag/app/routes/auth"
)

// SetupCalendarRoutes sets up the activity calendar routes
func SetupCalendarRoutes(app *fiber.App) {
	// Page routes
	app.Get("/calendario", auth.AuthMiddleware, renderCalendarPage)

	// API routes
	api := app.Group("/api", auth.AuthMiddleware)
	api.Get("/calendario/eventos", GetEventsAPI)
	api.Get("/calendario/export.ics", ExportICSAPI)
	api.Post("/tratamientos/:id/completar", CompleteTreatmentAPI)
}

// loadUserEvents builds the user's event list. A query failure for one crop
// degrades to "no events for that crop" and one aggregate banner message; a
// failure listing the crops themselves yields an empty calendar.
func loadUserEvents(userID string) ([]calendar.Event, string) {
	db := config.GetDB()

	crops, err := database.GetActiveCropsByUser(db, userID)
	if err != nil {
		log.Printf("Error fetching crops for user %s: %v", userID, err)
		return nil, "Error al cargar datos para el calendario."
	}

	errorMsg := ""
	treatmentsByCrop := make(map[int][]models.Treatment, len(crops))
	for _, crop := range crops {
		treatments, err := database.GetScheduledTreatments(db, crop.ID)
		if err != nil {
			log.Printf("Error fetching treatments for crop %d: %v", crop.ID, err)
			errorMsg = "Algunas actividades no se pudieron cargar."
			continue
		}
		treatmentsByCrop[crop.ID] = treatments
	}

	return calendar.DeriveEvents(crops, treatmentsByCrop), errorMsg
}

func renderCalendarPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	now := time.Now()
	cursor := calendar.CursorFor(now)
	if y, err := strconv.Atoi(c.Query("anio")); err == nil {
		if m, err := strconv.Atoi(c.Query("mes")); err == nil && m >= 1 && m <= 12 {
			cursor = calendar.Cursor{Year: y, Month: m}
		}
	}

	events, errorMsg := loadUserEvents(user.ID)
	grid := calendar.Render(cursor, now.Format(calendar.DateFormat), events)

	prev := cursor.Advance(-1)
	next := cursor.Advance(1)

	return c.Render("calendario/index", fiber.Map{
		"Title":        "Mi Calendario de Actividades - GAG",
		"CurrentPage":  "calendario",
		"User":         user,
		"Grid":         grid,
		"Events":       events,
		"HasEvents":    len(events) > 0,
		"ErrorMessage": errorMsg,
		"MonthLabel":   cursor.Label(),
		"PrevYear":     prev.Year,
		"PrevMonth":    prev.Month,
		"NextYear":     next.Year,
		"NextMonth":    next.Month,
	})
}
