package calendario

import (
	"bytes"
	"fmt"
	"time"

	ical "github.com/emersion/go-ical"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/DavidBallares/proyecto-gag/app/calendar"
	"github.com/DavidBallares/proyecto-gag/app/models"
)

// ExportICSAPI serves the caller's calendar as an iCalendar file so events
// can be imported into an external calendar application.
func ExportICSAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	events, _ := loadUserEvents(user.ID)

	cal, err := BuildICS(events)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo generar el calendario."})
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "No se pudo generar el calendario."})
	}

	c.Set("Content-Type", "text/calendar; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="calendario-gag.ics"`)
	return c.Send(buf.Bytes())
}

// BuildICS converts the derived event list into a VCALENDAR. Each event
// spans its scheduled day, midnight to midnight UTC. Treatment-backed events
// get a stable UID from their id; synthetic harvest markers get a random one.
func BuildICS(events []calendar.Event) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//proyecto-gag//Calendario//ES")

	for _, e := range events {
		start, err := time.ParseInLocation(calendar.DateFormat, e.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("event %q has malformed date %q: %w", e.Title, e.Date, err)
		}

		uid := uuid.NewString() + "@gag"
		if e.ID != nil {
			uid = fmt.Sprintf("tratamiento-%d@gag", *e.ID)
		}

		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, uid)
		ve.Props.SetText(ical.PropSummary, e.Title)
		ve.Props.SetText(ical.PropDescription, e.Description)
		ve.Props.SetText(ical.PropStatus, icsStatus(e))
		ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
		ve.Props.SetDateTime(ical.PropDateTimeStart, start)
		ve.Props.SetDateTime(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
		cal.Children = append(cal.Children, ve)
	}
	return cal, nil
}

func icsStatus(e calendar.Event) string {
	if e.Status == string(models.TreatmentCompleted) {
		return "CONFIRMED"
	}
	return "TENTATIVE"
}
