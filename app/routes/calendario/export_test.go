package calendario

import (
	"bytes"
	"strings"
	"testing"

	ical "github.com/emersion/go-ical"

	"github.com/DavidBallares/proyecto-gag/app/calendar"
)

func TestBuildICS(t *testing.T) {
	id := 42
	events := []calendar.Event{
		{
			ID: &id, Title: "Riego - Tomate (Ibagué)", Date: "2024-06-10",
			Description: "N/A para Tomate (Ibagué). Etapa: Floración. Obs: ",
			Category:    calendar.CategoryTreatment, CropID: 7, Status: "Pendiente",
		},
		{
			Title: "Cosecha Principal Est. - Tomate (Ibagué)", Date: "2024-06-30",
			Description: "Fecha estimada para la cosecha principal de Tomate (Ibagué)",
			Category:    calendar.CategoryHarvest, CropID: 7, Status: "Pendiente",
		},
	}

	cal, err := BuildICS(events)
	if err != nil {
		t.Fatalf("BuildICS: %v", err)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		t.Fatalf("encoding: %v", err)
	}
	body := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//proyecto-gag//Calendario//ES",
		"UID:tratamiento-42@gag",
		"SUMMARY:Riego - Tomate (Ibagué)",
		"SUMMARY:Cosecha Principal Est. - Tomate (Ibagué)",
		"END:VCALENDAR",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("ICS output missing %q", want)
		}
	}

	if strings.Count(body, "BEGIN:VEVENT") != 2 {
		t.Errorf("expected 2 VEVENT blocks, got %d", strings.Count(body, "BEGIN:VEVENT"))
	}
}

func TestBuildICSRejectsMalformedDate(t *testing.T) {
	events := []calendar.Event{{Title: "x", Date: "10/06/2024"}}
	if _, err := BuildICS(events); err == nil {
		t.Error("malformed date should fail the export")
	}
}
