package calendar

import (
	"github.com/DavidBallares/proyecto-gag/app/models"
)

// principalHarvestTitle prefixes the synthetic event added for a crop's
// estimated end date.
const principalHarvestTitle = "Cosecha Principal Est. - "

// DeriveEvents turns crop and treatment rows into the flat event list for one
// user. Crops are processed in input order and each crop's treatments in their
// input order, so the output is deterministic.
//
// For every treatment with an estimated date one event is produced. After a
// crop's treatments are processed, a synthetic harvest marker is appended for
// the crop's estimated end date unless one of the crop's own events already
// marks a harvest on that exact date. Two real treatments sharing a date are
// both kept; only the synthetic-versus-real collision is suppressed.
func DeriveEvents(crops []models.Crop, treatmentsByCrop map[int][]models.Treatment) []Event {
	var events []Event
	for i := range crops {
		events = append(events, deriveCropEvents(&crops[i], treatmentsByCrop[crops[i].ID])...)
	}
	return events
}

func deriveCropEvents(crop *models.Crop, treatments []models.Treatment) []Event {
	display := crop.DisplayName()

	var events []Event
	for _, t := range treatments {
		if t.EstimatedDate == "" {
			continue
		}
		id := t.ID
		events = append(events, Event{
			ID:          &id,
			Title:       t.Kind + " - " + display,
			Date:        t.EstimatedDate,
			Description: describeTreatment(&t, display),
			Category:    Classify(t.Kind, t.Status),
			CropID:      crop.ID,
			Status:      string(t.Status),
		})
	}

	// Post-pass: anchor the crop's end date on the calendar unless a real
	// harvest event already sits on it.
	if crop.EstimatedEndDate != "" && !hasHarvestOn(events, crop.EstimatedEndDate) {
		events = append(events, Event{
			Title:       principalHarvestTitle + display,
			Date:        crop.EstimatedEndDate,
			Description: "Fecha estimada para la cosecha principal de " + display,
			Category:    CategoryHarvest,
			CropID:      crop.ID,
			Status:      string(models.TreatmentPending),
		})
	}
	return events
}

// hasHarvestOn scans a crop's already-built events for a harvest marker on
// the given date. The scan matches on title wording, preserving the store's
// established duplicate check.
func hasHarvestOn(events []Event, date string) bool {
	for _, e := range events {
		if e.Date == date && isHarvestText(e.Title) {
			return true
		}
	}
	return false
}

func describeTreatment(t *models.Treatment, display string) string {
	product := "N/A"
	if t.ProductUsed != "" {
		product = t.ProductUsed + " (" + t.Dose + ")"
	}
	return product + " para " + display + ". Etapa: " + t.Stage + ". Obs: " + t.Notes
}
