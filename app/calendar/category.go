package calendar

import (
	"strings"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

// Category tags a calendar event for display.
type Category string

const (
	CategoryTreatment Category = "treatment"
	CategoryHarvest   Category = "harvest"
	CategoryCompleted Category = "completed"
)

// CSSClass returns the stylesheet class the templates use for the category.
func (c Category) CSSClass() string {
	switch c {
	case CategoryHarvest:
		return "evento-cosecha-final"
	case CategoryCompleted:
		return "evento-completado"
	default:
		return "evento-tratamiento"
	}
}

// Classify derives the display category for a treatment. Harvest wins over
// completed: a completed harvest still renders as a harvest marker.
func Classify(kind string, status models.TreatmentStatus) Category {
	if isHarvestText(kind) {
		return CategoryHarvest
	}
	if status == models.TreatmentCompleted {
		return CategoryCompleted
	}
	return CategoryTreatment
}

// isHarvestText reports whether the text marks a harvest or end of cycle.
func isHarvestText(s string) bool {
	l := strings.ToLower(s)
	return strings.Contains(l, "cosecha") || strings.Contains(l, "fin ciclo")
}
