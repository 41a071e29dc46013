package calendar

// DateFormat is the canonical date form used across the calendar. Dates are
// compared as strings, never parsed through a timezone.
const DateFormat = "2006-01-02"

// Event is one day-anchored item for display. Events are rebuilt from crop
// and treatment rows on every page load and never persisted. ID is nil for
// synthetic harvest markers, which have no backing treatment row.
type Event struct {
	ID          *int     `json:"id,omitempty"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	CropID      int      `json:"cropId"`
	Status      string   `json:"status"`
}

// Selectable reports whether the event can be opened in the detail flow.
// Synthetic harvest markers are display-only.
func (e Event) Selectable() bool {
	return e.ID != nil
}
