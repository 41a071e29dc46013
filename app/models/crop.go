package models

import "time"

// Crop is a user's cultivation joined to its type and municipality names.
// Date fields use the canonical YYYY-MM-DD form; EstimatedEndDate is empty
// when the row has no fecha_fin.
type Crop struct {
	ID               int       `json:"id"`
	UserID           string    `json:"user_id"`
	TypeID           int       `json:"type_id"`
	TypeName         string    `json:"type_name"`
	MunicipalityID   int       `json:"municipality_id"`
	MunicipalityName string    `json:"municipality_name"`
	StartDate        string    `json:"start_date"`
	EstimatedEndDate string    `json:"estimated_end_date,omitempty"`
	StateID          CropState `json:"state_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// DisplayName is the label shown for the crop across the calendar and
// reports, e.g. "Tomate (Ibagué)".
func (c *Crop) DisplayName() string {
	return c.TypeName + " (" + c.MunicipalityName + ")"
}

// CropType is a catalog entry; default treatments are seeded from it when a
// crop is created.
type CropType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CycleDays   int    `json:"cycle_days"`
	Description string `json:"description,omitempty"`
}

// Municipality is a catalog entry for crop locations and weather lookups.
type Municipality struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultTreatment is a template row applied to new crops of a given type.
type DefaultTreatment struct {
	ID          int    `json:"id"`
	CropTypeID  int    `json:"crop_type_id"`
	Kind        string `json:"kind"`
	ProductUsed string `json:"product_used"`
	Stage       string `json:"stage"`
	Dose        string `json:"dose"`
	DayOffset   int    `json:"day_offset"`
}
