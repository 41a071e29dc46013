package models

// Treatment is a scheduled or completed agricultural action tied to one crop.
// EstimatedDate and CompletionDate are YYYY-MM-DD strings; empty means the
// column is null.
type Treatment struct {
	ID             int             `json:"id"`
	CropID         int             `json:"crop_id"`
	Kind           string          `json:"kind"`
	ProductUsed    string          `json:"product_used"`
	Stage          string          `json:"stage"`
	Dose           string          `json:"dose"`
	Notes          string          `json:"notes"`
	EstimatedDate  string          `json:"estimated_date"`
	CompletionDate string          `json:"completion_date,omitempty"`
	Status         TreatmentStatus `json:"status"`
}
