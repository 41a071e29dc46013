package models

// Role IDs as stored in the usuarios table.
const (
	RoleAdmin = 1
	RoleUser  = 2
)

// CropState defines the lifecycle states of a crop.
type CropState int

const (
	CropInProgress CropState = 1
	CropFinished   CropState = 2
	CropCancelled  CropState = 3
)

// TreatmentStatus defines the possible status values for a treatment.
// Values match the text persisted by the store.
type TreatmentStatus string

const (
	TreatmentPending   TreatmentStatus = "Pendiente"
	TreatmentCompleted TreatmentStatus = "Completado"
	TreatmentCancelled TreatmentStatus = "Cancelado"
)

// TicketStatus defines the status values for a support ticket.
type TicketStatus string

const (
	TicketOpen   TicketStatus = "Abierto"
	TicketClosed TicketStatus = "Cerrado"
)
