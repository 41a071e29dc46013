package models

import "time"

type Ticket struct {
	ID        int          `json:"id"`
	UserID    string       `json:"user_id"`
	UserEmail string       `json:"user_email,omitempty"`
	Subject   string       `json:"subject"`
	Message   string       `json:"message"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	ClosedAt  *time.Time   `json:"closed_at,omitempty"`
}

// DashboardStats feeds the admin dashboard cards.
type DashboardStats struct {
	TotalUsers   int `json:"total_users"`
	TotalCrops   int `json:"total_crops"`
	TotalAnimals int `json:"total_animals"`
	OpenTickets  int `json:"open_tickets"`
}
