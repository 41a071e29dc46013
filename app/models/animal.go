package models

import "time"

type Animal struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Species   string    `json:"species"`
	Name      string    `json:"name,omitempty"`
	Quantity  int       `json:"quantity"`
	Health    string    `json:"health,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
