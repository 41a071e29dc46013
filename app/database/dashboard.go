package database

import (
	"database/sql"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

// GetDashboardStats returns the counters for the admin dashboard cards.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM usuarios WHERE id_rol = $1 AND activo = true`, models.RoleUser).
		Scan(&stats.TotalUsers)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM cultivos`).Scan(&stats.TotalCrops)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM animales`).Scan(&stats.TotalAnimals)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM tickets_soporte WHERE estado_ticket = $1`, models.TicketOpen).
		Scan(&stats.OpenTickets)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
