package database

import (
	"database/sql"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

func CreateTicket(db *sql.DB, t *models.Ticket) error {
	query := `INSERT INTO tickets_soporte (id_usuario, asunto, mensaje, estado_ticket, creado_en)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING id, creado_en`
	return db.QueryRow(query, t.UserID, t.Subject, t.Message, models.TicketOpen).
		Scan(&t.ID, &t.CreatedAt)
}

func GetTicketsByUser(db *sql.DB, userID string) ([]models.Ticket, error) {
	query := `SELECT id, id_usuario, asunto, mensaje, estado_ticket, creado_en, cerrado_en
			  FROM tickets_soporte WHERE id_usuario = $1 ORDER BY creado_en DESC`
	return scanTickets(db.Query(query, userID))
}

func GetAllTickets(db *sql.DB) ([]models.Ticket, error) {
	query := `SELECT t.id, t.id_usuario, t.asunto, t.mensaje, t.estado_ticket, t.creado_en, t.cerrado_en, u.email
			  FROM tickets_soporte t
			  JOIN usuarios u ON t.id_usuario = u.id
			  ORDER BY t.estado_ticket, t.creado_en DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.ClosedAt, &t.UserEmail); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func CloseTicket(db *sql.DB, ticketID int) error {
	query := `UPDATE tickets_soporte SET estado_ticket = $1, cerrado_en = NOW() WHERE id = $2 AND estado_ticket = $3`
	res, err := db.Exec(query, models.TicketClosed, ticketID, models.TicketOpen)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanTickets(rows *sql.Rows, err error) ([]models.Ticket, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.ClosedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
