package database

import (
	"database/sql"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

// GetScheduledTreatments returns a crop's treatments that carry an estimated
// application date, in date order. Dates are selected as YYYY-MM-DD text so
// the calendar can compare them lexically.
func GetScheduledTreatments(db *sql.DB, cropID int) ([]models.Treatment, error) {
	query := `
		SELECT id, id_cultivo, tipo_tratamiento, COALESCE(producto_usado, ''),
			   COALESCE(etapa, ''), COALESCE(dosis, ''), COALESCE(observaciones, ''),
			   to_char(fecha_aplicacion_estimada, 'YYYY-MM-DD'),
			   COALESCE(to_char(fecha_realizacion, 'YYYY-MM-DD'), ''),
			   estado
		FROM tratamientos
		WHERE id_cultivo = $1 AND fecha_aplicacion_estimada IS NOT NULL
		ORDER BY fecha_aplicacion_estimada, id
	`
	rows, err := db.Query(query, cropID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var treatments []models.Treatment
	for rows.Next() {
		var t models.Treatment
		if err := rows.Scan(
			&t.ID, &t.CropID, &t.Kind, &t.ProductUsed,
			&t.Stage, &t.Dose, &t.Notes,
			&t.EstimatedDate, &t.CompletionDate, &t.Status,
		); err != nil {
			return nil, err
		}
		treatments = append(treatments, t)
	}
	return treatments, rows.Err()
}

// MarkTreatmentCompleted flips a pending treatment to completed, recording
// the completion date and any extra notes. Ownership runs through the crop
// join so a user can only complete their own treatments. Returns false when
// no row matched (wrong owner, unknown id, or already completed).
func MarkTreatmentCompleted(db *sql.DB, treatmentID int, userID, completionDate, notes string) (bool, error) {
	query := `
		UPDATE tratamientos t
		SET estado = $1, fecha_realizacion = $2::date,
			observaciones = TRIM(BOTH ' ' FROM COALESCE(t.observaciones, '') || CASE WHEN $3 <> '' THEN ' ' || $3 ELSE '' END)
		FROM cultivos c
		WHERE t.id = $4 AND t.id_cultivo = c.id AND c.id_usuario = $5 AND t.estado = $6
	`
	res, err := db.Exec(query, models.TreatmentCompleted, completionDate, notes,
		treatmentID, userID, models.TreatmentPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateTreatment adds a one-off treatment to a crop.
func CreateTreatment(db *sql.DB, t *models.Treatment) error {
	query := `
		INSERT INTO tratamientos
			(id_cultivo, tipo_tratamiento, producto_usado, etapa, dosis, observaciones,
			 fecha_aplicacion_estimada, estado)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date, $8)
		RETURNING id
	`
	return db.QueryRow(query,
		t.CropID, t.Kind, t.ProductUsed, t.Stage, t.Dose, t.Notes,
		t.EstimatedDate, models.TreatmentPending,
	).Scan(&t.ID)
}
