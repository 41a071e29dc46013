package database

import (
	"database/sql"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

// GetActiveCropsByUser returns the user's crops in progress, joined to their
// type and municipality names. Dates come back in canonical YYYY-MM-DD text.
func GetActiveCropsByUser(db *sql.DB, userID string) ([]models.Crop, error) {
	query := `
		SELECT c.id, c.id_usuario, c.id_tipo_cultivo, tc.nombre_cultivo,
			   c.id_municipio, m.nombre,
			   to_char(c.fecha_inicio, 'YYYY-MM-DD'),
			   COALESCE(to_char(c.fecha_fin, 'YYYY-MM-DD'), ''),
			   c.id_estado_cultivo, c.creado_en
		FROM cultivos c
		JOIN tipos_cultivo tc ON c.id_tipo_cultivo = tc.id
		JOIN municipios m ON c.id_municipio = m.id
		WHERE c.id_usuario = $1 AND c.id_estado_cultivo = $2
		ORDER BY c.fecha_inicio, c.id
	`
	rows, err := db.Query(query, userID, models.CropInProgress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crops []models.Crop
	for rows.Next() {
		var c models.Crop
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.TypeID, &c.TypeName,
			&c.MunicipalityID, &c.MunicipalityName,
			&c.StartDate, &c.EstimatedEndDate, &c.StateID, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}
	return crops, rows.Err()
}

// GetAllCrops returns every crop with owner details, for the admin views and
// the Excel report.
func GetAllCrops(db *sql.DB) ([]models.Crop, error) {
	query := `
		SELECT c.id, c.id_usuario, c.id_tipo_cultivo, tc.nombre_cultivo,
			   c.id_municipio, m.nombre,
			   to_char(c.fecha_inicio, 'YYYY-MM-DD'),
			   COALESCE(to_char(c.fecha_fin, 'YYYY-MM-DD'), ''),
			   c.id_estado_cultivo, c.creado_en
		FROM cultivos c
		JOIN tipos_cultivo tc ON c.id_tipo_cultivo = tc.id
		JOIN municipios m ON c.id_municipio = m.id
		ORDER BY c.creado_en DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crops []models.Crop
	for rows.Next() {
		var c models.Crop
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.TypeID, &c.TypeName,
			&c.MunicipalityID, &c.MunicipalityName,
			&c.StartDate, &c.EstimatedEndDate, &c.StateID, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}
	return crops, rows.Err()
}

// GetCropByID fetches one crop; ownership is checked by the caller.
func GetCropByID(db *sql.DB, cropID int) (*models.Crop, error) {
	c := &models.Crop{}
	query := `
		SELECT c.id, c.id_usuario, c.id_tipo_cultivo, tc.nombre_cultivo,
			   c.id_municipio, m.nombre,
			   to_char(c.fecha_inicio, 'YYYY-MM-DD'),
			   COALESCE(to_char(c.fecha_fin, 'YYYY-MM-DD'), ''),
			   c.id_estado_cultivo, c.creado_en
		FROM cultivos c
		JOIN tipos_cultivo tc ON c.id_tipo_cultivo = tc.id
		JOIN municipios m ON c.id_municipio = m.id
		WHERE c.id = $1
	`
	err := db.QueryRow(query, cropID).Scan(
		&c.ID, &c.UserID, &c.TypeID, &c.TypeName,
		&c.MunicipalityID, &c.MunicipalityName,
		&c.StartDate, &c.EstimatedEndDate, &c.StateID, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCrop inserts the crop and seeds its default treatments from the crop
// type's template rows, dated relative to the start date.
func CreateCrop(db *sql.DB, crop *models.Crop) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO cultivos (id_usuario, id_tipo_cultivo, id_municipio, fecha_inicio, fecha_fin, id_estado_cultivo, creado_en)
		VALUES ($1, $2, $3, $4::date, NULLIF($5, '')::date, $6, NOW())
		RETURNING id, creado_en
	`
	if err := tx.QueryRow(query,
		crop.UserID, crop.TypeID, crop.MunicipalityID,
		crop.StartDate, crop.EstimatedEndDate, models.CropInProgress,
	).Scan(&crop.ID, &crop.CreatedAt); err != nil {
		return err
	}

	seed := `
		INSERT INTO tratamientos
			(id_cultivo, tipo_tratamiento, producto_usado, etapa, dosis, observaciones,
			 fecha_aplicacion_estimada, estado)
		SELECT $1, td.tipo_tratamiento, td.producto_usado, td.etapa, td.dosis, '',
			   $2::date + td.dias_desde_inicio, $3
		FROM tratamientos_predeterminados td
		WHERE td.id_tipo_cultivo = $4
	`
	if _, err := tx.Exec(seed, crop.ID, crop.StartDate, models.TreatmentPending, crop.TypeID); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateCropState moves a crop between lifecycle states (finish, cancel).
func UpdateCropState(db *sql.DB, cropID int, userID string, state models.CropState) error {
	query := `UPDATE cultivos SET id_estado_cultivo = $1 WHERE id = $2 AND id_usuario = $3`
	res, err := db.Exec(query, state, cropID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetCropTypes(db *sql.DB) ([]models.CropType, error) {
	rows, err := db.Query(`SELECT id, nombre_cultivo, dias_ciclo, COALESCE(descripcion, '') FROM tipos_cultivo ORDER BY nombre_cultivo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.CropType
	for rows.Next() {
		var t models.CropType
		if err := rows.Scan(&t.ID, &t.Name, &t.CycleDays, &t.Description); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func GetMunicipalities(db *sql.DB) ([]models.Municipality, error) {
	rows, err := db.Query(`SELECT id, nombre FROM municipios ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms []models.Municipality
	for rows.Next() {
		var m models.Municipality
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, rows.Err()
}
