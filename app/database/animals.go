package database

import (
	"database/sql"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

func GetAnimalsByUser(db *sql.DB, userID string) ([]models.Animal, error) {
	query := `SELECT id, id_usuario, especie, COALESCE(nombre, ''), cantidad, COALESCE(estado_salud, ''), creado_en
			  FROM animales WHERE id_usuario = $1 ORDER BY creado_en DESC`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var animals []models.Animal
	for rows.Next() {
		var a models.Animal
		if err := rows.Scan(&a.ID, &a.UserID, &a.Species, &a.Name, &a.Quantity, &a.Health, &a.CreatedAt); err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	return animals, rows.Err()
}

func GetAllAnimals(db *sql.DB) ([]models.Animal, error) {
	query := `SELECT id, id_usuario, especie, COALESCE(nombre, ''), cantidad, COALESCE(estado_salud, ''), creado_en
			  FROM animales ORDER BY creado_en DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var animals []models.Animal
	for rows.Next() {
		var a models.Animal
		if err := rows.Scan(&a.ID, &a.UserID, &a.Species, &a.Name, &a.Quantity, &a.Health, &a.CreatedAt); err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	return animals, rows.Err()
}

func CreateAnimal(db *sql.DB, a *models.Animal) error {
	query := `INSERT INTO animales (id_usuario, especie, nombre, cantidad, estado_salud, creado_en)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, creado_en`
	return db.QueryRow(query, a.UserID, a.Species, a.Name, a.Quantity, a.Health).
		Scan(&a.ID, &a.CreatedAt)
}

func DeleteAnimal(db *sql.DB, animalID int, userID string) error {
	res, err := db.Exec(`DELETE FROM animales WHERE id = $1 AND id_usuario = $2`, animalID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
