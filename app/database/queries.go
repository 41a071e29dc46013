package database

import (
	"database/sql"
	"time"

	"github.com/DavidBallares/proyecto-gag/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, contrasena, nombre, COALESCE(telefono, ''), id_rol, activo, created_at, updated_at
			  FROM usuarios WHERE email = $1 AND activo = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
		&user.Phone, &user.RoleID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, contrasena, nombre, COALESCE(telefono, ''), id_rol, activo, created_at, updated_at
			  FROM usuarios WHERE id = $1 AND activo = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name,
		&user.Phone, &user.RoleID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO usuarios (email, contrasena, nombre, telefono, id_rol, activo, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, user.Email, user.Password, user.Name, user.Phone, user.RoleID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE usuarios SET contrasena = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sesiones (id, id_usuario, expira_en, creado_en) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, id_usuario, expira_en, creado_en FROM sesiones WHERE id = $1 AND expira_en > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteExpiredSessions(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM sesiones WHERE expira_en <= NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SetResetToken stores a single-use recovery token on the user row,
// replacing any previous token.
func SetResetToken(db *sql.DB, userID, token string, expiresAt time.Time) error {
	query := `UPDATE usuarios
			  SET token_recuperacion = $1, token_expiracion = $2, token_usado = false, updated_at = NOW()
			  WHERE id = $3`
	_, err := db.Exec(query, token, expiresAt, userID)
	return err
}

// GetPasswordReset looks up a recovery token regardless of validity; the
// caller decides between used, expired and valid.
func GetPasswordReset(db *sql.DB, token string) (*models.PasswordReset, error) {
	reset := &models.PasswordReset{}
	query := `SELECT id, token_recuperacion, token_expiracion, token_usado
			  FROM usuarios WHERE token_recuperacion = $1`

	err := db.QueryRow(query, token).Scan(
		&reset.UserID, &reset.Token, &reset.ExpiresAt, &reset.Used,
	)
	if err != nil {
		return nil, err
	}
	return reset, nil
}

// InvalidateResetToken burns a token so it cannot be replayed.
func InvalidateResetToken(db *sql.DB, token string) error {
	query := `UPDATE usuarios
			  SET token_recuperacion = NULL, token_expiracion = NULL, token_usado = true
			  WHERE token_recuperacion = $1`
	_, err := db.Exec(query, token)
	return err
}

// ResetPasswordByToken sets the new hash and burns the token in one
// statement. It re-checks validity so a token cannot be raced between page
// load and form submit. Returns false when the token was no longer usable.
func ResetPasswordByToken(db *sql.DB, token, hashedPassword string) (bool, error) {
	query := `UPDATE usuarios
			  SET contrasena = $1, token_recuperacion = NULL, token_expiracion = NULL,
				  token_usado = true, updated_at = NOW()
			  WHERE token_recuperacion = $2 AND token_usado = false AND token_expiracion > NOW()`
	res, err := db.Exec(query, hashedPassword, token)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// PurgeExpiredResetTokens clears tokens past their expiry.
func PurgeExpiredResetTokens(db *sql.DB) (int64, error) {
	res, err := db.Exec(`UPDATE usuarios
						 SET token_recuperacion = NULL, token_expiracion = NULL, token_usado = true
						 WHERE token_recuperacion IS NOT NULL AND token_expiracion <= NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
