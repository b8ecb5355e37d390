package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/models"
)

// Authenticate ищет пользователя по (username, role) и сверяет пароль с
// bcrypt-хэшем. Несовпадение любого из трёх полей даёт один и тот же
// ErrInvalidCredentials; недоступность базы — отдельная ошибка.
func Authenticate(ctx context.Context, database *sql.DB, username, password string, role models.Role) (*models.User, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var u models.User
	err := database.QueryRowContext(ctx, `
		SELECT user_id, username, password_hash, full_name, email, role
		FROM users
		WHERE username = $1 AND role = $2`, username, string(role)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Email, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("поиск пользователя: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	u.PasswordHash = ""
	return &u, nil
}

// HashPassword — единственное место, где создаются хэши паролей.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
