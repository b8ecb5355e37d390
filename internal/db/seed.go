package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/models"
)

// EnsureAdmin создаёт администратора в пустой базе. Если админ уже есть —
// ничего не делает. Пустой пароль означает «не заводить».
func EnsureAdmin(ctx context.Context, database *sql.DB, username, password, fullName, email string) error {
	if password == "" {
		return nil
	}
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var exists bool
	err := database.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = 'admin')`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("проверка наличия админа: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = database.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING`,
		username, hash, fullName, email, string(models.Admin))
	if err != nil {
		return fmt.Errorf("создание записи админа: %w", err)
	}
	return nil
}
