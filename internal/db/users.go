package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/models"
)

type UserRow struct {
	ID       int64
	Username string
	FullName string
	Email    string
	Role     models.Role
}

func ListUsers(ctx context.Context, database *sql.DB) ([]UserRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT user_id, username, full_name, email, role
		FROM users
		ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("список пользователей: %w", err)
	}
	defer rows.Close()

	var out []UserRow
	for rows.Next() {
		var u UserRow
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// CreateUser вставляет пользователя с уже захэшированным паролем.
// Дубликат username отдаём вызывающему как есть (23505 из схемы).
func CreateUser(ctx context.Context, database *sql.DB, u models.User) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id`,
		u.Username, u.PasswordHash, u.FullName, u.Email, string(u.Role)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("создание пользователя: %w", err)
	}
	return id, nil
}

// UpdateUser перезаписывает всё, кроме пароля.
func UpdateUser(ctx context.Context, database *sql.DB, id int64, username, fullName, email string, role models.Role) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	res, err := database.ExecContext(ctx, `
		UPDATE users SET username = $1, full_name = $2, email = $3, role = $4
		WHERE user_id = $5`,
		username, fullName, email, string(role), id)
	if err != nil {
		return fmt.Errorf("обновление пользователя: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPassword — отдельный путь сброса пароля (через Update пароль не меняется).
func SetPassword(ctx context.Context, database *sql.DB, id int64, hash string) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	res, err := database.ExecContext(ctx,
		`UPDATE users SET password_hash = $1 WHERE user_id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("сброс пароля: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUserReferences — сколько строк ссылаются на пользователя
// (курсы, записи на курсы, сдачи, сообщения).
func CountUserReferences(ctx context.Context, database *sql.DB, id int64) (int, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var n int
	err := database.QueryRowContext(ctx, `
		SELECT
		    (SELECT count(*) FROM courses WHERE teacher_id = $1)
		  + (SELECT count(*) FROM enrollments WHERE student_id = $1)
		  + (SELECT count(*) FROM submissions WHERE student_id = $1)
		  + (SELECT count(*) FROM messages WHERE sender_id = $1)`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("подсчёт ссылок на пользователя: %w", err)
	}
	return n, nil
}

// DeleteUser удаляет пользователя, только если на него никто не ссылается.
// Проверка и удаление идут в одной транзакции, чтобы между ними не вклинилась
// запись на курс.
func DeleteUser(ctx context.Context, database *sql.DB, id int64) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var refs int
	err = tx.QueryRowContext(ctx, `
		SELECT
		    (SELECT count(*) FROM courses WHERE teacher_id = $1)
		  + (SELECT count(*) FROM enrollments WHERE student_id = $1)
		  + (SELECT count(*) FROM submissions WHERE student_id = $1)
		  + (SELECT count(*) FROM messages WHERE sender_id = $1)`, id).Scan(&refs)
	if err != nil {
		return fmt.Errorf("подсчёт ссылок на пользователя: %w", err)
	}
	if refs > 0 {
		return &UserReferencedError{Refs: refs}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("удаление пользователя: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// GetUser нужен экранам редактирования.
func GetUser(ctx context.Context, database *sql.DB, id int64) (*models.User, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var u models.User
	err := database.QueryRowContext(ctx, `
		SELECT user_id, username, full_name, email, role
		FROM users WHERE user_id = $1`, id).
		Scan(&u.ID, &u.Username, &u.FullName, &u.Email, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
