package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/models"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Login проверяет тройку (логин, пароль, роль) и отдаёт сессию.
// Поля проверяются до похода в базу; роль приходит из фиксированного
// списка, но на всякий случай разбирается в закрытый тип.
func Login(ctx context.Context, database *sql.DB, log *zap.SugaredLogger, username, password, role string) (*Session, error) {
	op := "login"
	if err := checkStruct(loginForm{Username: username, Password: password}); err != nil {
		return nil, observe(log, op, err)
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return nil, observe(log, op, invalidf("недопустимая роль"))
	}

	u, err := db.Authenticate(ctx, database, username, password, r)
	if err != nil {
		return nil, observe(log, op, err)
	}

	log.Infow("вход выполнен", "user_id", u.ID, "role", u.Role)
	return &Session{UserID: u.ID, FullName: u.FullName, Role: u.Role}, nil
}
