package ui

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/Spok95/lms-desktop/internal/app"
	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/models"
	"github.com/Spok95/lms-desktop/internal/storage"
)

// Client — консольный клиент: экран входа, по роли — один из трёх дашбордов,
// выход из дашборда возвращает на экран входа.
type Client struct {
	con       *Console
	db        *sql.DB
	log       *zap.SugaredLogger
	materials *storage.Materials
}

func NewClient(con *Console, database *sql.DB, log *zap.SugaredLogger, materials *storage.Materials) *Client {
	return &Client{con: con, db: database, log: log, materials: materials}
}

var roleChoices = []models.Role{models.Student, models.Teacher, models.Admin}

// Run крутит цикл «вход → дашборд → выход» до команды завершения.
func (c *Client) Run(ctx context.Context) {
	for {
		c.con.Println()
		c.con.Println("═══ Learning Management System ═══")
		c.con.Println("1) Войти")
		c.con.Println("0) Завершить работу")
		switch c.con.Prompt("Выбор") {
		case "1":
			sess := c.login(ctx)
			if sess == nil {
				continue
			}
			c.runDashboard(ctx, sess)
		case "0":
			return
		default:
			c.con.Println("Неизвестный пункт меню.")
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (c *Client) login(ctx context.Context) *app.Session {
	username := c.con.Prompt("Логин")
	password := c.con.PromptPassword("Пароль")

	c.con.Println("Роль:")
	for i, r := range roleChoices {
		c.con.Printf("  %d) %s\n", i+1, r)
	}
	n, err := c.con.PromptInt("Номер роли")
	if err != nil || n < 1 || n > len(roleChoices) {
		c.con.ShowError("Вход", errors.New("роль выбирается номером из списка"))
		return nil
	}

	sess, err := app.Login(ctx, c.db, c.log, username, password, string(roleChoices[n-1]))
	switch {
	case errors.Is(err, db.ErrInvalidCredentials):
		// не уточняем, какое поле не совпало
		c.con.ShowError("Вход", errors.New("неверные учётные данные"))
		return nil
	case err != nil:
		c.con.ShowError("Вход", err)
		return nil
	}
	c.con.ShowOK("Добро пожаловать, " + sess.FullName + "!")
	return sess
}

// runDashboard выбирает дашборд сопоставлением по закрытому типу роли.
func (c *Client) runDashboard(ctx context.Context, sess *app.Session) {
	switch sess.Role {
	case models.Admin:
		c.runAdmin(ctx, sess)
	case models.Teacher:
		c.runTeacher(ctx, sess)
	case models.Student:
		c.runStudent(ctx, sess)
	}
}
