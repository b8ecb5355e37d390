package ui

import (
	"context"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/app"
)

func (c *Client) runAdmin(ctx context.Context, sess *app.Session) {
	adm := app.NewAdmin(c.db, c.log, sess)
	for {
		c.con.Println()
		c.con.Println("─── Дашборд администратора ───")
		c.con.Println("1) Пользователи")
		c.con.Println("2) Добавить пользователя")
		c.con.Println("3) Изменить пользователя")
		c.con.Println("4) Сбросить пароль")
		c.con.Println("5) Удалить пользователя")
		c.con.Println("6) Курсы")
		c.con.Println("7) Добавить курс")
		c.con.Println("8) Удалить курс")
		c.con.Println("9) Статистика")
		c.con.Println("10) Экспорт пользователей (xlsx)")
		c.con.Println("0) Выйти из системы")

		switch c.con.Prompt("Выбор") {
		case "1":
			c.adminUsers(ctx, adm)
		case "2":
			c.adminAddUser(ctx, adm)
		case "3":
			c.adminEditUser(ctx, adm)
		case "4":
			c.adminResetPassword(ctx, adm)
		case "5":
			c.adminDeleteUser(ctx, adm)
		case "6":
			c.adminCourses(ctx, adm)
		case "7":
			c.adminAddCourse(ctx, adm)
		case "8":
			c.adminDeleteCourse(ctx, adm)
		case "9":
			c.adminStats(ctx, adm)
		case "10":
			path, err := adm.ExportUsers(ctx)
			if err != nil {
				c.con.ShowError("Экспорт пользователей", err)
				break
			}
			c.con.ShowOK("Файл сохранён: " + path)
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

func (c *Client) adminUsers(ctx context.Context, adm *app.Admin) {
	v, err := adm.Users(ctx)
	if err != nil {
		c.con.ShowError("Загрузка пользователей", err)
		return
	}
	rows := make([][]string, 0, len(v.Rows))
	for _, u := range v.Rows {
		rows = append(rows, []string{fmt.Sprint(u.ID), u.Username, u.FullName, u.Email, string(u.Role)})
	}
	RenderTable(c.con.out, []string{"ID", "Логин", "Имя", "Почта", "Роль"}, rows)
	c.con.Printf("Всего: %d, студентов: %d, преподавателей: %d\n", v.Total, v.Students, v.Teachers)
}

func (c *Client) adminAddUser(ctx context.Context, adm *app.Admin) {
	f := app.UserForm{
		Username: c.con.Prompt("Логин"),
		Password: c.con.PromptPassword("Пароль"),
		FullName: c.con.Prompt("Полное имя"),
		Email:    c.con.Prompt("Почта"),
		Role:     c.con.Prompt("Роль (student/teacher/admin)"),
	}
	if _, err := adm.CreateUser(ctx, f); err != nil {
		c.con.ShowError("Добавление пользователя", err)
		return
	}
	c.con.ShowOK("Пользователь добавлен.")
}

func (c *Client) adminEditUser(ctx context.Context, adm *app.Admin) {
	id, err := c.con.PromptInt64("ID пользователя")
	if err != nil {
		c.con.ShowError("Изменение пользователя", err)
		return
	}
	f := app.UserUpdateForm{
		Username: c.con.Prompt("Логин"),
		FullName: c.con.Prompt("Полное имя"),
		Email:    c.con.Prompt("Почта"),
		Role:     c.con.Prompt("Роль (student/teacher/admin)"),
	}
	if err := adm.UpdateUser(ctx, id, f); err != nil {
		c.con.ShowError("Изменение пользователя", err)
		return
	}
	c.con.ShowOK("Пользователь обновлён.")
}

func (c *Client) adminResetPassword(ctx context.Context, adm *app.Admin) {
	id, err := c.con.PromptInt64("ID пользователя")
	if err != nil {
		c.con.ShowError("Сброс пароля", err)
		return
	}
	password := c.con.PromptPassword("Новый пароль")
	if err := adm.ResetPassword(ctx, id, password); err != nil {
		c.con.ShowError("Сброс пароля", err)
		return
	}
	c.con.ShowOK("Пароль обновлён.")
}

func (c *Client) adminDeleteUser(ctx context.Context, adm *app.Admin) {
	id, err := c.con.PromptInt64("ID пользователя")
	if err != nil {
		c.con.ShowError("Удаление пользователя", err)
		return
	}
	if !c.con.Confirm(fmt.Sprintf("Удалить пользователя %d?", id)) {
		return
	}
	if err := adm.DeleteUser(ctx, id); err != nil {
		c.con.ShowError("Удаление пользователя", err)
		return
	}
	c.con.ShowOK("Пользователь удалён.")
}

func (c *Client) adminCourses(ctx context.Context, adm *app.Admin) {
	courses, err := adm.Courses(ctx)
	if err != nil {
		c.con.ShowError("Загрузка курсов", err)
		return
	}
	rows := make([][]string, 0, len(courses))
	for _, cr := range courses {
		teacher := "Без преподавателя"
		if cr.TeacherName != nil {
			teacher = *cr.TeacherName
		}
		rows = append(rows, []string{fmt.Sprint(cr.ID), cr.Code, cr.Name, teacher, fmt.Sprint(cr.Credits)})
	}
	RenderTable(c.con.out, []string{"ID", "Код", "Название", "Преподаватель", "Кредиты"}, rows)
}

func (c *Client) adminAddCourse(ctx context.Context, adm *app.Admin) {
	teachers, err := adm.TeacherOptions(ctx)
	if err != nil {
		c.con.ShowError("Добавление курса", err)
		return
	}
	if len(teachers) == 0 {
		c.con.ShowError("Добавление курса",
			fmt.Errorf("нет ни одного преподавателя — сначала создайте пользователя с ролью teacher"))
		return
	}
	c.con.Println("Преподаватели:")
	for _, t := range teachers {
		c.con.Printf("  %d) %s\n", t.ID, t.FullName)
	}

	f := app.CourseForm{
		Code:        c.con.Prompt("Код курса"),
		Name:        c.con.Prompt("Название"),
		Description: c.con.Prompt("Описание"),
	}
	f.TeacherID, err = c.con.PromptInt64("ID преподавателя")
	if err != nil {
		c.con.ShowError("Добавление курса", err)
		return
	}
	f.Credits, err = c.con.PromptInt("Кредиты")
	if err != nil {
		c.con.ShowError("Добавление курса", err)
		return
	}
	if _, err := adm.CreateCourse(ctx, f); err != nil {
		c.con.ShowError("Добавление курса", err)
		return
	}
	c.con.ShowOK("Курс добавлен.")
}

func (c *Client) adminDeleteCourse(ctx context.Context, adm *app.Admin) {
	id, err := c.con.PromptInt64("ID курса")
	if err != nil {
		c.con.ShowError("Удаление курса", err)
		return
	}
	n, err := adm.CourseDeleteImpact(ctx, id)
	if err != nil {
		c.con.ShowError("Удаление курса", err)
		return
	}
	warn := fmt.Sprintf("Удалить курс %d?", id)
	if n > 0 {
		warn = fmt.Sprintf("На курс записано студентов: %d. Удаление снесёт записи, задания и сдачи. Удалить курс %d?", n, id)
	}
	if !c.con.Confirm(warn) {
		return
	}
	if err := adm.DeleteCourse(ctx, id); err != nil {
		c.con.ShowError("Удаление курса", err)
		return
	}
	c.con.ShowOK("Курс удалён.")
}

func (c *Client) adminStats(ctx context.Context, adm *app.Admin) {
	s, err := adm.Stats(ctx)
	if err != nil {
		c.con.ShowError("Статистика", err)
		return
	}
	RenderTable(c.con.out, []string{"Показатель", "Значение"}, [][]string{
		{"Всего пользователей", fmt.Sprint(s.Users)},
		{"Студентов", fmt.Sprint(s.Students)},
		{"Преподавателей", fmt.Sprint(s.Teachers)},
		{"Курсов", fmt.Sprint(s.Courses)},
		{"Записей на курсы", fmt.Sprint(s.Enrollments)},
		{"Заданий", fmt.Sprint(s.Assignments)},
	})
}
