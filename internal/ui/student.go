package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/app"
	"github.com/Spok95/lms-desktop/internal/db"
)

func (c *Client) runStudent(ctx context.Context, sess *app.Session) {
	desk := app.NewStudentDesk(c.db, c.log, sess)
	for {
		c.con.Println()
		c.con.Println("─── Дашборд студента ───")
		c.con.Println("1) Мои курсы")
		c.con.Println("2) Записаться на курс")
		c.con.Println("3) Задания")
		c.con.Println("4) Сдать задание")
		c.con.Println("5) Материалы")
		c.con.Println("6) Скачать материал")
		c.con.Println("7) Сообщения")
		c.con.Println("0) Выйти из системы")

		switch c.con.Prompt("Выбор") {
		case "1":
			c.studentCourses(ctx, desk)
		case "2":
			c.studentEnroll(ctx, desk)
		case "3":
			c.studentAssignments(ctx, desk)
		case "4":
			c.studentSubmit(ctx, desk)
		case "5":
			c.studentMaterials(ctx, desk)
		case "6":
			c.studentDownload(ctx, desk)
		case "7":
			c.studentMessages(ctx, desk)
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

func (c *Client) studentCourses(ctx context.Context, desk *app.StudentDesk) {
	courses, err := desk.Courses(ctx)
	if err != nil {
		c.con.ShowError("Загрузка курсов", err)
		return
	}
	rows := make([][]string, 0, len(courses))
	for _, cr := range courses {
		rows = append(rows, []string{
			cr.Code, cr.Name, OrDash(cr.TeacherName), fmt.Sprint(cr.Credits), OrDash(cr.Grade),
		})
	}
	RenderTable(c.con.out, []string{"Код", "Название", "Преподаватель", "Кредиты", "Оценка"}, rows)
}

func (c *Client) studentEnroll(ctx context.Context, desk *app.StudentDesk) {
	courses, err := desk.EligibleCourses(ctx)
	if err != nil {
		c.con.ShowError("Запись на курс", err)
		return
	}
	if len(courses) == 0 {
		c.con.Println("Доступных курсов нет.")
		return
	}
	c.con.Println("Доступные курсы:")
	for _, cr := range courses {
		c.con.Printf("  %d) %s — %s\n", cr.ID, cr.Code, cr.Name)
	}
	id, err := c.con.PromptInt64("ID курса")
	if err != nil {
		c.con.ShowError("Запись на курс", err)
		return
	}
	err = desk.Enroll(ctx, id)
	if errors.Is(err, db.ErrAlreadyEnrolled) {
		// список успел устареть — не авария
		c.con.Println("Вы уже записаны на этот курс.")
		return
	}
	if err != nil {
		c.con.ShowError("Запись на курс", err)
		return
	}
	c.con.ShowOK("Вы записаны на курс!")
}

func (c *Client) studentAssignments(ctx context.Context, desk *app.StudentDesk) {
	items, err := desk.Assignments(ctx)
	if err != nil {
		c.con.ShowError("Загрузка заданий", err)
		return
	}
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{
			fmt.Sprint(a.AssignmentID), a.Title, a.CourseName,
			a.DueDate.Format("2006-01-02"), fmt.Sprint(a.MaxMarks),
			IntOrDash(a.Marks), app.AssignmentStatus(a),
		})
	}
	RenderTable(c.con.out,
		[]string{"ID", "Задание", "Курс", "Срок", "Макс", "Баллы", "Статус"}, rows)
}

func (c *Client) studentSubmit(ctx context.Context, desk *app.StudentDesk) {
	items, err := desk.Assignments(ctx)
	if err != nil {
		c.con.ShowError("Сдача задания", err)
		return
	}
	if len(items) == 0 {
		c.con.Println("Заданий нет.")
		return
	}
	c.studentAssignments(ctx, desk)
	id, err := c.con.PromptInt64("ID задания")
	if err != nil {
		c.con.ShowError("Сдача задания", err)
		return
	}
	for _, a := range items {
		if a.AssignmentID == id && a.HasSubmission {
			if !c.con.Confirm("Вы уже сдавали это задание. Пересдать?") {
				return
			}
			break
		}
	}
	comments := c.con.Prompt("Комментарий")
	file := c.con.Prompt("Файл (необязательно)")
	resubmitted, err := desk.Submit(ctx, id, comments)
	if err != nil {
		c.con.ShowError("Сдача задания", err)
		return
	}
	msg := "Задание сдано!"
	if resubmitted {
		msg = "Задание пересдано!"
	}
	if file != "" {
		msg += " Файл: " + file
	}
	c.con.ShowOK(msg)
}

func (c *Client) studentMaterials(ctx context.Context, desk *app.StudentDesk) {
	items, err := desk.Materials(ctx)
	if err != nil {
		c.con.ShowError("Загрузка материалов", err)
		return
	}
	rows := make([][]string, 0, len(items))
	for i, m := range items {
		rows = append(rows, []string{
			fmt.Sprint(i + 1), m.Title, m.CourseName, m.Description,
			m.UploadedAt.Format("2006-01-02 15:04"),
		})
	}
	RenderTable(c.con.out, []string{"№", "Название", "Курс", "Описание", "Загружен"}, rows)
}

func (c *Client) studentDownload(ctx context.Context, desk *app.StudentDesk) {
	items, err := desk.Materials(ctx)
	if err != nil {
		c.con.ShowError("Скачивание материала", err)
		return
	}
	if len(items) == 0 {
		c.con.Println("Материалов нет.")
		return
	}
	c.studentMaterials(ctx, desk)
	n, err := c.con.PromptInt("№ материала")
	if err != nil || n < 1 || n > len(items) {
		c.con.ShowError("Скачивание материала", errors.New("материал выбирается номером из списка"))
		return
	}
	dest := c.con.Prompt("Куда сохранить (путь к файлу)")
	if err := desk.DownloadMaterial(items[n-1].FilePath, dest); err != nil {
		c.con.ShowError("Скачивание материала", err)
		return
	}
	c.con.ShowOK("Файл сохранён: " + dest)
}

func (c *Client) studentMessages(ctx context.Context, desk *app.StudentDesk) {
	items, err := desk.Messages(ctx)
	if err != nil {
		c.con.ShowError("Загрузка сообщений", err)
		return
	}
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			m.Subject, m.CourseName, m.Body, m.SentAt.Format("2006-01-02 15:04"),
		})
	}
	RenderTable(c.con.out, []string{"Тема", "Курс", "Текст", "Отправлено"}, rows)
}
