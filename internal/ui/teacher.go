package ui

import (
	"context"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/app"
)

func (c *Client) runTeacher(ctx context.Context, sess *app.Session) {
	desk := app.NewTeacherDesk(c.db, c.log, sess, c.materials)
	for {
		c.con.Println()
		c.con.Println("─── Дашборд преподавателя ───")
		c.con.Println("1) Мои курсы")
		c.con.Println("2) Мои студенты")
		c.con.Println("3) Создать задание")
		c.con.Println("4) Проверить сдачи")
		c.con.Println("5) Загрузить материал")
		c.con.Println("6) Отправить сообщение")
		c.con.Println("7) Экспорт журнала (xlsx)")
		c.con.Println("0) Выйти из системы")

		switch c.con.Prompt("Выбор") {
		case "1":
			c.teacherCourses(ctx, desk)
		case "2":
			c.teacherStudents(ctx, desk)
		case "3":
			c.teacherAddAssignment(ctx, desk)
		case "4":
			c.teacherGrade(ctx, desk)
		case "5":
			c.teacherUploadMaterial(ctx, desk)
		case "6":
			c.teacherSendMessage(ctx, desk)
		case "7":
			path, err := desk.ExportGradebook(ctx)
			if err != nil {
				c.con.ShowError("Экспорт журнала", err)
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

func (c *Client) teacherCourses(ctx context.Context, desk *app.TeacherDesk) {
	courses, err := desk.MyCourses(ctx)
	if err != nil {
		c.con.ShowError("Загрузка курсов", err)
		return
	}
	rows := make([][]string, 0, len(courses))
	for _, cr := range courses {
		rows = append(rows, []string{
			fmt.Sprint(cr.ID), cr.Code, cr.Name, fmt.Sprint(cr.Credits), fmt.Sprint(cr.StudentCount),
		})
	}
	RenderTable(c.con.out, []string{"ID", "Код", "Название", "Кредиты", "Студентов"}, rows)
}

func (c *Client) teacherStudents(ctx context.Context, desk *app.TeacherDesk) {
	students, err := desk.Students(ctx)
	if err != nil {
		c.con.ShowError("Загрузка студентов", err)
		return
	}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		grade := "Не оценено"
		if s.Grade != nil {
			grade = *s.Grade
		}
		rows = append(rows, []string{s.StudentName, s.Email, s.CourseName, grade})
	}
	RenderTable(c.con.out, []string{"Студент", "Почта", "Курс", "Оценка"}, rows)
}

func (c *Client) teacherAddAssignment(ctx context.Context, desk *app.TeacherDesk) {
	if !c.teacherCoursePicker(ctx, desk) {
		return
	}
	f := app.AssignmentForm{}
	var err error
	f.CourseID, err = c.con.PromptInt64("ID курса")
	if err != nil {
		c.con.ShowError("Создание задания", err)
		return
	}
	f.Title = c.con.Prompt("Название")
	f.Description = c.con.Prompt("Описание")
	f.DueDate = c.con.Prompt("Срок сдачи (ГГГГ-ММ-ДД)")
	f.MaxMarks, err = c.con.PromptInt("Максимум баллов")
	if err != nil {
		c.con.ShowError("Создание задания", err)
		return
	}
	if _, err := desk.CreateAssignment(ctx, f); err != nil {
		c.con.ShowError("Создание задания", err)
		return
	}
	c.con.ShowOK("Задание создано.")
}

// teacherCoursePicker показывает курсы владельца перед выбором; чужие курсы
// сюда не попадают.
func (c *Client) teacherCoursePicker(ctx context.Context, desk *app.TeacherDesk) bool {
	courses, err := desk.MyCourses(ctx)
	if err != nil {
		c.con.ShowError("Загрузка курсов", err)
		return false
	}
	if len(courses) == 0 {
		c.con.Println("У вас нет курсов.")
		return false
	}
	c.con.Println("Ваши курсы:")
	for _, cr := range courses {
		c.con.Printf("  %d) %s — %s\n", cr.ID, cr.Code, cr.Name)
	}
	return true
}

func (c *Client) teacherGrade(ctx context.Context, desk *app.TeacherDesk) {
	subs, err := desk.Submissions(ctx)
	if err != nil {
		c.con.ShowError("Загрузка сдач", err)
		return
	}
	if len(subs) == 0 {
		c.con.Println("Сдач пока нет.")
		return
	}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{
			fmt.Sprint(s.ID), s.AssignmentTitle, s.CourseName, s.StudentName,
			fmt.Sprint(s.MaxMarks), IntOrDash(s.Marks),
		})
	}
	RenderTable(c.con.out, []string{"ID", "Задание", "Курс", "Студент", "Макс", "Баллы"}, rows)

	id, err := c.con.PromptInt64("ID сдачи")
	if err != nil {
		c.con.ShowError("Выставление оценки", err)
		return
	}
	var maxMarks int
	found := false
	for _, s := range subs {
		if s.ID == id {
			maxMarks = s.MaxMarks
			found = true
			break
		}
	}
	if !found {
		c.con.ShowError("Выставление оценки", fmt.Errorf("сдача %d не в списке", id))
		return
	}
	marks, err := c.con.PromptInt(fmt.Sprintf("Баллы (0–%d)", maxMarks))
	if err != nil {
		c.con.ShowError("Выставление оценки", err)
		return
	}
	if err := desk.Grade(ctx, id, marks, maxMarks); err != nil {
		c.con.ShowError("Выставление оценки", err)
		return
	}
	c.con.ShowOK("Оценка выставлена.")
}

func (c *Client) teacherUploadMaterial(ctx context.Context, desk *app.TeacherDesk) {
	if !c.teacherCoursePicker(ctx, desk) {
		return
	}
	f := app.MaterialForm{}
	var err error
	f.CourseID, err = c.con.PromptInt64("ID курса")
	if err != nil {
		c.con.ShowError("Загрузка материала", err)
		return
	}
	f.Title = c.con.Prompt("Название")
	f.Description = c.con.Prompt("Описание")
	f.SourceFile = c.con.Prompt("Путь к файлу")
	if _, err := desk.UploadMaterial(ctx, f); err != nil {
		c.con.ShowError("Загрузка материала", err)
		return
	}
	c.con.ShowOK("Материал загружен.")
}

func (c *Client) teacherSendMessage(ctx context.Context, desk *app.TeacherDesk) {
	if !c.teacherCoursePicker(ctx, desk) {
		return
	}
	f := app.MessageForm{}
	var err error
	f.CourseID, err = c.con.PromptInt64("ID курса")
	if err != nil {
		c.con.ShowError("Отправка сообщения", err)
		return
	}
	f.Subject = c.con.Prompt("Тема")
	f.Body = c.con.Prompt("Текст")
	if _, err := desk.SendMessage(ctx, f); err != nil {
		c.con.ShowError("Отправка сообщения", err)
		return
	}
	c.con.ShowOK("Сообщение отправлено.")
}
