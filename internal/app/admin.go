package app

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/export"
	"github.com/Spok95/lms-desktop/internal/models"
)

// Admin — операции дашборда администратора: пользователи, курсы, статистика.
type Admin struct {
	db   *sql.DB
	log  *zap.SugaredLogger
	sess *Session
}

func NewAdmin(database *sql.DB, log *zap.SugaredLogger, sess *Session) *Admin {
	return &Admin{db: database, log: log, sess: sess}
}

// UsersView — строки плюс производные счётчики одним значением: блок
// статистики рендерится из него, а не из разделяемых меток.
type UsersView struct {
	Rows     []db.UserRow
	Total    int
	Students int
	Teachers int
}

func (a *Admin) Users(ctx context.Context) (*UsersView, error) {
	rows, err := db.ListUsers(ctx, a.db)
	if err != nil {
		return nil, observe(a.log, "admin.users", err)
	}
	v := &UsersView{Rows: rows, Total: len(rows)}
	for _, u := range rows {
		switch u.Role {
		case models.Student:
			v.Students++
		case models.Teacher:
			v.Teachers++
		}
	}
	return v, observe(a.log, "admin.users", nil)
}

type UserForm struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required"`
}

func (a *Admin) CreateUser(ctx context.Context, f UserForm) (int64, error) {
	op := "admin.create_user"
	if err := checkStruct(f); err != nil {
		return 0, observe(a.log, op, err)
	}
	role, err := models.ParseRole(f.Role)
	if err != nil {
		return 0, observe(a.log, op, invalidf("недопустимая роль"))
	}
	hash, err := db.HashPassword(f.Password)
	if err != nil {
		return 0, observe(a.log, op, err)
	}
	id, err := db.CreateUser(ctx, a.db, models.User{
		Username:     f.Username,
		PasswordHash: hash,
		FullName:     f.FullName,
		Email:        f.Email,
		Role:         role,
	})
	if err != nil && db.IsUniqueViolation(err) {
		// нарушение уникальности отдаём дословно (см. контракт создания)
		return 0, observe(a.log, op, invalidf("логин занят: %v", err))
	}
	return id, observe(a.log, op, err)
}

type UserUpdateForm struct {
	Username string `validate:"required"`
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required"`
}

// UpdateUser перезаписывает логин/имя/почту/роль; пароль этим путём
// не меняется.
func (a *Admin) UpdateUser(ctx context.Context, id int64, f UserUpdateForm) error {
	op := "admin.update_user"
	if err := checkStruct(f); err != nil {
		return observe(a.log, op, err)
	}
	role, err := models.ParseRole(f.Role)
	if err != nil {
		return observe(a.log, op, invalidf("недопустимая роль"))
	}
	err = db.UpdateUser(ctx, a.db, id, f.Username, f.FullName, f.Email, role)
	if err != nil && db.IsUniqueViolation(err) {
		return observe(a.log, op, invalidf("логин занят: %v", err))
	}
	return observe(a.log, op, err)
}

// ResetPassword — отдельная операция смены пароля пользователя.
func (a *Admin) ResetPassword(ctx context.Context, id int64, password string) error {
	op := "admin.reset_password"
	if len(password) < 6 {
		return observe(a.log, op, invalidf("пароль короче 6 символов"))
	}
	hash, err := db.HashPassword(password)
	if err != nil {
		return observe(a.log, op, err)
	}
	return observe(a.log, op, db.SetPassword(ctx, a.db, id, hash))
}

func (a *Admin) DeleteUser(ctx context.Context, id int64) error {
	return observe(a.log, "admin.delete_user", db.DeleteUser(ctx, a.db, id))
}

func (a *Admin) Courses(ctx context.Context) ([]db.CourseRow, error) {
	rows, err := db.ListCourses(ctx, a.db)
	return rows, observe(a.log, "admin.courses", err)
}

func (a *Admin) TeacherOptions(ctx context.Context) ([]db.TeacherOption, error) {
	rows, err := db.ListTeachers(ctx, a.db)
	return rows, observe(a.log, "admin.teacher_options", err)
}

type CourseForm struct {
	Code        string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	TeacherID   int64 `validate:"gt=0"`
	Credits     int   `validate:"gt=0"`
}

// CreateCourse требует живого преподавателя из текущего списка; при пустом
// списке операция блокируется до любой вставки.
func (a *Admin) CreateCourse(ctx context.Context, f CourseForm) (int64, error) {
	op := "admin.create_course"
	if err := checkStruct(f); err != nil {
		return 0, observe(a.log, op, err)
	}
	teachers, err := db.ListTeachers(ctx, a.db)
	if err != nil {
		return 0, observe(a.log, op, err)
	}
	if len(teachers) == 0 {
		return 0, observe(a.log, op, invalidf("нет ни одного преподавателя — сначала создайте пользователя с ролью teacher"))
	}
	found := false
	for _, t := range teachers {
		if t.ID == f.TeacherID {
			found = true
			break
		}
	}
	if !found {
		return 0, observe(a.log, op, invalidf("выбранный преподаватель не найден"))
	}

	id, err := db.CreateCourse(ctx, a.db, models.Course{
		Code:        f.Code,
		Name:        f.Name,
		Description: f.Description,
		TeacherID:   &f.TeacherID,
		Credits:     f.Credits,
	})
	return id, observe(a.log, op, err)
}

// CourseDeleteImpact — сколько записей на курс заденет удаление; показывается
// в подтверждении до деструктивного шага.
func (a *Admin) CourseDeleteImpact(ctx context.Context, courseID int64) (int, error) {
	n, err := db.EnrollmentCount(ctx, a.db, courseID)
	return n, observe(a.log, "admin.course_delete_impact", err)
}

func (a *Admin) DeleteCourse(ctx context.Context, courseID int64) error {
	return observe(a.log, "admin.delete_course", db.DeleteCourse(ctx, a.db, courseID))
}

func (a *Admin) Stats(ctx context.Context) (*db.Stats, error) {
	s, err := db.LoadStats(ctx, a.db)
	return s, observe(a.log, "admin.stats", err)
}

// ExportUsers выгружает список пользователей в xlsx и возвращает путь к файлу.
func (a *Admin) ExportUsers(ctx context.Context) (string, error) {
	op := "admin.export_users"
	rows, err := db.ListUsers(ctx, a.db)
	if err != nil {
		return "", observe(a.log, op, err)
	}
	sheet := export.SheetSpec{
		Title:  "Пользователи",
		Header: []string{"ID", "Логин", "Имя", "Почта", "Роль"},
	}
	for _, u := range rows {
		sheet.Rows = append(sheet.Rows, []string{
			fmt.Sprint(u.ID), u.Username, u.FullName, u.Email, string(u.Role),
		})
	}
	wb, err := export.NewWorkbook([]export.SheetSpec{sheet})
	if err != nil {
		return "", observe(a.log, op, err)
	}
	path, err := wb.SaveTemp("users")
	return path, observe(a.log, op, err)
}
