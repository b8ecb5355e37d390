package app_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Spok95/lms-desktop/internal/app"
	"github.com/Spok95/lms-desktop/internal/db"
)

// Ошибки валидации должны отбиваться до первого запроса к базе: все тесты
// ниже работают с nil-подключением, и паника означала бы дырку в проверках.

func nopLog() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func wantValidation(t *testing.T, err error) {
	t.Helper()
	var vErr *app.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ожидали ошибку валидации, получили %v", err)
	}
}

func TestLogin_FormValidation(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name                     string
		username, password, role string
	}{
		{"пустой логин", "", "secret123", "student"},
		{"пустой пароль", "ivanov", "", "student"},
		{"мусорная роль", "ivanov", "secret123", "superuser"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := app.Login(ctx, nil, nopLog(), tc.username, tc.password, tc.role)
			wantValidation(t, err)
		})
	}
}

func TestCreateUser_FormValidation(t *testing.T) {
	a := app.NewAdmin(nil, nopLog(), &app.Session{})
	ctx := context.Background()

	cases := []struct {
		name string
		form app.UserForm
	}{
		{"пустой логин", app.UserForm{Password: "secret123", FullName: "И", Email: "a@b.ru", Role: "student"}},
		{"короткий пароль", app.UserForm{Username: "u", Password: "12345", FullName: "И", Email: "a@b.ru", Role: "student"}},
		{"кривая почта", app.UserForm{Username: "u", Password: "secret123", FullName: "И", Email: "не почта", Role: "student"}},
		{"кривая роль", app.UserForm{Username: "u", Password: "secret123", FullName: "И", Email: "a@b.ru", Role: "root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.CreateUser(ctx, tc.form)
			wantValidation(t, err)
		})
	}
}

func TestResetPassword_TooShort(t *testing.T) {
	a := app.NewAdmin(nil, nopLog(), &app.Session{})
	wantValidation(t, a.ResetPassword(context.Background(), 1, "12345"))
}

func TestCreateAssignment_DueDateFormat(t *testing.T) {
	desk := app.NewTeacherDesk(nil, nopLog(), &app.Session{UserID: 1}, nil)
	ctx := context.Background()

	for _, due := range []string{"", "завтра", "31-12-2026", "2026-13-40"} {
		_, err := desk.CreateAssignment(ctx, app.AssignmentForm{
			CourseID: 1, Title: "ДЗ", DueDate: due, MaxMarks: 100,
		})
		wantValidation(t, err)
	}
}

// Оценка вне диапазона 0..max не доходит до UPDATE.
func TestGrade_Range(t *testing.T) {
	desk := app.NewTeacherDesk(nil, nopLog(), &app.Session{UserID: 1}, nil)
	ctx := context.Background()

	wantValidation(t, desk.Grade(ctx, 1, -1, 100))
	wantValidation(t, desk.Grade(ctx, 1, 101, 100))
}

func TestStudentDesk_EmptySelections(t *testing.T) {
	desk := app.NewStudentDesk(nil, nopLog(), &app.Session{UserID: 1})
	ctx := context.Background()

	wantValidation(t, desk.Enroll(ctx, 0))
	if _, err := desk.Submit(ctx, 0, ""); err == nil {
		t.Fatal("сдача без выбранного задания должна отбиваться")
	}
	wantValidation(t, desk.DownloadMaterial("", "/tmp/x"))
}

func TestAssignmentStatus(t *testing.T) {
	marks := 90
	// Статус выводится из оценки, а не из факта сдачи.
	if got := app.AssignmentStatus(db.StudentAssignmentRow{Marks: &marks, HasSubmission: true}); got != "Сдано" {
		t.Fatalf("оценённая работа: %q", got)
	}
	if got := app.AssignmentStatus(db.StudentAssignmentRow{Marks: nil, HasSubmission: true}); got != "Не сдано" {
		t.Fatalf("сданная, но непроверенная: %q", got)
	}
	if got := app.AssignmentStatus(db.StudentAssignmentRow{}); got != "Не сдано" {
		t.Fatalf("несданная: %q", got)
	}
}
