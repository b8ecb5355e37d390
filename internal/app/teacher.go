package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/export"
	"github.com/Spok95/lms-desktop/internal/models"
	"github.com/Spok95/lms-desktop/internal/storage"
)

// TeacherDesk — операции дашборда преподавателя. Все запросы ограничены
// курсами владельца на уровне SQL, а не скрытыми пунктами меню.
type TeacherDesk struct {
	db        *sql.DB
	log       *zap.SugaredLogger
	sess      *Session
	materials *storage.Materials
}

func NewTeacherDesk(database *sql.DB, log *zap.SugaredLogger, sess *Session, materials *storage.Materials) *TeacherDesk {
	return &TeacherDesk{db: database, log: log, sess: sess, materials: materials}
}

func (t *TeacherDesk) MyCourses(ctx context.Context) ([]db.TeacherCourseRow, error) {
	rows, err := db.ListTeacherCourses(ctx, t.db, t.sess.UserID)
	return rows, observe(t.log, "teacher.my_courses", err)
}

func (t *TeacherDesk) Students(ctx context.Context) ([]db.EnrolledStudentRow, error) {
	rows, err := db.ListEnrolledStudents(ctx, t.db, t.sess.UserID)
	return rows, observe(t.log, "teacher.students", err)
}

type AssignmentForm struct {
	CourseID    int64  `validate:"gt=0"`
	Title       string `validate:"required"`
	Description string
	DueDate     string `validate:"required,datetime=2006-01-02"`
	MaxMarks    int    `validate:"gt=0"`
}

// CreateAssignment разбирает срок сдачи до вставки: свободный текст в поле
// даты до БД не доходит.
func (t *TeacherDesk) CreateAssignment(ctx context.Context, f AssignmentForm) (int64, error) {
	op := "teacher.create_assignment"
	if err := checkStruct(f); err != nil {
		return 0, observe(t.log, op, err)
	}
	due, err := time.Parse("2006-01-02", f.DueDate)
	if err != nil {
		return 0, observe(t.log, op, invalidf("срок сдачи должен быть датой ГГГГ-ММ-ДД"))
	}
	id, err := db.CreateAssignment(ctx, t.db, t.sess.UserID, models.Assignment{
		CourseID:    f.CourseID,
		Title:       f.Title,
		Description: f.Description,
		DueDate:     due,
		MaxMarks:    f.MaxMarks,
	})
	return id, observe(t.log, op, err)
}

func (t *TeacherDesk) Submissions(ctx context.Context) ([]db.SubmissionRow, error) {
	rows, err := db.ListTeacherSubmissions(ctx, t.db, t.sess.UserID)
	return rows, observe(t.log, "teacher.submissions", err)
}

// Grade выставляет оценку сдаче. Диапазон 0..maxMarks проверяется до записи;
// вне диапазона оценка в базе не меняется.
func (t *TeacherDesk) Grade(ctx context.Context, submissionID int64, marks, maxMarks int) error {
	op := "teacher.grade"
	if marks < 0 || marks > maxMarks {
		return observe(t.log, op, invalidf("оценка должна быть в диапазоне 0–%d", maxMarks))
	}
	return observe(t.log, op, db.SetMarks(ctx, t.db, t.sess.UserID, submissionID, marks))
}

type MaterialForm struct {
	CourseID    int64  `validate:"gt=0"`
	Title       string `validate:"required"`
	Description string
	SourceFile  string `validate:"required"`
}

// UploadMaterial копирует файл в управляемый каталог и регистрирует его в БД.
// Если вставка не прошла (чужой курс, база недоступна), копию убираем.
func (t *TeacherDesk) UploadMaterial(ctx context.Context, f MaterialForm) (int64, error) {
	op := "teacher.upload_material"
	if err := checkStruct(f); err != nil {
		return 0, observe(t.log, op, err)
	}
	storedPath, err := t.materials.Save(f.SourceFile)
	if err != nil {
		return 0, observe(t.log, op, err)
	}
	id, err := db.AddMaterial(ctx, t.db, models.StudyMaterial{
		CourseID:    f.CourseID,
		Title:       f.Title,
		Description: f.Description,
		FilePath:    storedPath,
		UploadedBy:  t.sess.UserID,
	})
	if err != nil {
		storage.Remove(storedPath)
		return 0, observe(t.log, op, err)
	}
	return id, observe(t.log, op, nil)
}

type MessageForm struct {
	CourseID int64  `validate:"gt=0"`
	Subject  string `validate:"required"`
	Body     string `validate:"required"`
}

func (t *TeacherDesk) SendMessage(ctx context.Context, f MessageForm) (int64, error) {
	op := "teacher.send_message"
	if err := checkStruct(f); err != nil {
		return 0, observe(t.log, op, err)
	}
	id, err := db.AddMessage(ctx, t.db, models.Message{
		CourseID: f.CourseID,
		SenderID: t.sess.UserID,
		Subject:  f.Subject,
		Body:     f.Body,
	})
	return id, observe(t.log, op, err)
}

// ExportGradebook выгружает журнал (студенты и оценки по курсам) в xlsx.
func (t *TeacherDesk) ExportGradebook(ctx context.Context) (string, error) {
	op := "teacher.export_gradebook"
	rows, err := db.ListEnrolledStudents(ctx, t.db, t.sess.UserID)
	if err != nil {
		return "", observe(t.log, op, err)
	}
	sheet := export.SheetSpec{
		Title:  "Журнал",
		Header: []string{"Студент", "Почта", "Курс", "Оценка"},
	}
	for _, r := range rows {
		grade := "—"
		if r.Grade != nil {
			grade = *r.Grade
		}
		sheet.Rows = append(sheet.Rows, []string{r.StudentName, r.Email, r.CourseName, grade})
	}
	wb, err := export.NewWorkbook([]export.SheetSpec{sheet})
	if err != nil {
		return "", observe(t.log, op, err)
	}
	path, err := wb.SaveTemp(fmt.Sprintf("gradebook_%d", t.sess.UserID))
	return path, observe(t.log, op, err)
}
