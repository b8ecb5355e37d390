package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/storage"
)

// StudentDesk — операции дашборда студента.
type StudentDesk struct {
	db   *sql.DB
	log  *zap.SugaredLogger
	sess *Session
}

func NewStudentDesk(database *sql.DB, log *zap.SugaredLogger, sess *Session) *StudentDesk {
	return &StudentDesk{db: database, log: log, sess: sess}
}

func (s *StudentDesk) Courses(ctx context.Context) ([]db.EnrolledCourseRow, error) {
	rows, err := db.ListEnrolledCourses(ctx, s.db, s.sess.UserID)
	return rows, observe(s.log, "student.courses", err)
}

func (s *StudentDesk) EligibleCourses(ctx context.Context) ([]db.EligibleCourseRow, error) {
	rows, err := db.ListEligibleCourses(ctx, s.db, s.sess.UserID)
	return rows, observe(s.log, "student.eligible_courses", err)
}

// Enroll терпимо относится к устаревшему списку: если курс уже выбран в
// другом окне, наверх уходит db.ErrAlreadyEnrolled, а не авария.
func (s *StudentDesk) Enroll(ctx context.Context, courseID int64) error {
	if courseID <= 0 {
		return observe(s.log, "student.enroll", invalidf("курс не выбран"))
	}
	return observe(s.log, "student.enroll", db.Enroll(ctx, s.db, s.sess.UserID, courseID))
}

// AssignmentStatus повторяет правило исходной системы: «сдано» тогда и
// только тогда, когда выставлена оценка. Сданная, но непроверенная работа
// выглядит как несданная — поведение сохранено намеренно.
func AssignmentStatus(row db.StudentAssignmentRow) string {
	if row.Marks != nil {
		return "Сдано"
	}
	return "Не сдано"
}

func (s *StudentDesk) Assignments(ctx context.Context) ([]db.StudentAssignmentRow, error) {
	rows, err := db.ListStudentAssignments(ctx, s.db, s.sess.UserID)
	return rows, observe(s.log, "student.assignments", err)
}

// Submit сдаёт или пересдаёт задание; подтверждение пересдачи — забота
// вызывающего, здесь только атомарный insert-or-update.
func (s *StudentDesk) Submit(ctx context.Context, assignmentID int64, comments string) (resubmitted bool, err error) {
	op := "student.submit"
	if assignmentID <= 0 {
		return false, observe(s.log, op, invalidf("задание не выбрано"))
	}
	resubmitted, err = db.Submit(ctx, s.db, assignmentID, s.sess.UserID, comments)
	return resubmitted, observe(s.log, op, err)
}

func (s *StudentDesk) Materials(ctx context.Context) ([]db.MaterialRow, error) {
	rows, err := db.ListStudentMaterials(ctx, s.db, s.sess.UserID)
	return rows, observe(s.log, "student.materials", err)
}

func (s *StudentDesk) Messages(ctx context.Context) ([]db.MessageRow, error) {
	rows, err := db.ListStudentMessages(ctx, s.db, s.sess.UserID)
	return rows, observe(s.log, "student.messages", err)
}

// DownloadMaterial копирует сохранённый файл материала в выбранное место.
func (s *StudentDesk) DownloadMaterial(storedPath, destPath string) error {
	op := "student.download_material"
	if storedPath == "" || destPath == "" {
		return observe(s.log, op, invalidf("не указан файл"))
	}
	return observe(s.log, op, storage.Download(storedPath, destPath))
}
