package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
)

type EnrolledCourseRow struct {
	Code        string
	Name        string
	TeacherName *string
	Credits     int
	Grade       *string // nil — оценка ещё не выставлена
}

func ListEnrolledCourses(ctx context.Context, database *sql.DB, studentID int64) ([]EnrolledCourseRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT c.course_code, c.course_name, u.full_name, c.credits, e.grade
		FROM enrollments e
		JOIN courses c ON e.course_id = c.course_id
		LEFT JOIN users u ON c.teacher_id = u.user_id
		WHERE e.student_id = $1
		ORDER BY c.course_code`, studentID)
	if err != nil {
		return nil, fmt.Errorf("курсы студента: %w", err)
	}
	defer rows.Close()

	var out []EnrolledCourseRow
	for rows.Next() {
		var c EnrolledCourseRow
		if err := rows.Scan(&c.Code, &c.Name, &c.TeacherName, &c.Credits, &c.Grade); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type EligibleCourseRow struct {
	ID   int64
	Code string
	Name string
}

// ListEligibleCourses — курсы, на которые студент ЕЩЁ не записан
// (строгая разность множеств).
func ListEligibleCourses(ctx context.Context, database *sql.DB, studentID int64) ([]EligibleCourseRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT course_id, course_code, course_name
		FROM courses
		WHERE course_id NOT IN (SELECT course_id FROM enrollments WHERE student_id = $1)
		ORDER BY course_code`, studentID)
	if err != nil {
		return nil, fmt.Errorf("доступные курсы: %w", err)
	}
	defer rows.Close()

	var out []EligibleCourseRow
	for rows.Next() {
		var c EligibleCourseRow
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Enroll записывает студента на курс. Список мог устареть, пока пользователь
// думал, поэтому конфликт уникальности не ошибка хранилища, а ErrAlreadyEnrolled.
func Enroll(ctx context.Context, database *sql.DB, studentID, courseID int64) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	res, err := database.ExecContext(ctx, `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, course_id) DO NOTHING`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("запись на курс: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAlreadyEnrolled
	}
	return nil
}

type EnrolledStudentRow struct {
	StudentName string
	Email       string
	CourseName  string
	Grade       *string
}

// ListEnrolledStudents — студенты по всем курсам преподавателя; фильтр по
// владельцу зашит в запрос, а не в интерфейс.
func ListEnrolledStudents(ctx context.Context, database *sql.DB, teacherID int64) ([]EnrolledStudentRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT u.full_name, u.email, c.course_name, e.grade
		FROM enrollments e
		JOIN users u ON e.student_id = u.user_id
		JOIN courses c ON e.course_id = c.course_id
		WHERE c.teacher_id = $1
		ORDER BY c.course_name, u.full_name`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("студенты преподавателя: %w", err)
	}
	defer rows.Close()

	var out []EnrolledStudentRow
	for rows.Next() {
		var s EnrolledStudentRow
		if err := rows.Scan(&s.StudentName, &s.Email, &s.CourseName, &s.Grade); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
