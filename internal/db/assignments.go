package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/models"
)

type TeacherCourseRow struct {
	ID           int64
	Code         string
	Name         string
	Credits      int
	StudentCount int
}

func ListTeacherCourses(ctx context.Context, database *sql.DB, teacherID int64) ([]TeacherCourseRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT c.course_id, c.course_code, c.course_name, c.credits,
		       count(e.student_id) AS student_count
		FROM courses c
		LEFT JOIN enrollments e ON c.course_id = e.course_id
		WHERE c.teacher_id = $1
		GROUP BY c.course_id
		ORDER BY c.course_id`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("курсы преподавателя: %w", err)
	}
	defer rows.Close()

	var out []TeacherCourseRow
	for rows.Next() {
		var c TeacherCourseRow
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.StudentCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateAssignment вставляет задание только в курс, принадлежащий teacherID:
// владение проверяет сам запрос, а не вызывающий код.
func CreateAssignment(ctx context.Context, database *sql.DB, teacherID int64, a models.Assignment) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO assignments (course_id, title, description, due_date, max_marks)
		SELECT c.course_id, $3, $4, $5, $6
		FROM courses c
		WHERE c.course_id = $1 AND c.teacher_id = $2
		RETURNING assignment_id`,
		a.CourseID, teacherID, a.Title, a.Description, a.DueDate, a.MaxMarks).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("создание задания: %w", err)
	}
	return id, nil
}

type StudentAssignmentRow struct {
	AssignmentID int64 // id тянем через модель, а не восстанавливаем по названию
	Title        string
	CourseName   string
	DueDate      time.Time
	MaxMarks     int
	Marks        *int
	// HasSubmission — существует ли строка сдачи вообще; статус в UI
	// по-прежнему выводится из Marks, как в исходной системе.
	HasSubmission bool
}

func ListStudentAssignments(ctx context.Context, database *sql.DB, studentID int64) ([]StudentAssignmentRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT a.assignment_id, a.title, c.course_name, a.due_date, a.max_marks,
		       s.marks_obtained, s.submission_id IS NOT NULL
		FROM assignments a
		JOIN courses c ON a.course_id = c.course_id
		JOIN enrollments e ON c.course_id = e.course_id
		LEFT JOIN submissions s ON a.assignment_id = s.assignment_id AND s.student_id = $1
		WHERE e.student_id = $1
		ORDER BY a.due_date, a.assignment_id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("задания студента: %w", err)
	}
	defer rows.Close()

	var out []StudentAssignmentRow
	for rows.Next() {
		var a StudentAssignmentRow
		if err := rows.Scan(&a.AssignmentID, &a.Title, &a.CourseName, &a.DueDate,
			&a.MaxMarks, &a.Marks, &a.HasSubmission); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
