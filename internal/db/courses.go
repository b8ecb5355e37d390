package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/models"
)

type CourseRow struct {
	ID          int64
	Code        string
	Name        string
	TeacherName *string // nil — курс без преподавателя
	Credits     int
}

func ListCourses(ctx context.Context, database *sql.DB) ([]CourseRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT c.course_id, c.course_code, c.course_name, u.full_name, c.credits
		FROM courses c
		LEFT JOIN users u ON c.teacher_id = u.user_id
		ORDER BY c.course_id`)
	if err != nil {
		return nil, fmt.Errorf("список курсов: %w", err)
	}
	defer rows.Close()

	var out []CourseRow
	for rows.Next() {
		var c CourseRow
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.TeacherName, &c.Credits); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type TeacherOption struct {
	ID       int64
	FullName string
}

func ListTeachers(ctx context.Context, database *sql.DB) ([]TeacherOption, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT user_id, full_name FROM users WHERE role = 'teacher' ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("список преподавателей: %w", err)
	}
	defer rows.Close()

	var out []TeacherOption
	for rows.Next() {
		var t TeacherOption
		if err := rows.Scan(&t.ID, &t.FullName); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func CreateCourse(ctx context.Context, database *sql.DB, c models.Course) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO courses (course_code, course_name, description, teacher_id, credits)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING course_id`,
		c.Code, c.Name, c.Description, c.TeacherID, c.Credits).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("создание курса: %w", err)
	}
	return id, nil
}

// EnrollmentCount — для предупреждения перед удалением курса.
func EnrollmentCount(ctx context.Context, database *sql.DB, courseID int64) (int, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var n int
	err := database.QueryRowContext(ctx,
		`SELECT count(*) FROM enrollments WHERE course_id = $1`, courseID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("подсчёт записей на курс: %w", err)
	}
	return n, nil
}

// DeleteCourse удаляет курс вместе с зависимыми строками. Порядок жёсткий:
// сдачи -> задания -> записи на курс -> сам курс, и всё в одной транзакции,
// чтобы сбой посередине не оставил осиротевшие строки.
func DeleteCourse(ctx context.Context, database *sql.DB, courseID int64) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM submissions
		WHERE assignment_id IN (SELECT assignment_id FROM assignments WHERE course_id = $1)`,
		courseID); err != nil {
		return fmt.Errorf("удаление сдач курса: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM assignments WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("удаление заданий курса: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM enrollments WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("удаление записей на курс: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM study_materials WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("удаление материалов курса: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM messages WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("удаление сообщений курса: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM courses WHERE course_id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("удаление курса: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
