package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
)

type SubmissionRow struct {
	ID              int64
	AssignmentTitle string
	CourseName      string
	StudentName     string
	MaxMarks        int
	Marks           *int
}

func ListTeacherSubmissions(ctx context.Context, database *sql.DB, teacherID int64) ([]SubmissionRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT s.submission_id, a.title, c.course_name, u.full_name,
		       a.max_marks, s.marks_obtained
		FROM submissions s
		JOIN assignments a ON s.assignment_id = a.assignment_id
		JOIN courses c ON a.course_id = c.course_id
		JOIN users u ON s.student_id = u.user_id
		WHERE c.teacher_id = $1
		ORDER BY s.submission_id`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("сдачи на проверку: %w", err)
	}
	defer rows.Close()

	var out []SubmissionRow
	for rows.Next() {
		var s SubmissionRow
		if err := rows.Scan(&s.ID, &s.AssignmentTitle, &s.CourseName, &s.StudentName,
			&s.MaxMarks, &s.Marks); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Submit — сдача или пересдача задания одной транзакцией: проверка наличия
// строки и вставка/обновление не должны разъезжаться. Пересдача обновляет
// дату и комментарий, но никогда не трогает оценку.
func Submit(ctx context.Context, database *sql.DB, assignmentID, studentID int64, feedback string) (resubmitted bool, err error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var submissionID int64
	err = tx.QueryRowContext(ctx, `
		SELECT submission_id FROM submissions
		WHERE assignment_id = $1 AND student_id = $2
		FOR UPDATE`, assignmentID, studentID).Scan(&submissionID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO submissions (assignment_id, student_id, feedback)
			VALUES ($1, $2, $3)`, assignmentID, studentID, feedback); err != nil {
			return false, fmt.Errorf("сдача задания: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("проверка прежней сдачи: %w", err)
	default:
		resubmitted = true
		if _, err := tx.ExecContext(ctx, `
			UPDATE submissions SET submission_date = now(), feedback = $1
			WHERE submission_id = $2`, feedback, submissionID); err != nil {
			return false, fmt.Errorf("пересдача задания: %w", err)
		}
	}
	return resubmitted, tx.Commit()
}

// SetMarks выставляет оценку. Принадлежность сдачи курсу преподавателя
// проверяется в самом UPDATE; диапазон оценки валидируется выше, до записи.
func SetMarks(ctx context.Context, database *sql.DB, teacherID, submissionID int64, marks int) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	res, err := database.ExecContext(ctx, `
		UPDATE submissions s
		SET marks_obtained = $1
		FROM assignments a
		JOIN courses c ON a.course_id = c.course_id
		WHERE s.submission_id = $2
		  AND s.assignment_id = a.assignment_id
		  AND c.teacher_id = $3`,
		marks, submissionID, teacherID)
	if err != nil {
		return fmt.Errorf("выставление оценки: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
