package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/models"
)

// AddMessage публикует объявление в курс отправителя. Метку времени ставит
// сервер БД (sent_date DEFAULT now()).
func AddMessage(ctx context.Context, database *sql.DB, m models.Message) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO messages (course_id, sender_id, subject, message_text)
		SELECT c.course_id, $2, $3, $4
		FROM courses c
		WHERE c.course_id = $1 AND c.teacher_id = $2
		RETURNING message_id`,
		m.CourseID, m.SenderID, m.Subject, m.Body).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("отправка сообщения: %w", err)
	}
	return id, nil
}

type MessageRow struct {
	Subject    string
	CourseName string
	Body       string
	SentAt     time.Time
}

func ListStudentMessages(ctx context.Context, database *sql.DB, studentID int64) ([]MessageRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT m.subject, c.course_name, m.message_text, m.sent_date
		FROM messages m
		JOIN courses c ON m.course_id = c.course_id
		JOIN enrollments e ON e.course_id = c.course_id
		WHERE e.student_id = $1
		ORDER BY m.sent_date DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("сообщения студента: %w", err)
	}
	defer rows.Close()

	var out []MessageRow
	for rows.Next() {
		var m MessageRow
		if err := rows.Scan(&m.Subject, &m.CourseName, &m.Body, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
