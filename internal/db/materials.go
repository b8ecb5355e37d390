package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/models"
)

// AddMaterial регистрирует уже скопированный в хранилище файл.
// Вставка возможна только в курс загрузившего преподавателя.
func AddMaterial(ctx context.Context, database *sql.DB, m models.StudyMaterial) (int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO study_materials (course_id, title, description, file_path, uploaded_by)
		SELECT c.course_id, $3, $4, $5, $2
		FROM courses c
		WHERE c.course_id = $1 AND c.teacher_id = $2
		RETURNING material_id`,
		m.CourseID, m.UploadedBy, m.Title, m.Description, m.FilePath).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("сохранение материала: %w", err)
	}
	return id, nil
}

type MaterialRow struct {
	Title       string
	CourseName  string
	Description string
	UploadedAt  time.Time
	FilePath    string
}

// ListStudentMaterials — материалы по курсам, на которые студент записан,
// свежие сверху.
func ListStudentMaterials(ctx context.Context, database *sql.DB, studentID int64) ([]MaterialRow, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
		SELECT sm.title, c.course_name, sm.description, sm.upload_date, sm.file_path
		FROM study_materials sm
		JOIN courses c ON sm.course_id = c.course_id
		JOIN enrollments e ON e.course_id = c.course_id
		WHERE e.student_id = $1
		ORDER BY sm.upload_date DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("материалы студента: %w", err)
	}
	defer rows.Close()

	var out []MaterialRow
	for rows.Next() {
		var m MaterialRow
		if err := rows.Scan(&m.Title, &m.CourseName, &m.Description, &m.UploadedAt, &m.FilePath); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
