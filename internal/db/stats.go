package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Spok95/lms-desktop/internal/ctxutil"
)

type Stats struct {
	Users       int
	Students    int
	Teachers    int
	Courses     int
	Enrollments int
	Assignments int
}

// LoadStats — шесть независимых скалярных счётчиков для сводки администратора.
func LoadStats(ctx context.Context, database *sql.DB) (*Stats, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	var s Stats
	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT count(*) FROM users`, &s.Users},
		{`SELECT count(*) FROM users WHERE role = 'student'`, &s.Students},
		{`SELECT count(*) FROM users WHERE role = 'teacher'`, &s.Teachers},
		{`SELECT count(*) FROM courses`, &s.Courses},
		{`SELECT count(*) FROM enrollments`, &s.Enrollments},
		{`SELECT count(*) FROM assignments`, &s.Assignments},
	}
	for _, c := range counts {
		if err := database.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("сводная статистика: %w", err)
		}
	}
	return &s, nil
}
