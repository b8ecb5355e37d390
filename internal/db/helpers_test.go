//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/models"
)

func mustUser(t *testing.T, ctx context.Context, conn *sql.DB, username, password string, role models.Role) int64 {
	t.Helper()
	hash, err := db.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	id, err := db.CreateUser(ctx, conn, models.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Тест " + username,
		Email:        username + "@example.com",
		Role:         role,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func mustCourse(t *testing.T, ctx context.Context, conn *sql.DB, code string, teacherID *int64) int64 {
	t.Helper()
	id, err := db.CreateCourse(ctx, conn, models.Course{
		Code:      code,
		Name:      "Курс " + code,
		TeacherID: teacherID,
		Credits:   3,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func mustEnroll(t *testing.T, ctx context.Context, conn *sql.DB, studentID, courseID int64) {
	t.Helper()
	if err := db.Enroll(ctx, conn, studentID, courseID); err != nil {
		t.Fatal(err)
	}
}

func mustAssignment(t *testing.T, ctx context.Context, conn *sql.DB, teacherID, courseID int64, title string) int64 {
	t.Helper()
	id, err := db.CreateAssignment(ctx, conn, teacherID, models.Assignment{
		CourseID: courseID,
		Title:    title,
		DueDate:  time.Now().AddDate(0, 0, 7),
		MaxMarks: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func tableCount(t *testing.T, ctx context.Context, conn *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := conn.QueryRowContext(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		t.Fatal(err)
	}
	return n
}
