//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/models"
	"github.com/Spok95/lms-desktop/internal/testutil/testdb"
)

// Доступные курсы — строгая разность: все курсы минус те, куда студент записан.
func TestEligibleCourses_SetDifference(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	studentID := mustUser(t, ctx, h.DB, "student1", "secret123", models.Student)
	otherID := mustUser(t, ctx, h.DB, "student2", "secret123", models.Student)
	c1 := mustCourse(t, ctx, h.DB, "CS101", nil)
	c2 := mustCourse(t, ctx, h.DB, "CS102", nil)
	c3 := mustCourse(t, ctx, h.DB, "CS103", nil)

	mustEnroll(t, ctx, h.DB, studentID, c2)
	// Чужая запись не влияет на список студента.
	mustEnroll(t, ctx, h.DB, otherID, c1)

	rows, err := db.ListEligibleCourses(ctx, h.DB, studentID)
	if err != nil {
		t.Fatal(err)
	}
	got := map[int64]bool{}
	for _, r := range rows {
		got[r.ID] = true
	}
	if len(got) != 2 || !got[c1] || !got[c3] {
		t.Fatalf("ожидали {CS101, CS103}, получили %v", rows)
	}

	enrolled, err := db.ListEnrolledCourses(ctx, h.DB, studentID)
	if err != nil {
		t.Fatal(err)
	}
	if len(enrolled) != 1 || enrolled[0].Code != "CS102" {
		t.Fatalf("ожидали одну запись на CS102, получили %v", enrolled)
	}
	if enrolled[0].Grade != nil {
		t.Fatalf("свежая запись без оценки, получили %q", *enrolled[0].Grade)
	}
}

func TestEnroll_Twice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	studentID := mustUser(t, ctx, h.DB, "student1", "secret123", models.Student)
	courseID := mustCourse(t, ctx, h.DB, "CS101", nil)

	mustEnroll(t, ctx, h.DB, studentID, courseID)
	if err := db.Enroll(ctx, h.DB, studentID, courseID); !errors.Is(err, db.ErrAlreadyEnrolled) {
		t.Fatalf("повторная запись: ожидали ErrAlreadyEnrolled, получили %v", err)
	}
	if n := tableCount(t, ctx, h.DB, "enrollments"); n != 1 {
		t.Fatalf("ожидали одну строку записи, получили %d", n)
	}
}

func TestListEnrolledStudents_TeacherScope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	t1 := mustUser(t, ctx, h.DB, "teacher1", "secret123", models.Teacher)
	t2 := mustUser(t, ctx, h.DB, "teacher2", "secret123", models.Teacher)
	s1 := mustUser(t, ctx, h.DB, "student1", "secret123", models.Student)
	mine := mustCourse(t, ctx, h.DB, "CS101", &t1)
	foreign := mustCourse(t, ctx, h.DB, "CS201", &t2)
	mustEnroll(t, ctx, h.DB, s1, mine)
	mustEnroll(t, ctx, h.DB, s1, foreign)

	rows, err := db.ListEnrolledStudents(ctx, h.DB, t1)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].CourseName != "Курс CS101" {
		t.Fatalf("преподаватель видит только свои курсы, получили %v", rows)
	}
}
