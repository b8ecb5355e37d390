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

func TestSubmit_ResubmitKeepsMarks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	teacherID := mustUser(t, ctx, h.DB, "teacher1", "secret123", models.Teacher)
	studentID := mustUser(t, ctx, h.DB, "student1", "secret123", models.Student)
	courseID := mustCourse(t, ctx, h.DB, "CS101", &teacherID)
	mustEnroll(t, ctx, h.DB, studentID, courseID)
	aID := mustAssignment(t, ctx, h.DB, teacherID, courseID, "ДЗ 1")

	resubmitted, err := db.Submit(ctx, h.DB, aID, studentID, "первая версия")
	if err != nil {
		t.Fatal(err)
	}
	if resubmitted {
		t.Fatal("первая сдача не пересдача")
	}

	subs, err := db.ListTeacherSubmissions(ctx, h.DB, teacherID)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 {
		t.Fatalf("ожидали одну сдачу, получили %d", len(subs))
	}
	if err := db.SetMarks(ctx, h.DB, teacherID, subs[0].ID, 85); err != nil {
		t.Fatal(err)
	}

	// Пересдача: строка одна, дата и комментарий новые, оценка на месте.
	resubmitted, err = db.Submit(ctx, h.DB, aID, studentID, "вторая версия")
	if err != nil {
		t.Fatal(err)
	}
	if !resubmitted {
		t.Fatal("вторая сдача должна быть пересдачей")
	}
	if n := tableCount(t, ctx, h.DB, "submissions"); n != 1 {
		t.Fatalf("ожидали одну строку сдачи, получили %d", n)
	}

	subs, err = db.ListTeacherSubmissions(ctx, h.DB, teacherID)
	if err != nil {
		t.Fatal(err)
	}
	if subs[0].Marks == nil || *subs[0].Marks != 85 {
		t.Fatalf("пересдача не должна трогать оценку, получили %v", subs[0].Marks)
	}
}

func TestSetMarks_OwnershipAndMissing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	owner := mustUser(t, ctx, h.DB, "teacher1", "secret123", models.Teacher)
	stranger := mustUser(t, ctx, h.DB, "teacher2", "secret123", models.Teacher)
	studentID := mustUser(t, ctx, h.DB, "student1", "secret123", models.Student)
	courseID := mustCourse(t, ctx, h.DB, "CS101", &owner)
	mustEnroll(t, ctx, h.DB, studentID, courseID)
	aID := mustAssignment(t, ctx, h.DB, owner, courseID, "ДЗ 1")
	if _, err := db.Submit(ctx, h.DB, aID, studentID, ""); err != nil {
		t.Fatal(err)
	}
	subs, err := db.ListTeacherSubmissions(ctx, h.DB, owner)
	if err != nil {
		t.Fatal(err)
	}

	// Чужой преподаватель не может выставить оценку.
	if err := db.SetMarks(ctx, h.DB, stranger, subs[0].ID, 50); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("чужая сдача: ожидали ErrNotFound, получили %v", err)
	}
	if err := db.SetMarks(ctx, h.DB, owner, subs[0].ID+1000, 50); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("несуществующая сдача: ожидали ErrNotFound, получили %v", err)
	}
	if err := db.SetMarks(ctx, h.DB, owner, subs[0].ID, 50); err != nil {
		t.Fatal(err)
	}
}

func TestCreateAssignment_ForeignCourse(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	owner := mustUser(t, ctx, h.DB, "teacher1", "secret123", models.Teacher)
	stranger := mustUser(t, ctx, h.DB, "teacher2", "secret123", models.Teacher)
	courseID := mustCourse(t, ctx, h.DB, "CS101", &owner)

	if _, err := db.CreateAssignment(ctx, h.DB, stranger, models.Assignment{
		CourseID: courseID, Title: "чужое ДЗ", MaxMarks: 100,
	}); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("чужой курс: ожидали ErrNotFound, получили %v", err)
	}
}

func TestListStudentAssignments_StatusFields(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	teacherID := mustUser(t, ctx, h.DB, "teacher1", "secret123", models.Teacher)
	studentID := mustUser(t, ctx, h.DB, "student1", "secret123", models.Student)
	courseID := mustCourse(t, ctx, h.DB, "CS101", &teacherID)
	mustEnroll(t, ctx, h.DB, studentID, courseID)

	a1 := mustAssignment(t, ctx, h.DB, teacherID, courseID, "ДЗ 1")
	a2 := mustAssignment(t, ctx, h.DB, teacherID, courseID, "ДЗ 2")
	mustAssignment(t, ctx, h.DB, teacherID, courseID, "ДЗ 3")

	if _, err := db.Submit(ctx, h.DB, a1, studentID, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Submit(ctx, h.DB, a2, studentID, ""); err != nil {
		t.Fatal(err)
	}
	subs, err := db.ListTeacherSubmissions(ctx, h.DB, teacherID)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range subs {
		if s.AssignmentTitle == "ДЗ 1" {
			if err := db.SetMarks(ctx, h.DB, teacherID, s.ID, 90); err != nil {
				t.Fatal(err)
			}
		}
	}

	rows, err := db.ListStudentAssignments(ctx, h.DB, studentID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("ожидали 3 задания, получили %d", len(rows))
	}
	byTitle := map[string]db.StudentAssignmentRow{}
	for _, r := range rows {
		byTitle[r.Title] = r
	}

	// Оценено: строка сдачи есть, оценка есть.
	if r := byTitle["ДЗ 1"]; !r.HasSubmission || r.Marks == nil || *r.Marks != 90 {
		t.Fatalf("ДЗ 1: %+v", r)
	}
	// Сдано, но не проверено: строка есть, оценки нет.
	if r := byTitle["ДЗ 2"]; !r.HasSubmission || r.Marks != nil {
		t.Fatalf("ДЗ 2: %+v", r)
	}
	// Не сдано вовсе.
	if r := byTitle["ДЗ 3"]; r.HasSubmission || r.Marks != nil {
		t.Fatalf("ДЗ 3: %+v", r)
	}
}
