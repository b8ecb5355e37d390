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

// Материалы и объявления студент видит только по своим курсам.
func TestMaterialsAndMessages_EnrollmentScope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	teacherID := mustUser(t, ctx, h.DB, "teacher1", "secret123", models.Teacher)
	studentID := mustUser(t, ctx, h.DB, "student1", "secret123", models.Student)
	mine := mustCourse(t, ctx, h.DB, "CS101", &teacherID)
	other := mustCourse(t, ctx, h.DB, "CS102", &teacherID)
	mustEnroll(t, ctx, h.DB, studentID, mine)

	for _, courseID := range []int64{mine, other} {
		if _, err := db.AddMaterial(ctx, h.DB, models.StudyMaterial{
			CourseID: courseID, Title: "Лекция", FilePath: "x.pdf", UploadedBy: teacherID,
		}); err != nil {
			t.Fatal(err)
		}
		if _, err := db.AddMessage(ctx, h.DB, models.Message{
			CourseID: courseID, SenderID: teacherID, Subject: "Объявление", Body: "текст",
		}); err != nil {
			t.Fatal(err)
		}
	}

	mats, err := db.ListStudentMaterials(ctx, h.DB, studentID)
	if err != nil {
		t.Fatal(err)
	}
	if len(mats) != 1 || mats[0].CourseName != "Курс CS101" {
		t.Fatalf("ожидали один материал своего курса, получили %v", mats)
	}

	msgs, err := db.ListStudentMessages(ctx, h.DB, studentID)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].CourseName != "Курс CS101" {
		t.Fatalf("ожидали одно сообщение своего курса, получили %v", msgs)
	}
}

// Загрузка в чужой курс отбивается на уровне запроса.
func TestAddMaterial_ForeignCourse(t *testing.T) {
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

	if _, err := db.AddMaterial(ctx, h.DB, models.StudyMaterial{
		CourseID: courseID, Title: "Лекция", FilePath: "x.pdf", UploadedBy: stranger,
	}); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("ожидали ErrNotFound, получили %v", err)
	}
	if _, err := db.AddMessage(ctx, h.DB, models.Message{
		CourseID: courseID, SenderID: stranger, Subject: "s", Body: "b",
	}); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("ожидали ErrNotFound, получили %v", err)
	}
}
