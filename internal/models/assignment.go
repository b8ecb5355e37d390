package models

import "time"

type Assignment struct {
	ID          int64     `db:"assignment_id"`
	CourseID    int64     `db:"course_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	MaxMarks    int       `db:"max_marks"`
}

type Submission struct {
	ID            int64     `db:"submission_id"`
	AssignmentID  int64     `db:"assignment_id"`
	StudentID     int64     `db:"student_id"`
	MarksObtained *int      `db:"marks_obtained"`
	SubmittedAt   time.Time `db:"submission_date"`
	Feedback      string    `db:"feedback"`
}
