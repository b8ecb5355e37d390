package models

type Course struct {
	ID          int64  `db:"course_id"`
	Code        string `db:"course_code"`
	Name        string `db:"course_name"`
	Description string `db:"description"`
	TeacherID   *int64 `db:"teacher_id"`
	Credits     int    `db:"credits"`
}

type Enrollment struct {
	StudentID int64   `db:"student_id"`
	CourseID  int64   `db:"course_id"`
	Grade     *string `db:"grade"`
}
