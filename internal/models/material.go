package models

import "time"

type StudyMaterial struct {
	ID          int64     `db:"material_id"`
	CourseID    int64     `db:"course_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	FilePath    string    `db:"file_path"`
	UploadedAt  time.Time `db:"upload_date"`
	UploadedBy  int64     `db:"uploaded_by"`
}

type Message struct {
	ID       int64     `db:"message_id"`
	CourseID int64     `db:"course_id"`
	SenderID int64     `db:"sender_id"`
	Subject  string    `db:"subject"`
	Body     string    `db:"message_text"`
	SentAt   time.Time `db:"sent_date"`
}
