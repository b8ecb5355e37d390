package models

import "fmt"

// Role — закрытый набор ролей. Любое другое значение из БД считается
// повреждёнными данными и отбрасывается при разборе.
type Role string

const (
	Student Role = "student"
	Teacher Role = "teacher"
	Admin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Student, Teacher, Admin:
		return Role(s), nil
	}
	return "", fmt.Errorf("неизвестная роль %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type User struct {
	ID           int64  `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	Role         Role   `db:"role"`
}
