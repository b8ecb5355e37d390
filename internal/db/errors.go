package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrInvalidCredentials — намеренно не уточняет, какое из полей не совпало.
	ErrInvalidCredentials = errors.New("неверные учётные данные")
	ErrNotFound           = errors.New("запись не найдена")
	ErrAlreadyEnrolled    = errors.New("студент уже записан на курс")
)

// UserReferencedError — удаление пользователя заблокировано: на него
// ссылаются курсы, записи, сдачи или сообщения.
type UserReferencedError struct {
	Refs int
}

func (e *UserReferencedError) Error() string {
	return fmt.Sprintf("пользователь используется в %d записях", e.Refs)
}

// IsUniqueViolation распознаёт 23505 от обоих драйверов: pgx в рабочем
// подключении, lib/pq в тестовом.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
