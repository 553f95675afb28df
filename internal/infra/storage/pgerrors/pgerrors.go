package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые репозитории переводят в доменные ошибки
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeExclusionViolation  = "23P01"
)

// Constraint возвращает имя нарушенного ограничения, если err - ошибка PostgreSQL с кодом code
func Constraint(err error, code string) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", false
	}
	if string(pqErr.Code) != code {
		return "", false
	}
	return pqErr.Constraint, true
}

// IsUniqueViolation проверяет нарушение уникальности
func IsUniqueViolation(err error) bool {
	_, ok := Constraint(err, CodeUniqueViolation)
	return ok
}

// IsForeignKeyViolation проверяет нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	_, ok := Constraint(err, CodeForeignKeyViolation)
	return ok
}
