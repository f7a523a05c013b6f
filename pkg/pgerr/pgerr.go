package pgerr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// Code возвращает SQLSTATE ошибки PostgreSQL или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Constraint возвращает имя нарушенного ограничения
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return Code(err) == pgerrcode.UniqueViolation
}

func IsExclusionViolation(err error) bool {
	return Code(err) == pgerrcode.ExclusionViolation
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == pgerrcode.ForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	return Code(err) == pgerrcode.CheckViolation
}

// IsSerializationFailure конфликт сериализации или deadlock - транзакцию можно повторить
func IsSerializationFailure(err error) bool {
	code := Code(err)
	return code == pgerrcode.SerializationFailure || code == pgerrcode.DeadlockDetected
}
