package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Error kinds surfaced by the data-access layer. Controllers translate
// them to HTTP statuses; nothing below this layer retries or swallows.
var (
	ErrValidation   = errors.New("validation failed")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
	ErrNotFound     = errors.New("record not found")
)

const (
	mysqlErrDuplicateEntry  uint16 = 1062
	mysqlErrNoReferencedRow uint16 = 1452
)

// classifyDBError maps a store error onto the service taxonomy. MySQL
// error numbers are authoritative; the message fallback keeps the
// classification working against other engines (the SQLite test store in
// particular).
func classifyDBError(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return ErrDuplicateKey
		case mysqlErrNoReferencedRow:
			return ErrForeignKey
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrForeignKey
	}

	msg := err.Error()
	if strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed") {
		return ErrDuplicateKey
	}
	if strings.Contains(msg, "foreign key constraint") || strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return ErrForeignKey
	}

	return err
}
