package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound reports that the targeted row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate reports a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
)

// DuplicateError carries which unique field tripped the constraint so the
// HTTP layer can name it in the conflict message.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return "duplicate " + e.Field
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

// translate maps driver and gorm errors onto the repository error kinds.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &DuplicateError{Field: fieldFromConstraint(pgErr.ConstraintName)}
	}
	// Dialects with gorm error translation enabled surface unique violations
	// as ErrDuplicatedKey without the constraint name.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Field: fieldFromConstraint("")}
	}
	return err
}

func fieldFromConstraint(name string) string {
	switch {
	case strings.Contains(name, "username"):
		return "username"
	case strings.Contains(name, "email"):
		return "email"
	default:
		return "value"
	}
}
