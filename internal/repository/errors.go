package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error taxonomy surfaced by every store operation. Callers branch with
// errors.Is; the wrapped cause keeps the database detail for logging.
var (
	// ErrConflict indicates a duplicate company name on strict create
	ErrConflict = errors.New("company name already exists")
	// ErrReferential indicates a record referencing an unknown company
	ErrReferential = errors.New("referenced company does not exist")
	// ErrNotFound indicates an operation against an unknown id
	ErrNotFound = errors.New("record not found")
)

// pgUniqueViolation and pgForeignKeyViolation are the SQLSTATE codes
// postgres reports for the two constraints the schema carries.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver and gorm errors onto the store taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.Detail)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferential, pgErr.Detail)
		}
	}
	return err
}
