package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// referenceCode names the missing entity behind a foreign key violation on
// turnos, falling back to a generic code.
func referenceCode(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "reference_not_found"
	}

	c := strings.ToLower(pgErr.ConstraintName + " " + pgErr.Detail)
	switch {
	case strings.Contains(c, "client") || strings.Contains(c, "cliente"):
		return "client_not_found"
	case strings.Contains(c, "employee") || strings.Contains(c, "empleado"):
		return "employee_not_found"
	case strings.Contains(c, "service") || strings.Contains(c, "servicio"):
		return "service_not_found"
	default:
		return "reference_not_found"
	}
}

// translate maps a gorm/pgx error onto the scheduling error taxonomy.
func translate(err error, notFoundCode, failureCode string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(notFoundCode)
	case IsForeignKeyViolation(err):
		return domain.NotFound(referenceCode(err))
	default:
		return domain.Persistence(failureCode, err)
	}
}
