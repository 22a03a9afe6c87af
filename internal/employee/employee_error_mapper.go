package employee

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	employeeerrors "go-payroll/internal/employee/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_email" {
			return employeeerrors.ErrEmailAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_email") {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}
