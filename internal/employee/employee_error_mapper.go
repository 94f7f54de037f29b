package employee

import (
	"errors"

	employeeerrors "go-talent/internal/employee/errors"
	"go-talent/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperror.Wrap(err,
			employeeerrors.ErrEmployeeAlreadyExists.Code,
			employeeerrors.ErrEmployeeAlreadyExists.Message,
			employeeerrors.ErrEmployeeAlreadyExists.HTTPStatus,
		)
	}

	return employeeerrors.StoreUnavailable(err)
}
