package employeeerrors

import (
	"go-talent/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same id already exists",
		http.StatusConflict,
	)
	ErrStoreUnavailable = apperror.New(
		apperror.CodeInternalError,
		"Employee store is unavailable",
		http.StatusInternalServerError,
	)
	ErrIDAllocationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not allocate an employee id",
		http.StatusInternalServerError,
	)
)

// StoreUnavailable wraps a backend failure. The cause stays available to
// server-side logging through errors.Unwrap but is never sent to clients.
func StoreUnavailable(err error) error {
	return apperror.Wrap(err,
		ErrStoreUnavailable.Code,
		ErrStoreUnavailable.Message,
		ErrStoreUnavailable.HTTPStatus,
	)
}
