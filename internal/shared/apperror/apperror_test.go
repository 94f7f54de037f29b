package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-talent/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})

	t.Run("wrapped cause is not exposed", func(t *testing.T) {
		err := apperror.Wrap(errors.New("dial tcp 10.0.0.1:5432: refused"),
			apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.NotContains(t, httpErr.Message, "10.0.0.1")
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "boom")
	})
}

func TestFieldErrors(t *testing.T) {
	err := apperror.RequiredField("skills")
	assert.Equal(t, "skills", err.Field)
	assert.Equal(t, "Skills is required", err.Message)

	err = apperror.InvalidField("age", "must be between 1 and 100")
	assert.Equal(t, "age", err.Field)
	assert.Contains(t, err.Message, "Age is invalid")
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}

func TestWrappedSentinelMatches(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "already taken", http.StatusConflict)
	wrapped := apperror.Wrap(errors.New("cause"), sentinel.Code, sentinel.Message, sentinel.HTTPStatus)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, apperror.ErrNotFound)
}

type bindTarget struct {
	Name string `json:"name" binding:"required"`
	Age  *int   `json:"age" binding:"required,min=1"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	t.Run("required uses json name", func(t *testing.T) {
		var target bindTarget
		err := binding.JSON.BindBody([]byte(`{"age": 3}`), &target)
		assert.Error(t, err)

		mapped := apperror.MapValidationError(err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, "name", appErr.Field)
	})

	t.Run("json type mismatch names the field", func(t *testing.T) {
		var target bindTarget
		err := binding.JSON.BindBody([]byte(`{"name":"x","age":"old"}`), &target)
		assert.Error(t, err)

		mapped := apperror.MapValidationError(err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, "age", appErr.Field)
	})

	t.Run("syntax error", func(t *testing.T) {
		var target bindTarget
		err := binding.JSON.BindBody([]byte(`{`), &target)
		mapped := apperror.MapValidationError(err)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(mapped).Status)
	})
}
