package employee

import (
	"strings"

	"go-talent/internal/shared/apperror"
)

// CreateEmployeeRequest is the POST body schema. Binding only enforces
// presence and JSON types; value rules live in validateCreateRequest.
type CreateEmployeeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Age         *int     `json:"age" binding:"required"`
	Affiliation string   `json:"affiliation" binding:"required"`
	Post        string   `json:"post" binding:"required"`
	Skills      []string `json:"skills" binding:"required"`
}

const (
	MinAge = 1
	MaxAge = 100
)

// filterParams are the accepted query parameters for listing.
var filterParams = []string{"name", "affiliation", "post", "skill"}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func singleValueError(param string) error {
	return apperror.InvalidField(param, "must be a single value")
}
