package employee

import (
	"errors"
	"fmt"

	"go-talent/internal/domain"
)

// ErrMalformedRecord marks a stored entry that cannot be decoded into a
// complete domain.Employee.
var ErrMalformedRecord = errors.New("malformed employee record")

func malformed(id, reason string) error {
	return fmt.Errorf("%w: id=%q: %s", ErrMalformedRecord, id, reason)
}

// ScanItem is one raw store entry. ID is the storage key and is always set,
// even when Err reports the entry as malformed.
type ScanItem struct {
	ID       string
	Employee domain.Employee
	Err      error
}

// employeeRow is the relational shape. Columns are nullable so rows written
// by other tools can be detected as malformed instead of zero-filled.
type employeeRow struct {
	ID          string   `gorm:"primaryKey;type:text"`
	Name        *string  `gorm:"type:text"`
	Age         *int     `gorm:"type:integer"`
	Affiliation *string  `gorm:"type:text"`
	Post        *string  `gorm:"type:text"`
	Skills      []string `gorm:"type:jsonb;serializer:json"`
}

func (employeeRow) TableName() string {
	return "employees"
}

func rowFromEmployee(e domain.Employee) employeeRow {
	e = e.Clone()
	return employeeRow{
		ID:          e.ID,
		Name:        &e.Name,
		Age:         &e.Age,
		Affiliation: &e.Affiliation,
		Post:        &e.Post,
		Skills:      e.Skills,
	}
}

func (r employeeRow) decode() (domain.Employee, error) {
	switch {
	case r.ID == "":
		return domain.Employee{}, malformed(r.ID, "missing id")
	case r.Name == nil:
		return domain.Employee{}, malformed(r.ID, "missing name")
	case r.Age == nil:
		return domain.Employee{}, malformed(r.ID, "missing age")
	case r.Affiliation == nil:
		return domain.Employee{}, malformed(r.ID, "missing affiliation")
	case r.Post == nil:
		return domain.Employee{}, malformed(r.ID, "missing post")
	case r.Skills == nil:
		return domain.Employee{}, malformed(r.ID, "missing skills")
	}
	return domain.Employee{
		ID:          r.ID,
		Name:        *r.Name,
		Age:         *r.Age,
		Affiliation: *r.Affiliation,
		Post:        *r.Post,
		Skills:      r.Skills,
	}, nil
}
