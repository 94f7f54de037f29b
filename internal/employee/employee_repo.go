package employee

import (
	"context"
	"errors"

	"go-talent/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the record store capability. Get reports absence with
// found=false rather than an error. Backend failures come back wrapped so
// errors.Is(err, employeeerrors.ErrStoreUnavailable) holds.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context, id string) (emp domain.Employee, found bool, err error)
	Scan(ctx context.Context) ([]ScanItem, error)
	Put(ctx context.Context, emp domain.Employee) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns the Postgres-backed store.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, id string) (domain.Employee, bool, error) {
	var row employeeRow
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Employee{}, false, nil
	}
	if err != nil {
		return domain.Employee{}, false, mapRepositoryError(err)
	}

	emp, err := row.decode()
	if err != nil {
		return domain.Employee{}, false, err
	}
	return emp, true, nil
}

func (r *repository) Scan(ctx context.Context) ([]ScanItem, error) {
	var rows []employeeRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, mapRepositoryError(err)
	}

	items := make([]ScanItem, 0, len(rows))
	for _, row := range rows {
		emp, err := row.decode()
		items = append(items, ScanItem{ID: row.ID, Employee: emp, Err: err})
	}
	return items, nil
}

func (r *repository) Put(ctx context.Context, emp domain.Employee) error {
	row := rowFromEmployee(emp)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	return mapRepositoryError(err)
}

// AutoMigrate creates or updates the employees table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&employeeRow{})
}
