package employee

import (
	"go-talent/internal/domain"
	"go-talent/internal/shared/metrics"

	"go.uber.org/zap"
)

// FilterEmployees keeps the well-formed items that satisfy every populated
// field of filter, in scan order. Malformed items are dropped and logged;
// they never fail the call. The result is never nil.
func FilterEmployees(items []ScanItem, filter domain.EmployeeFilter, logger *zap.Logger) []domain.Employee {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]domain.Employee, 0, len(items))
	for _, item := range items {
		if item.Err != nil {
			reportMalformed(logger, item.ID, item.Err)
			continue
		}
		if filter.Matches(item.Employee) {
			out = append(out, item.Employee)
		}
	}
	return out
}

func reportMalformed(logger *zap.Logger, id string, err error) {
	metrics.MalformedRecords.Inc()
	logger.Warn("skipping malformed employee record",
		zap.String("employee_id", id),
		zap.Error(err),
	)
}
