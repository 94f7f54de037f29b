package employee

import (
	"context"
	"errors"
	"slices"
	"time"

	"go-talent/internal/domain"
	employeeerrors "go-talent/internal/employee/errors"
	"go-talent/internal/events"
	"go-talent/internal/formoption"
	"go-talent/internal/shared/apperror"
	"go-talent/internal/shared/contextutil"
	"go-talent/internal/shared/idalloc"
	"go-talent/internal/shared/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service interface {
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (domain.Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (domain.Employee, error)
	FormOptions(ctx context.Context) domain.FormOptions
}

// ServiceDeps collects the collaborators of the service. Nil fields fall
// back to: max-plus-one allocation, an in-process lock, the built-in form
// options and a no-op event publisher.
type ServiceDeps struct {
	Repo      Repository
	Allocator idalloc.Allocator
	Locker    idalloc.Locker
	Catalog   *formoption.Catalog
	Publisher EventPublisher
	// StrictOptions rejects affiliation, post and skill values outside Catalog.
	StrictOptions bool
}

type service struct {
	repo      Repository
	alloc     idalloc.Allocator
	locker    idalloc.Locker
	catalog   *formoption.Catalog
	publisher EventPublisher
	strict    bool
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(deps ServiceDeps, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}

	s := &service{
		repo:      deps.Repo,
		alloc:     deps.Allocator,
		locker:    deps.Locker,
		catalog:   deps.Catalog,
		publisher: deps.Publisher,
		strict:    deps.StrictOptions,
		sf:        &singleflight.Group{},
		logger:    l,
	}
	if s.alloc == nil {
		s.alloc = idalloc.MaxPlusOne{}
	}
	if s.locker == nil {
		s.locker = idalloc.NewLocalLocker()
	}
	if s.catalog == nil {
		s.catalog = formoption.Default()
	}
	if s.publisher == nil {
		s.publisher = NewNoopEventPublisher()
	}
	return s
}

func (s *service) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list employees requested",
		zap.String("name", filter.Name),
		zap.String("affiliation", filter.Affiliation),
		zap.String("post", filter.Post),
		zap.String("skill", filter.Skill),
	)

	items, err := s.repo.Scan(ctx)
	if err != nil {
		log.Error("list employees scan failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return FilterEmployees(items, filter, log), nil
}

func (s *service) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by id requested", zap.String("employee_id", id))

	v, err, _ := s.sf.Do(id, func() (interface{}, error) {
		emp, found, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return emp, nil
	})

	switch {
	case err == nil:
		return v.(domain.Employee).Clone(), nil
	case errors.Is(err, employeeerrors.ErrEmployeeNotFound):
		log.Debug("employee not found", zap.String("employee_id", id))
		return domain.Employee{}, employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, ErrMalformedRecord):
		reportMalformed(log, id, err)
		return domain.Employee{}, employeeerrors.ErrEmployeeNotFound
	default:
		log.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return domain.Employee{}, mapRepositoryError(err)
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (domain.Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested",
		zap.String("affiliation", req.Affiliation),
		zap.String("post", req.Post),
	)

	if err := s.validateCreateRequest(req); err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return domain.Employee{}, err
	}

	emp, err := s.allocateAndPut(ctx, req)
	if err != nil {
		return domain.Employee{}, err
	}
	metrics.EmployeesCreated.WithLabelValues(string(s.alloc.Policy())).Inc()

	event := events.EmployeeCreatedEvent{
		EventType:   events.EmployeeCreatedType,
		RequestID:   rid,
		EmployeeID:  emp.ID,
		Name:        emp.Name,
		Affiliation: emp.Affiliation,
		Post:        emp.Post,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		// The record is already stored, so this is logged only.
		log.Error("publish employee created failed",
			zap.String("employee_id", emp.ID),
			zap.Error(err),
		)
	}

	log.Info("create employee success",
		zap.String("employee_id", emp.ID),
		zap.String("id_policy", string(s.alloc.Policy())),
	)
	return emp.Clone(), nil
}

// allocateAndPut holds the allocation lock across reading existing ids and
// writing the new record, so two creates can never pick the same id.
func (s *service) allocateAndPut(ctx context.Context, req CreateEmployeeRequest) (domain.Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		log.Error("create employee acquire allocation lock failed", zap.Error(err))
		return domain.Employee{}, employeeerrors.StoreUnavailable(err)
	}
	defer unlock()

	items, err := s.repo.Scan(ctx)
	if err != nil {
		log.Error("create employee read existing ids failed", zap.Error(err))
		return domain.Employee{}, mapRepositoryError(err)
	}
	existing := make([]string, 0, len(items))
	for _, item := range items {
		existing = append(existing, item.ID)
	}

	id, err := s.alloc.Next(existing)
	if err != nil {
		log.Error("create employee allocate id failed", zap.Error(err))
		return domain.Employee{}, apperror.Wrap(err,
			employeeerrors.ErrIDAllocationFailed.Code,
			employeeerrors.ErrIDAllocationFailed.Message,
			employeeerrors.ErrIDAllocationFailed.HTTPStatus,
		)
	}

	emp := domain.Employee{
		ID:          id,
		Name:        req.Name,
		Age:         *req.Age,
		Affiliation: req.Affiliation,
		Post:        req.Post,
		Skills:      slices.Clone(req.Skills),
	}
	if err := s.repo.Put(ctx, emp); err != nil {
		log.Error("create employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return domain.Employee{}, mapRepositoryError(err)
	}
	return emp, nil
}

func (s *service) FormOptions(ctx context.Context) domain.FormOptions {
	return s.catalog.Options()
}

// validateCreateRequest reports the first violated field in body order.
func (s *service) validateCreateRequest(req CreateEmployeeRequest) error {
	if blank(req.Name) {
		return apperror.RequiredField("name")
	}
	if req.Age == nil {
		return apperror.RequiredField("age")
	}
	if *req.Age < MinAge || *req.Age > MaxAge {
		return apperror.InvalidField("age", "must be between 1 and 100")
	}
	if blank(req.Affiliation) {
		return apperror.RequiredField("affiliation")
	}
	if s.strict && !s.catalog.HasAffiliation(req.Affiliation) {
		return apperror.InvalidField("affiliation", "not one of the form options")
	}
	if blank(req.Post) {
		return apperror.RequiredField("post")
	}
	if s.strict && !s.catalog.HasPost(req.Post) {
		return apperror.InvalidField("post", "not one of the form options")
	}
	if len(req.Skills) == 0 {
		return apperror.RequiredField("skills")
	}
	for _, skill := range req.Skills {
		if blank(skill) {
			return apperror.InvalidField("skills", "must not contain blank values")
		}
		if s.strict && !s.catalog.HasSkill(skill) {
			return apperror.InvalidField("skills", "not one of the form options")
		}
	}
	return nil
}
