package employee

import (
	"context"
	"errors"
	"sync"

	"go-talent/internal/domain"
	employeeerrors "go-talent/internal/employee/errors"
)

var errMemoryStoreClosed = errors.New("memory store closed")

// MemoryRepository keeps records in process memory. Scan returns entries in
// insertion order; a put to an existing id keeps its position.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]domain.Employee
	order   []string
	closed  bool
}

func NewMemoryRepository(seed ...domain.Employee) *MemoryRepository {
	r := &MemoryRepository{records: make(map[string]domain.Employee, len(seed))}
	for _, e := range seed {
		r.put(e)
	}
	return r
}

// DemoEmployees is the local development data set.
func DemoEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "1", Name: "Jane Doe", Age: 22, Affiliation: "Engineering", Post: "Software Engineer", Skills: []string{"JavaScript", "TypeScript"}},
		{ID: "2", Name: "John Smith", Age: 28, Affiliation: "Design", Post: "Graphic Designer", Skills: []string{"Illustrator", "Print Design"}},
		{ID: "3", Name: "山田 太郎", Age: 27, Affiliation: "Marketing", Post: "Marketing Manager", Skills: []string{"Sales Strategy", "User Research"}},
	}
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (domain.Employee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return domain.Employee{}, false, employeeerrors.StoreUnavailable(errMemoryStoreClosed)
	}
	e, ok := r.records[id]
	if !ok {
		return domain.Employee{}, false, nil
	}
	return e.Clone(), true, nil
}

func (r *MemoryRepository) Scan(ctx context.Context) ([]ScanItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, employeeerrors.StoreUnavailable(errMemoryStoreClosed)
	}
	items := make([]ScanItem, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, ScanItem{ID: id, Employee: r.records[id].Clone()})
	}
	return items, nil
}

func (r *MemoryRepository) Put(ctx context.Context, emp domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return employeeerrors.StoreUnavailable(errMemoryStoreClosed)
	}
	r.put(emp)
	return nil
}

// Close drops all records. Later calls fail as store unavailable.
func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.records = nil
	r.order = nil
	return nil
}

func (r *MemoryRepository) put(emp domain.Employee) {
	if _, exists := r.records[emp.ID]; !exists {
		r.order = append(r.order, emp.ID)
	}
	r.records[emp.ID] = emp.Clone()
}
