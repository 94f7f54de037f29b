// Package sortview derives the ordered list a client renders from a fetched
// employee list. It never talks to the server.
package sortview

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"go-talent/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Key string

const (
	KeyNone        Key = ""
	KeyAge         Key = "age"
	KeyName        Key = "name"
	KeyAffiliation Key = "affiliation"
	KeyPost        Key = "post"
	KeySkills      Key = "skills"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Spec selects the ordering. The zero value leaves a list as fetched.
type Spec struct {
	Key   Key
	Order Order
	// Locale drives string collation; language.Und uses the root order.
	Locale language.Tag
}

func ParseKey(s string) (Key, error) {
	switch k := Key(strings.ToLower(strings.TrimSpace(s))); k {
	case KeyNone, KeyAge, KeyName, KeyAffiliation, KeyPost, KeySkills:
		return k, nil
	case "none":
		return KeyNone, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// Apply returns list ordered by spec. KeyNone returns list itself; any other
// key returns a new stable-sorted slice and leaves list untouched.
func Apply(list []domain.Employee, spec Spec) []domain.Employee {
	if spec.Key == KeyNone {
		return list
	}

	cmp := comparator(spec)
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b domain.Employee) int {
		if spec.Order == Desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out
}

func comparator(spec Spec) func(a, b domain.Employee) int {
	if spec.Key == KeyAge {
		return func(a, b domain.Employee) int { return a.Age - b.Age }
	}

	col := collate.New(spec.Locale)
	var field func(domain.Employee) string
	switch spec.Key {
	case KeyName:
		field = func(e domain.Employee) string { return e.Name }
	case KeyAffiliation:
		field = func(e domain.Employee) string { return e.Affiliation }
	case KeyPost:
		field = func(e domain.Employee) string { return e.Post }
	case KeySkills:
		field = firstSkill
	default:
		return func(domain.Employee, domain.Employee) int { return 0 }
	}
	return func(a, b domain.Employee) int {
		return col.CompareString(field(a), field(b))
	}
}

// firstSkill is the skills sort key: only the first entry counts.
func firstSkill(e domain.Employee) string {
	if len(e.Skills) == 0 {
		return ""
	}
	return e.Skills[0]
}

// View memoises Apply. It recomputes only when the input slice (by backing
// array and length), the key or the order differ from the previous call.
type View struct {
	mu     sync.Mutex
	valid  bool
	head   *domain.Employee
	length int
	spec   Spec
	result []domain.Employee
}

func (v *View) Derive(list []domain.Employee, spec Spec) []domain.Employee {
	v.mu.Lock()
	defer v.mu.Unlock()

	var head *domain.Employee
	if len(list) > 0 {
		head = &list[0]
	}
	if v.valid && v.head == head && v.length == len(list) && v.spec == spec {
		return v.result
	}

	v.result = Apply(list, spec)
	v.head, v.length, v.spec, v.valid = head, len(list), spec, true
	return v.result
}
