package idalloc

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Policy selects how new record ids are produced.
type Policy string

const (
	// PolicyMaxPlusOne yields max(numeric ids)+1. Dense and short, but
	// allocation must be serialized with the write that follows it.
	PolicyMaxPlusOne Policy = "max-plus-one"
	// PolicyTimestamp yields strictly increasing Unix milliseconds.
	PolicyTimestamp Policy = "timestamp"
	// PolicyRandom yields a nanoid.
	PolicyRandom Policy = "random"
)

// Allocator produces an id distinct from every id in existing.
type Allocator interface {
	Next(existing []string) (string, error)
	Policy() Policy
}

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyMaxPlusOne, nil
	case PolicyMaxPlusOne, PolicyTimestamp, PolicyRandom:
		return p, nil
	default:
		return "", fmt.Errorf("unknown id allocation policy %q", s)
	}
}

func New(policy Policy) (Allocator, error) {
	switch policy {
	case PolicyMaxPlusOne:
		return MaxPlusOne{}, nil
	case PolicyTimestamp:
		return NewTimestamp(time.Now), nil
	case PolicyRandom:
		return Random{}, nil
	default:
		return nil, fmt.Errorf("unknown id allocation policy %q", policy)
	}
}

type MaxPlusOne struct{}

func (MaxPlusOne) Policy() Policy { return PolicyMaxPlusOne }

// Next ignores ids that are not base-10 integers. The result is canonical
// decimal and larger than every numeric id, so it cannot equal any existing
// id, numeric or not.
func (MaxPlusOne) Next(existing []string) (string, error) {
	var highest int64
	for _, id := range existing {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	if highest == 1<<63-1 {
		return "", fmt.Errorf("numeric id space exhausted")
	}
	return strconv.FormatInt(highest+1, 10), nil
}

// Timestamp is safe for concurrent use.
type Timestamp struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewTimestamp(now func() time.Time) *Timestamp {
	return &Timestamp{now: now}
}

func (*Timestamp) Policy() Policy { return PolicyTimestamp }

func (t *Timestamp) Next(existing []string) (string, error) {
	taken := toSet(existing)

	t.mu.Lock()
	defer t.mu.Unlock()

	v := t.now().UnixMilli()
	if v <= t.last {
		v = t.last + 1
	}
	for taken[strconv.FormatInt(v, 10)] {
		v++
	}
	t.last = v
	return strconv.FormatInt(v, 10), nil
}

type Random struct{}

func (Random) Policy() Policy { return PolicyRandom }

const randomAttempts = 8

func (Random) Next(existing []string) (string, error) {
	taken := toSet(existing)
	for i := 0; i < randomAttempts; i++ {
		id, err := gonanoid.New()
		if err != nil {
			return "", err
		}
		if !taken[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("random id collided %d times", randomAttempts)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
