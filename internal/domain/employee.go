package domain

import (
	"slices"
	"strings"
)

// Employee is the directory record. Every field is always present on a
// record handed to a caller; stores skip entries that cannot satisfy that.
type Employee struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Age         int      `json:"age"`
	Affiliation string   `json:"affiliation"`
	Post        string   `json:"post"`
	Skills      []string `json:"skills"`
}

// Clone returns a copy that shares no memory with e.
func (e Employee) Clone() Employee {
	e.Skills = slices.Clone(e.Skills)
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return e
}

// EmployeeFilter holds optional per-field constraints. Empty fields match
// everything; populated fields are combined with AND.
type EmployeeFilter struct {
	Name        string `json:"name,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	Post        string `json:"post,omitempty"`
	Skill       string `json:"skill,omitempty"`
}

// IsZero reports whether the filter imposes no constraint.
func (f EmployeeFilter) IsZero() bool {
	return f == EmployeeFilter{}
}

// Matches reports whether e satisfies every populated predicate: name is a
// case-insensitive substring match, affiliation and post are exact, skill is
// exact membership.
func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Affiliation != "" && e.Affiliation != f.Affiliation {
		return false
	}
	if f.Post != "" && e.Post != f.Post {
		return false
	}
	if f.Skill != "" && !slices.Contains(e.Skills, f.Skill) {
		return false
	}
	return true
}

// FormOptions is the closed vocabulary offered by selection inputs.
type FormOptions struct {
	Affiliations []string `json:"affiliations" yaml:"affiliations"`
	Posts        []string `json:"posts" yaml:"posts"`
	Skills       []string `json:"skills" yaml:"skills"`
}
