// Package formoption holds the closed vocabulary used by selection inputs
// and, when strict mode is on, by create validation.
package formoption

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"go-talent/internal/domain"

	"gopkg.in/yaml.v3"
)

// Catalog is read-only after construction.
type Catalog struct {
	options domain.FormOptions
}

func NewCatalog(opts domain.FormOptions) *Catalog {
	return &Catalog{options: cloneOptions(opts)}
}

// Default returns the built-in vocabulary.
func Default() *Catalog {
	return NewCatalog(domain.FormOptions{
		Affiliations: []string{
			"Engineering",
			"Marketing",
			"Sales",
			"Design",
			"HR",
			"Finance",
			"Operations",
			"Legal",
			"Customer Support",
		},
		Posts: []string{
			"Software Engineer",
			"Senior Software Engineer",
			"Tech Lead",
			"Engineering Manager",
			"DevOps Engineer",
			"Marketing Manager",
			"Marketing Specialist",
			"Sales Manager",
			"Sales Representative",
			"UI/UX Designer",
			"Graphic Designer",
			"Product Designer",
			"HR Specialist",
			"HR Manager",
			"Financial Analyst",
			"Accountant",
			"Operations Manager",
			"Legal Counsel",
			"Customer Support Specialist",
		},
		Skills: []string{
			"JavaScript",
			"TypeScript",
			"React",
			"Node.js",
			"Python",
			"Java",
			"Go",
			"AWS",
			"Docker",
			"Kubernetes",
			"Git",
			"SQL",
			"MongoDB",
			"Figma",
			"Photoshop",
			"Illustrator",
			"Print Design",
			"Branding",
			"Digital Marketing",
			"SEO",
			"Analytics",
			"Sales Strategy",
			"CRM",
			"Negotiation",
			"Project Management",
			"Agile",
			"Scrum",
			"User Research",
			"Data Analysis",
			"Excel",
			"PowerPoint",
			"Communication",
			"Leadership",
			"Problem Solving",
		},
	})
}

// Load reads a YAML vocabulary file. Every list must be non-empty.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form options %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var opts domain.FormOptions
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("parse form options: %w", err)
	}
	if len(opts.Affiliations) == 0 {
		return nil, errors.New("form options: affiliations must not be empty")
	}
	if len(opts.Posts) == 0 {
		return nil, errors.New("form options: posts must not be empty")
	}
	if len(opts.Skills) == 0 {
		return nil, errors.New("form options: skills must not be empty")
	}
	return NewCatalog(opts), nil
}

// Options returns a copy callers may modify freely.
func (c *Catalog) Options() domain.FormOptions {
	return cloneOptions(c.options)
}

func (c *Catalog) HasAffiliation(v string) bool { return slices.Contains(c.options.Affiliations, v) }
func (c *Catalog) HasPost(v string) bool        { return slices.Contains(c.options.Posts, v) }
func (c *Catalog) HasSkill(v string) bool       { return slices.Contains(c.options.Skills, v) }

func cloneOptions(o domain.FormOptions) domain.FormOptions {
	return domain.FormOptions{
		Affiliations: slices.Clone(o.Affiliations),
		Posts:        slices.Clone(o.Posts),
		Skills:       slices.Clone(o.Skills),
	}
}
