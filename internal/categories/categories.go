// Package categories provides lookup over the fixed expense taxonomy.
package categories

import (
	"strings"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Info describes one category.
type Info struct {
	Category    model.Category
	DisplayName string
}

// Service provides in-memory lookup over the category set.
type Service struct {
	infos  []Info
	byName map[model.Category]Info
}

var displayNames = map[model.Category]string{
	model.CategoryFood:          "Food",
	model.CategoryTransport:     "Transport",
	model.CategoryEntertainment: "Entertainment",
	model.CategoryShopping:      "Shopping",
	model.CategoryBills:         "Bills",
	model.CategoryHealth:        "Health",
	model.CategoryEducation:     "Education",
	model.CategoryOther:         "Other",
}

// NewService creates a Service over the built-in taxonomy.
func NewService() *Service {
	infos := make([]Info, 0, len(displayNames))
	byName := make(map[model.Category]Info, len(displayNames))
	for _, c := range model.Categories() {
		in := Info{Category: c, DisplayName: displayNames[c]}
		infos = append(infos, in)
		byName[c] = in
	}
	return &Service{infos: infos, byName: byName}
}

// All returns all categories in display order.
func (s *Service) All() []Info {
	return s.infos
}

// Exists reports whether a category is part of the taxonomy.
func (s *Service) Exists(c model.Category) bool {
	_, ok := s.byName[c]
	return ok
}

// DisplayName returns the human-readable name, or the raw value for an
// unknown category.
func (s *Service) DisplayName(c model.Category) string {
	if in, ok := s.byName[c]; ok {
		return in.DisplayName
	}
	return string(c)
}

// Normalize lower-cases and trims a raw value and reports whether the
// result is a known category.
func (s *Service) Normalize(raw string) (model.Category, bool) {
	c := model.Category(strings.ToLower(strings.TrimSpace(raw)))
	return c, s.Exists(c)
}
