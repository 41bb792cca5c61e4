package driver

import (
	"fmt"
	"strings"

	"tms/internal/pkg/errs"
)

// CNHCategory is the class printed on a Brazilian driver's license (CNH).
type CNHCategory string

const (
	CategoryA CNHCategory = "A"
	CategoryB CNHCategory = "B"
	CategoryC CNHCategory = "C"
	CategoryD CNHCategory = "D"
	CategoryE CNHCategory = "E"
)

// Categories lists every accepted category in license order.
func Categories() []CNHCategory {
	return []CNHCategory{CategoryA, CategoryB, CategoryC, CategoryD, CategoryE}
}

// ParseCNHCategory accepts exactly one of A-E. Lower case is rejected, the
// stored enum is case sensitive.
func ParseCNHCategory(s string) (CNHCategory, error) {
	c := CNHCategory(strings.TrimSpace(s))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks that c is one of the five categories.
func (c CNHCategory) Validate() error {
	switch c {
	case CategoryA, CategoryB, CategoryC, CategoryD, CategoryE:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("cnh_category", fmt.Errorf("%q is not a valid CNH category", string(c)))
}

func (c CNHCategory) String() string {
	return string(c)
}
