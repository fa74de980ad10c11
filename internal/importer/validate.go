package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateImportSchema checks the plan for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateGoal(&schema.Goal)...)
	errs = append(errs, validateSteps(schema.Steps)...)
	errs = append(errs, validateResources(schema.Resources)...)

	return errs
}

func validateGoal(g *GoalImport) []error {
	goal := domain.Goal{Title: strings.TrimSpace(g.Title), Category: strings.TrimSpace(g.Category)}
	if err := goal.Validate(); err != nil {
		return []error{fmt.Errorf("goal: %w", err)}
	}
	return nil
}

func validateSteps(steps []StepImport) []error {
	var errs []error
	seenOrder := make(map[int]int)

	for i, s := range steps {
		prefix := fmt.Sprintf("steps[%d]", i)
		if strings.TrimSpace(s.Text) == "" {
			errs = append(errs, fmt.Errorf("%s.text is required", prefix))
		}
		if s.Order < 0 {
			errs = append(errs, fmt.Errorf("%s.order must be non-negative", prefix))
		}
		if s.Order > 0 {
			if prev, dup := seenOrder[s.Order]; dup {
				errs = append(errs, fmt.Errorf("%s.order %d duplicates steps[%d]", prefix, s.Order, prev))
			} else {
				seenOrder[s.Order] = i
			}
		}
		if s.DueDate != nil {
			if _, err := time.Parse(dateLayout, *s.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.due_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *s.DueDate))
			}
		}
	}

	return errs
}

func validateResources(resources []ResourceImport) []error {
	var errs []error
	seenLinks := make(map[string]bool)

	for i, r := range resources {
		prefix := fmt.Sprintf("resources[%d]", i)
		res := domain.Resource{Title: r.Title, Link: r.Link}
		if err := res.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			continue
		}
		if seenLinks[r.Link] {
			errs = append(errs, fmt.Errorf("%s.link %q is listed twice", prefix, r.Link))
		}
		seenLinks[r.Link] = true
	}

	return errs
}
