package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/google/uuid"
)

// Plan is a converted import ready for persistence.
type Plan struct {
	Goal      *domain.Goal
	Steps     []*domain.RoadmapStep
	Resources []*domain.Resource
}

// Convert transforms a validated ImportSchema into domain objects owned by
// userID. Call ValidateImportSchema first; Convert assumes the schema is valid.
//
// An imported roadmap is stored as is but does not count as generated, so a
// later generation still earns its points.
func Convert(schema *ImportSchema, userID string, now time.Time) (*Plan, error) {
	goal := &domain.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       strings.TrimSpace(schema.Goal.Title),
		Description: schema.Goal.Description,
		Category:    strings.TrimSpace(schema.Goal.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if schema.Roadmap != nil {
		goal.Roadmap = *schema.Roadmap
	}

	steps := make([]*domain.RoadmapStep, 0, len(schema.Steps))
	next := 1
	for i, s := range schema.Steps {
		order := s.Order
		if order == 0 {
			order = next
		}
		next = max(next, order+1)

		due, err := parseOptionalDate(s.DueDate)
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
		steps = append(steps, &domain.RoadmapStep{
			ID:        uuid.New().String(),
			GoalID:    goal.ID,
			Text:      strings.TrimSpace(s.Text),
			Order:     order,
			Completed: s.Completed,
			DueDate:   due,
			CreatedAt: now,
		})
	}

	resources := make([]*domain.Resource, 0, len(schema.Resources))
	for _, r := range schema.Resources {
		goalID := goal.ID
		resources = append(resources, &domain.Resource{
			ID:        uuid.New().String(),
			UserID:    userID,
			Title:     strings.TrimSpace(r.Title),
			Link:      r.Link,
			Category:  strings.TrimSpace(r.Category),
			GoalID:    &goalID,
			CreatedAt: now,
		})
	}

	return &Plan{Goal: goal, Steps: steps, Resources: resources}, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("parsing due_date: %w", err)
	}
	t = t.UTC()
	return &t, nil
}
