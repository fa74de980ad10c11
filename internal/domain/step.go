package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// RoadmapStep is a user-managed action item under a goal.
type RoadmapStep struct {
	ID        string
	GoalID    string
	Text      string
	Order     int
	Completed bool
	DueDate   *time.Time
	CreatedAt time.Time
}

func (s *RoadmapStep) Validate() error {
	if strings.TrimSpace(s.Text) == "" {
		return fmt.Errorf("step text is required")
	}
	if s.Order < 0 {
		return fmt.Errorf("step order must be non-negative")
	}
	return nil
}

// Resource is a link attached to a goal.
type Resource struct {
	ID        string
	UserID    string
	Title     string
	Link      string
	Category  string
	GoalID    *string
	CreatedAt time.Time
}

func (r *Resource) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("resource title is required")
	}
	u, err := url.Parse(r.Link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("resource link %q must be an absolute http(s) URL", r.Link)
	}
	return nil
}
