package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxGoalTitleLen    = 255
	MaxGoalCategoryLen = 100
)

// Roadmap holds the six text fields produced by a roadmap generation.
type Roadmap struct {
	MilestoneStart    string `json:"milestone_start"`
	Milestone3Months  string `json:"milestone_3_months"`
	Milestone6Months  string `json:"milestone_6_months"`
	Milestone9Months  string `json:"milestone_9_months"`
	Milestone12Months string `json:"milestone_12_months"`
	FullPlan          string `json:"full_plan"`
}

// IsEmpty reports whether no roadmap field is populated.
func (r Roadmap) IsEmpty() bool {
	return r == Roadmap{}
}

// Fields returns the roadmap as ordered (name, value) pairs.
func (r Roadmap) Fields() [][2]string {
	return [][2]string{
		{"milestone_start", r.MilestoneStart},
		{"milestone_3_months", r.Milestone3Months},
		{"milestone_6_months", r.Milestone6Months},
		{"milestone_9_months", r.Milestone9Months},
		{"milestone_12_months", r.Milestone12Months},
		{"full_plan", r.FullPlan},
	}
}

type Goal struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Category    string
	IsCompleted bool
	CompletedAt *time.Time
	Roadmap     Roadmap

	// RoadmapGeneratedAt is set by the first successful generation.
	RoadmapGeneratedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks the user-editable fields.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title is required")
	}
	if len(g.Title) > MaxGoalTitleLen {
		return fmt.Errorf("goal title exceeds %d characters", MaxGoalTitleLen)
	}
	if len(g.Category) > MaxGoalCategoryLen {
		return fmt.Errorf("goal category exceeds %d characters", MaxGoalCategoryLen)
	}
	return nil
}

// MarkCompleted transitions the goal to completed. It returns false when the
// goal was already completed.
func (g *Goal) MarkCompleted(now time.Time) bool {
	if g.IsCompleted {
		return false
	}
	g.IsCompleted = true
	g.CompletedAt = &now
	g.UpdatedAt = now
	return true
}

// ReplaceRoadmap overwrites all six roadmap fields. It returns true when this
// is the goal's first generated roadmap.
func (g *Goal) ReplaceRoadmap(r Roadmap, now time.Time) bool {
	first := g.RoadmapGeneratedAt == nil
	g.Roadmap = r
	if first {
		g.RoadmapGeneratedAt = &now
	}
	g.UpdatedAt = now
	return first
}

// DisplayID returns a truncated identifier for terminal output.
func (g *Goal) DisplayID() string {
	if len(g.ID) >= 8 {
		return g.ID[:8]
	}
	return g.ID
}
