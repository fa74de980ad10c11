package testutil

import (
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/google/uuid"
)

// now is truncated to whole seconds so fixtures survive an RFC3339 round trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// User options
type UserOption func(*domain.User)

func WithAdmin() UserOption {
	return func(u *domain.User) {
		u.IsAdmin = true
	}
}

func WithPassHash(h string) UserOption {
	return func(u *domain.User) {
		u.PassHash = h
	}
}

func NewTestUser(username string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Goal options
type GoalOption func(*domain.Goal)

func WithCategory(c string) GoalOption {
	return func(g *domain.Goal) {
		g.Category = c
	}
}

func WithDescription(d string) GoalOption {
	return func(g *domain.Goal) {
		g.Description = d
	}
}

func WithRoadmap(r domain.Roadmap) GoalOption {
	return func(g *domain.Goal) {
		g.Roadmap = r
		t := now()
		g.RoadmapGeneratedAt = &t
	}
}

func WithCompleted() GoalOption {
	return func(g *domain.Goal) {
		t := now()
		g.IsCompleted = true
		g.CompletedAt = &t
	}
}

func NewTestGoal(userID, title string, opts ...GoalOption) *domain.Goal {
	t := now()
	g := &domain.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Category:  "career",
		CreatedAt: t,
		UpdatedAt: t,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Step options
type StepOption func(*domain.RoadmapStep)

func WithDueDate(d time.Time) StepOption {
	return func(s *domain.RoadmapStep) {
		s.DueDate = &d
	}
}

func WithStepCompleted() StepOption {
	return func(s *domain.RoadmapStep) {
		s.Completed = true
	}
}

func NewTestStep(goalID, text string, order int, opts ...StepOption) *domain.RoadmapStep {
	s := &domain.RoadmapStep{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Text:      text,
		Order:     order,
		CreatedAt: now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resource options
type ResourceOption func(*domain.Resource)

func WithGoal(goalID string) ResourceOption {
	return func(r *domain.Resource) {
		r.GoalID = &goalID
	}
}

func NewTestResource(userID, title string, opts ...ResourceOption) *domain.Resource {
	r := &domain.Resource{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Link:      "https://example.com/" + uuid.New().String()[:8],
		Category:  "reading",
		CreatedAt: now(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestAnswers builds answers for the given question id to letter pairs.
func NewTestAnswers(userID string, letters map[int]domain.OptionLetter) []domain.AssessmentAnswer {
	t := now()
	answers := make([]domain.AssessmentAnswer, 0, len(letters))
	for id, l := range letters {
		answers = append(answers, domain.AssessmentAnswer{UserID: userID, QuestionID: id, Letter: l, CreatedAt: t})
	}
	return answers
}
