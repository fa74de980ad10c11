package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type QuestionRepo interface {
	// List returns the catalog ordered by question id.
	List(ctx context.Context) ([]*domain.AssessmentQuestion, error)
}

type AnswerRepo interface {
	// ReplaceAll deletes every stored answer of the user and writes the given
	// ones. Callers run it inside a unit of work.
	ReplaceAll(ctx context.Context, userID string, answers []domain.AssessmentAnswer) error
	ListByUser(ctx context.Context, userID string) ([]domain.AssessmentAnswer, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.PersonalityProfile, error)
	Upsert(ctx context.Context, p *domain.PersonalityProfile) error
}

// GoalDetailsPatch carries the user-editable goal columns. Empty fields keep
// the stored value.
type GoalDetailsPatch struct {
	Title       string
	Description string
	Category    string
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error)
	// Update writes every mutable column. Only completion and roadmap
	// generation use it, inside their unit of work.
	Update(ctx context.Context, g *domain.Goal) error
	// UpdateDetails writes title, description and category without touching
	// completion or roadmap columns.
	UpdateDetails(ctx context.Context, id string, p GoalDetailsPatch, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type StepRepo interface {
	Create(ctx context.Context, s *domain.RoadmapStep) error
	GetByID(ctx context.Context, id string) (*domain.RoadmapStep, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.RoadmapStep, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.RoadmapStep, error)
	// Update writes order, completion and due date. An empty Text keeps the
	// stored text.
	Update(ctx context.Context, s *domain.RoadmapStep) error
	Delete(ctx context.Context, id string) error
}

// ResourceFilter narrows ResourceRepo.List. A nil GoalID lists every resource
// of the user.
type ResourceFilter struct {
	UserID string
	GoalID *string
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, f ResourceFilter) ([]*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type StatsRepo interface {
	// Get returns the user's counters, or zero counters when none are stored.
	Get(ctx context.Context, userID string) (*domain.UserStats, error)
	// Save upserts the counters and records any badges not stored yet.
	Save(ctx context.Context, s *domain.UserStats) error
}
