package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/importer"
)

// AnswerInput is one submitted (question id, letter) pair.
type AnswerInput struct {
	QuestionID int
	Letter     domain.OptionLetter
}

type AssessmentService interface {
	Questions(ctx context.Context) ([]domain.AssessmentQuestion, error)
	Answers(ctx context.Context, userID string) ([]domain.AssessmentAnswer, error)
	// Submit replaces every stored answer of the user and patches the profile.
	Submit(ctx context.Context, userID string, answers []AnswerInput) (*domain.PersonalityProfile, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.PersonalityProfile, error)
	Update(ctx context.Context, userID string, patch domain.DimensionMap) (*domain.PersonalityProfile, error)
}

// GoalInput carries the user-editable goal fields.
type GoalInput struct {
	Title       string
	Description string
	Category    string
}

// CompletionResult describes what completing a goal earned.
type CompletionResult struct {
	Goal         *domain.Goal
	Awarded      bool
	PointsEarned int
	NewBadges    []domain.Badge
	Stats        *domain.UserStats
}

type GoalService interface {
	Create(ctx context.Context, userID string, in GoalInput) (*domain.Goal, error)
	Get(ctx context.Context, userID, goalID string) (*domain.Goal, error)
	List(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, userID, goalID string, in GoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, userID, goalID string) error
	Complete(ctx context.Context, userID, goalID string) (*CompletionResult, error)
}

// GenerateRoadmapRequest asks for a roadmap for an existing goal. Blank
// fields fall back to the stored goal.
type GenerateRoadmapRequest struct {
	GoalID      string
	Title       string
	Category    string
	Description string
}

type RoadmapService interface {
	Generate(ctx context.Context, userID string, req GenerateRoadmapRequest) (*domain.Goal, error)
}

// StepInput carries the user-editable step fields.
type StepInput struct {
	GoalID    string
	Text      string
	Order     int
	Completed bool
	DueDate   *time.Time
}

type StepService interface {
	Create(ctx context.Context, userID string, in StepInput) (*domain.RoadmapStep, error)
	Get(ctx context.Context, userID, stepID string) (*domain.RoadmapStep, error)
	// List returns the user's steps, restricted to one goal when goalID is set.
	List(ctx context.Context, userID string, goalID *string) ([]*domain.RoadmapStep, error)
	Update(ctx context.Context, userID, stepID string, in StepInput) (*domain.RoadmapStep, error)
	Delete(ctx context.Context, userID, stepID string) error
}

// ResourceInput carries the fields of a new resource.
type ResourceInput struct {
	Title    string
	Link     string
	Category string
	GoalID   *string
}

type ResourceService interface {
	Create(ctx context.Context, userID string, in ResourceInput) (*domain.Resource, error)
	Get(ctx context.Context, userID, resourceID string) (*domain.Resource, error)
	List(ctx context.Context, userID string, goalID *string) ([]*domain.Resource, error)
	Delete(ctx context.Context, userID, resourceID string) error
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	// EnsureLocalUser returns the named password-less account used by the
	// CLI, creating it on first use.
	EnsureLocalUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, actingUserID string) ([]*domain.User, error)
}

type AchievementService interface {
	Get(ctx context.Context, userID string) (*domain.UserStats, error)
}

type ImportService interface {
	// Import validates a plan file and stores its goal, steps and resources
	// for userID in one transaction.
	Import(ctx context.Context, userID string, schema *importer.ImportSchema) (*importer.Plan, error)
}
