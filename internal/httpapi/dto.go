package httpapi

import (
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/gamification"
	"github.com/alexanderramin/pathwise/internal/importer"
	"github.com/alexanderramin/pathwise/internal/service"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type answerRequest struct {
	QuestionID int    `json:"question_id" binding:"required,min=1"`
	Answer     string `json:"answer" binding:"required,letter"`
}

type submitRequest struct {
	Answers []answerRequest `json:"answers" binding:"required,min=1,dive"`
}

type goalRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"max=100"`
}

type goalUpdateRequest struct {
	Title       string `json:"title" binding:"max=255"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"max=100"`
}

// generateRequest keeps the original field names: goal is the title.
type generateRequest struct {
	GoalID      string `json:"goal_id" binding:"required"`
	Goal        string `json:"goal"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type stepRequest struct {
	GoalID    string     `json:"goal_id"`
	Text      string     `json:"text"`
	Order     int        `json:"order" binding:"min=0"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"due_date"`
}

type resourceRequest struct {
	Title    string  `json:"title" binding:"required"`
	Link     string  `json:"link" binding:"required,url"`
	Category string  `json:"category"`
	GoalID   *string `json:"goal_id"`
}

type userDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin, CreatedAt: u.CreatedAt}
}

type authDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userDTO   `json:"user"`
}

type questionDTO struct {
	QuestionID int               `json:"question_id"`
	Dimension  domain.Dimension  `json:"dimension"`
	Text       string            `json:"text"`
	Options    map[string]string `json:"options"`
}

func toQuestionDTO(q domain.AssessmentQuestion) questionDTO {
	opts := make(map[string]string, len(q.Options))
	for i, letter := range domain.OptionLetters {
		opts[string(letter)] = q.Options[i].Label
	}
	return questionDTO{QuestionID: q.QuestionID, Dimension: q.Dimension, Text: q.Text, Options: opts}
}

type profileDTO struct {
	UserID     string            `json:"user_id"`
	Dimensions map[string]string `json:"dimensions"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// toProfileDTO reports every dimension, unanswered ones as "".
func toProfileDTO(p *domain.PersonalityProfile) profileDTO {
	dims := make(map[string]string, len(domain.AllDimensions))
	for _, d := range domain.AllDimensions {
		dims[string(d)] = p.Get(d)
	}
	return profileDTO{UserID: p.UserID, Dimensions: dims, UpdatedAt: p.UpdatedAt}
}

type goalDTO struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Category           string         `json:"category"`
	IsCompleted        bool           `json:"is_completed"`
	CompletedAt        *time.Time     `json:"completed_at,omitempty"`
	Roadmap            domain.Roadmap `json:"roadmap"`
	RoadmapGeneratedAt *time.Time     `json:"roadmap_generated_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func toGoalDTO(g *domain.Goal) goalDTO {
	return goalDTO{
		ID:                 g.ID,
		Title:              g.Title,
		Description:        g.Description,
		Category:           g.Category,
		IsCompleted:        g.IsCompleted,
		CompletedAt:        g.CompletedAt,
		Roadmap:            g.Roadmap,
		RoadmapGeneratedAt: g.RoadmapGeneratedAt,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

type stepDTO struct {
	ID        string     `json:"id"`
	GoalID    string     `json:"goal_id"`
	Text      string     `json:"text"`
	Order     int        `json:"order"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toStepDTO(s *domain.RoadmapStep) stepDTO {
	return stepDTO{ID: s.ID, GoalID: s.GoalID, Text: s.Text, Order: s.Order, Completed: s.Completed, DueDate: s.DueDate, CreatedAt: s.CreatedAt}
}

type resourceDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Category  string    `json:"category,omitempty"`
	GoalID    *string   `json:"goal_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toResourceDTO(r *domain.Resource) resourceDTO {
	return resourceDTO{ID: r.ID, Title: r.Title, Link: r.Link, Category: r.Category, GoalID: r.GoalID, CreatedAt: r.CreatedAt}
}

type badgeDTO struct {
	Code        domain.BadgeCode `json:"code"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	AwardedAt   time.Time        `json:"awarded_at"`
}

func toBadgeDTOs(badges []domain.Badge) []badgeDTO {
	out := make([]badgeDTO, 0, len(badges))
	for _, b := range badges {
		rule, _ := gamification.Lookup(b.Code)
		out = append(out, badgeDTO{Code: b.Code, Title: rule.Title, Description: rule.Description, AwardedAt: b.AwardedAt})
	}
	return out
}

type statsDTO struct {
	Points         int        `json:"points"`
	GoalsCompleted int        `json:"goals_completed"`
	Badges         []badgeDTO `json:"badges"`
}

func toStatsDTO(s *domain.UserStats) statsDTO {
	return statsDTO{Points: s.Points, GoalsCompleted: s.GoalsCompleted, Badges: toBadgeDTOs(s.Badges)}
}

type completionDTO struct {
	Goal         goalDTO    `json:"goal"`
	Awarded      bool       `json:"awarded"`
	PointsEarned int        `json:"points_earned"`
	NewBadges    []badgeDTO `json:"new_badges"`
	Stats        statsDTO   `json:"stats"`
}

func toCompletionDTO(r *service.CompletionResult) completionDTO {
	return completionDTO{
		Goal:         toGoalDTO(r.Goal),
		Awarded:      r.Awarded,
		PointsEarned: r.PointsEarned,
		NewBadges:    toBadgeDTOs(r.NewBadges),
		Stats:        toStatsDTO(r.Stats),
	}
}

type planDTO struct {
	Goal      goalDTO       `json:"goal"`
	Steps     []stepDTO     `json:"steps"`
	Resources []resourceDTO `json:"resources"`
}

func toPlanDTO(p *importer.Plan) planDTO {
	out := planDTO{
		Goal:      toGoalDTO(p.Goal),
		Steps:     make([]stepDTO, 0, len(p.Steps)),
		Resources: make([]resourceDTO, 0, len(p.Resources)),
	}
	for _, s := range p.Steps {
		out.Steps = append(out.Steps, toStepDTO(s))
	}
	for _, r := range p.Resources {
		out.Resources = append(out.Resources, toResourceDTO(r))
	}
	return out
}
