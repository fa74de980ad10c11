package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/assessment"
	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/gamification"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/roadmap"
)

type roadmapService struct {
	goals     repository.GoalRepo
	profiles  repository.ProfileRepo
	answers   repository.AnswerRepo
	questions repository.QuestionRepo
	client    llm.LLMClient
	uow       db.UnitOfWork
	logger    *slog.Logger
	observer  UseCaseObserver
}

// NewRoadmapService creates a RoadmapService. A nil client disables
// generation; Generate then fails with ErrGeneration.
func NewRoadmapService(
	goals repository.GoalRepo,
	profiles repository.ProfileRepo,
	answers repository.AnswerRepo,
	questions repository.QuestionRepo,
	client llm.LLMClient,
	uow db.UnitOfWork,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) RoadmapService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &roadmapService{
		goals:     goals,
		profiles:  profiles,
		answers:   answers,
		questions: questions,
		client:    client,
		uow:       uow,
		logger:    logger,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *roadmapService) Generate(ctx context.Context, userID string, req GenerateRoadmapRequest) (goal *domain.Goal, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "goal_id": req.GoalID}
	defer observe(ctx, s.observer, "generate-roadmap", startedAt, fields, &err)

	goal, err = ownedGoal(ctx, s.goals, userID, req.GoalID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: complete your assessment first", ErrPrerequisite)
	}
	if err != nil {
		return nil, err
	}
	summary, err := s.answerSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, fmt.Errorf("%w: roadmap generation is disabled", ErrGeneration)
	}

	prompt := roadmap.BuildPrompt(roadmap.PromptInput{
		Title:       firstNonBlank(req.Title, goal.Title),
		Category:    firstNonBlank(req.Category, goal.Category),
		Description: firstNonBlank(req.Description, goal.Description),
		Answers:     summary,
		Profile:     profile.Dimensions,
	})

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRoadmap,
		SystemPrompt: roadmap.SystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	fields["model"] = resp.Model
	fields["latency_ms"] = resp.LatencyMs

	parsed := roadmap.Parse(resp.Text)
	if missing := roadmap.Missing(parsed); len(missing) > 0 {
		s.logger.WarnContext(ctx, "roadmap_parse_incomplete",
			"goal_id", goal.ID,
			"missing", strings.Join(missing, ","),
			"response_chars", len(resp.Text),
		)
		fields["missing_fields"] = len(missing)
	}

	err = s.uow.WithinTx(db.WithTxName(ctx, "generate-roadmap"), func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txStats := repository.NewSQLiteStatsRepo(tx)

		// Reload inside the transaction; the goal may have changed while the
		// generator was running.
		g, err := ownedGoal(ctx, txGoals, userID, req.GoalID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		first := g.ReplaceRoadmap(parsed, now)
		if err := txGoals.Update(ctx, g); err != nil {
			return err
		}
		goal = g
		if !first {
			return nil
		}

		stats, err := txStats.Get(ctx, userID)
		if err != nil {
			return err
		}
		if badges := gamification.AwardRoadmapGenerated(stats, now); len(badges) > 0 {
			fields["new_badges"] = badgeCodes(badges)
		}
		fields["points_awarded"] = gamification.PointsRoadmapGenerated
		return txStats.Save(ctx, stats)
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// answerSummary resolves the user's stored answers to dimension values.
func (s *roadmapService) answerSummary(ctx context.Context, userID string) (domain.DimensionMap, error) {
	stored, err := s.answers.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, fmt.Errorf("%w: complete your assessment first", ErrPrerequisite)
	}
	qs, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make(assessment.Catalog, len(qs))
	for _, q := range qs {
		catalog[q.QuestionID] = q
	}

	// Answers to questions no longer in the catalog are skipped.
	scored := make([]assessment.ScoredAnswer, 0, len(stored))
	for _, a := range stored {
		if q, ok := catalog[a.QuestionID]; ok {
			scored = append(scored, assessment.ScoredAnswer{Question: q, Letter: a.Letter})
		}
	}
	return assessment.Summarize(scored), nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
