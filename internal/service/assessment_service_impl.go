package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/assessment"
	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
)

type assessmentService struct {
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewAssessmentService(
	questions repository.QuestionRepo,
	answers repository.AnswerRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AssessmentService {
	return &assessmentService{
		questions: questions,
		answers:   answers,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *assessmentService) Questions(ctx context.Context) ([]domain.AssessmentQuestion, error) {
	qs, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AssessmentQuestion, len(qs))
	for i, q := range qs {
		out[i] = *q
	}
	return out, nil
}

func (s *assessmentService) Answers(ctx context.Context, userID string) ([]domain.AssessmentAnswer, error) {
	return s.answers.ListByUser(ctx, userID)
}

func (s *assessmentService) Submit(ctx context.Context, userID string, inputs []AnswerInput) (profile *domain.PersonalityProfile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "answers": len(inputs)}
	defer observe(ctx, s.observer, "submit-assessment", startedAt, fields, &err)

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one answer is required", ErrInvalidInput)
	}
	var badLetters []string
	subs := make([]assessment.Submission, len(inputs))
	for i, in := range inputs {
		if !in.Letter.Valid() {
			badLetters = append(badLetters, strconv.Itoa(in.QuestionID))
		}
		subs[i] = assessment.Submission{QuestionID: in.QuestionID, Letter: in.Letter}
	}
	if len(badLetters) > 0 {
		return nil, fmt.Errorf("%w: answers must be one of a, b, c, d (questions %s)",
			ErrInvalidInput, strings.Join(badLetters, ", "))
	}

	err = s.uow.WithinTx(db.WithTxName(ctx, "submit-assessment"), func(ctx context.Context, tx db.DBTX) error {
		txQuestions := repository.NewSQLiteQuestionRepo(tx)
		txAnswers := repository.NewSQLiteAnswerRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		qs, err := txQuestions.List(ctx)
		if err != nil {
			return err
		}
		catalog := make(assessment.Catalog, len(qs))
		for _, q := range qs {
			catalog[q.QuestionID] = q
		}

		scored, err := assessment.ResolveAnswers(catalog, subs)
		if err != nil {
			if errors.Is(err, assessment.ErrUnknownQuestion) {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			return err
		}

		now := time.Now().UTC()
		stored := make([]domain.AssessmentAnswer, len(subs))
		for i, sub := range subs {
			stored[i] = domain.AssessmentAnswer{
				UserID:     userID,
				QuestionID: sub.QuestionID,
				Letter:     sub.Letter,
				CreatedAt:  now,
			}
		}
		if err := txAnswers.ReplaceAll(ctx, userID, stored); err != nil {
			return err
		}

		mapping := assessment.MapAnswers(scored)
		existing, err := txProfiles.Get(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			profile = domain.NewPersonalityProfile(userID, mapping, now)
		case err != nil:
			return err
		default:
			existing.ApplyPatch(mapping, now)
			profile = existing
		}
		fields["dimensions"] = len(profile.Dimensions)
		return txProfiles.Upsert(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
