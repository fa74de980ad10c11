package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
)

// MaxDimensionValueLen bounds manually edited profile values.
const MaxDimensionValueLen = 50

// AttemptLimiter tracks failed attempts per user.
type AttemptLimiter interface {
	Allow(key string) bool
	Fail(key string)
	Reset(key string)
	RetryAfter(key string) time.Duration
}

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	limiter  AttemptLimiter
	observer UseCaseObserver
}

// NewProfileService creates a ProfileService. Failed edits count against
// limiter; a successful edit clears the user's count.
func NewProfileService(
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
	limiter AttemptLimiter,
	observers ...UseCaseObserver,
) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		limiter:  limiter,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.PersonalityProfile, error) {
	return s.profiles.Get(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID string, patch domain.DimensionMap) (profile *domain.PersonalityProfile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "fields": len(patch)}
	defer observe(ctx, s.observer, "update-profile", startedAt, fields, &err)

	if !s.limiter.Allow(userID) {
		wait := s.limiter.RetryAfter(userID).Round(time.Second)
		return nil, fmt.Errorf("%w: try again in %s", ErrRateLimited, wait)
	}

	if err = validatePatch(patch); err != nil {
		s.limiter.Fail(userID)
		return nil, err
	}

	err = s.uow.WithinTx(db.WithTxName(ctx, "update-profile"), func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		now := time.Now().UTC()

		existing, err := txProfiles.Get(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			profile = domain.NewPersonalityProfile(userID, patch, now)
		case err != nil:
			return err
		default:
			fields["changed"] = existing.ApplyPatch(patch, now)
			profile = existing
		}
		return txProfiles.Upsert(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	s.limiter.Reset(userID)
	return profile, nil
}

func validatePatch(patch domain.DimensionMap) error {
	var problems []string
	populated := 0
	for d, v := range patch {
		switch {
		case !d.IsKnown():
			problems = append(problems, fmt.Sprintf("unknown dimension %q", d))
		case len(v) > MaxDimensionValueLen:
			problems = append(problems, fmt.Sprintf("%s exceeds %d characters", d, MaxDimensionValueLen))
		case strings.TrimSpace(v) != "":
			populated++
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	if populated == 0 {
		return fmt.Errorf("%w: no profile fields to update", ErrInvalidInput)
	}
	return nil
}
