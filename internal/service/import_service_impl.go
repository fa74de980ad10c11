package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/importer"
	"github.com/alexanderramin/pathwise/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, userID string, schema *importer.ImportSchema) (plan *importer.Plan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID}
	defer observe(ctx, s.observer, "import-plan", startedAt, fields, &err)

	if schema == nil {
		return nil, fmt.Errorf("%w: empty plan", ErrInvalidInput)
	}
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["errors"] = len(errs)
		return nil, invalid(errors.Join(errs...))
	}

	plan, err = importer.Convert(schema, userID, startedAt)
	if err != nil {
		return nil, invalid(err)
	}

	err = s.uow.WithinTx(db.WithTxName(ctx, "import-plan"), func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txSteps := repository.NewSQLiteStepRepo(tx)
		txResources := repository.NewSQLiteResourceRepo(tx)

		if err := txGoals.Create(ctx, plan.Goal); err != nil {
			return fmt.Errorf("creating goal: %w", err)
		}
		for _, st := range plan.Steps {
			if err := txSteps.Create(ctx, st); err != nil {
				return fmt.Errorf("creating step %q: %w", st.Text, err)
			}
		}
		for _, r := range plan.Resources {
			if err := txResources.Create(ctx, r); err != nil {
				return fmt.Errorf("creating resource %q: %w", r.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["goal_id"] = plan.Goal.ID
	fields["steps"] = len(plan.Steps)
	fields["resources"] = len(plan.Resources)
	return plan, nil
}
