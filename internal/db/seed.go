package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// SeedQuestions inserts catalog questions that are not yet stored. Existing
// rows are left untouched, so re-running is a no-op.
func SeedQuestions(db *sql.DB, questions []domain.AssessmentQuestion) error {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range questions {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO assessment_questions
			 (question_id, dimension, text, option_a, value_a, option_b, value_b,
			  option_c, value_c, option_d, value_d)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			q.QuestionID, string(q.Dimension), q.Text,
			q.Options[0].Label, q.Options[0].Value,
			q.Options[1].Label, q.Options[1].Value,
			q.Options[2].Label, q.Options[2].Value,
			q.Options[3].Label, q.Options[3].Value,
		)
		if err != nil {
			return fmt.Errorf("seeding question %d: %w", q.QuestionID, err)
		}
	}
	return tx.Commit()
}
