package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database. Each
// dimension is stored in a column of the same name; "" means unset.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

var (
	dimensionColumns = func() string {
		cols := make([]string, len(domain.AllDimensions))
		for i, d := range domain.AllDimensions {
			cols[i] = string(d)
		}
		return strings.Join(cols, ", ")
	}()

	upsertProfileQuery = func() string {
		n := len(domain.AllDimensions)
		sets := make([]string, 0, n+1)
		for _, d := range domain.AllDimensions {
			sets = append(sets, fmt.Sprintf("%s = excluded.%s", d, d))
		}
		sets = append(sets, "updated_at = excluded.updated_at")
		return `INSERT INTO personality_profiles (user_id, ` + dimensionColumns + `, created_at, updated_at)
		VALUES (?` + strings.Repeat(", ?", n+2) + `)
		ON CONFLICT(user_id) DO UPDATE SET ` + strings.Join(sets, ", ")
	}()
)

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.PersonalityProfile, error) {
	query := `SELECT ` + dimensionColumns + `, created_at, updated_at
		FROM personality_profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	values := make([]string, len(domain.AllDimensions))
	dest := make([]any, 0, len(values)+2)
	for i := range values {
		dest = append(dest, &values[i])
	}
	var createdAtStr, updatedAtStr string
	dest = append(dest, &createdAtStr, &updatedAtStr)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("personality profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning personality profile: %w", err)
	}

	p := &domain.PersonalityProfile{UserID: userID, Dimensions: make(domain.DimensionMap)}
	for i, d := range domain.AllDimensions {
		if values[i] != "" {
			p.Dimensions[d] = values[i]
		}
	}
	var err error
	if p.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.PersonalityProfile) error {
	args := make([]any, 0, len(domain.AllDimensions)+3)
	args = append(args, p.UserID)
	for _, d := range domain.AllDimensions {
		args = append(args, p.Get(d))
	}
	args = append(args, formatTime(p.CreatedAt), formatTime(p.UpdatedAt))

	if _, err := r.db.ExecContext(ctx, upsertProfileQuery, args...); err != nil {
		return fmt.Errorf("upserting personality profile: %w", err)
	}
	return nil
}
