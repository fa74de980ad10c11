package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		email      TEXT NOT NULL DEFAULT '',
		pass_hash  TEXT NOT NULL DEFAULT '',
		is_admin   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assessment_questions (
		question_id INTEGER PRIMARY KEY,
		dimension   TEXT NOT NULL,
		text        TEXT NOT NULL,
		option_a    TEXT NOT NULL,
		value_a     TEXT NOT NULL,
		option_b    TEXT NOT NULL,
		value_b     TEXT NOT NULL,
		option_c    TEXT NOT NULL,
		value_c     TEXT NOT NULL,
		option_d    TEXT NOT NULL,
		value_d     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assessment_answers (
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id INTEGER NOT NULL REFERENCES assessment_questions(question_id),
		letter      TEXT NOT NULL CHECK(letter IN ('a','b','c','d')),
		created_at  TEXT NOT NULL,
		PRIMARY KEY (user_id, question_id)
	)`,

	`CREATE TABLE IF NOT EXISTS personality_profiles (
		user_id                TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		problem_solving        TEXT NOT NULL DEFAULT '',
		goal_energy            TEXT NOT NULL DEFAULT '',
		strengths              TEXT NOT NULL DEFAULT '',
		change_response        TEXT NOT NULL DEFAULT '',
		goal_motivation        TEXT NOT NULL DEFAULT '',
		daily_motivation       TEXT NOT NULL DEFAULT '',
		core_belief            TEXT NOT NULL DEFAULT '',
		time_structure         TEXT NOT NULL DEFAULT '',
		environment_preference TEXT NOT NULL DEFAULT '',
		progress_block         TEXT NOT NULL DEFAULT '',
		obstacle_type          TEXT NOT NULL DEFAULT '',
		future_focus           TEXT NOT NULL DEFAULT '',
		success_definition     TEXT NOT NULL DEFAULT '',
		project_style          TEXT NOT NULL DEFAULT '',
		support_type           TEXT NOT NULL DEFAULT '',
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title               TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		category            TEXT NOT NULL DEFAULT '',
		is_completed        INTEGER NOT NULL DEFAULT 0,
		completed_at        TEXT,
		milestone_start     TEXT NOT NULL DEFAULT '',
		milestone_3_months  TEXT NOT NULL DEFAULT '',
		milestone_6_months  TEXT NOT NULL DEFAULT '',
		milestone_9_months  TEXT NOT NULL DEFAULT '',
		milestone_12_months TEXT NOT NULL DEFAULT '',
		full_plan           TEXT NOT NULL DEFAULT '',
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id)`,

	`ALTER TABLE goals ADD COLUMN roadmap_generated_at TEXT`,

	`CREATE TABLE IF NOT EXISTS roadmap_steps (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		text        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		completed   INTEGER NOT NULL DEFAULT 0,
		due_date    TEXT,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_steps_goal ON roadmap_steps(goal_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		goal_id    TEXT REFERENCES goals(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		link       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resources_user ON resources(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_resources_goal ON resources(goal_id)`,

	`CREATE TABLE IF NOT EXISTS user_stats (
		user_id         TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		points          INTEGER NOT NULL DEFAULT 0,
		goals_completed INTEGER NOT NULL DEFAULT 0,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_badges (
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		code       TEXT NOT NULL,
		awarded_at TEXT NOT NULL,
		PRIMARY KEY (user_id, code)
	)`,
}
