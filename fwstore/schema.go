package fwstore

import (
	"database/sql"
	"fmt"
)

// schemaDDL creates every synchronized table plus the engine's own
// sync_metadata table. Foreign keys are declared only inside the
// programme, workout and template hierarchies; the sync engine's phase
// ordering guarantees parents are written before children.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		category      TEXT NOT NULL DEFAULT '',
		muscle_group  TEXT NOT NULL DEFAULT '',
		equipment     TEXT NOT NULL DEFAULT '',
		instructions  TEXT NOT NULL DEFAULT '',
		updated_at    TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS custom_exercises (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		name          TEXT NOT NULL,
		category      TEXT NOT NULL DEFAULT '',
		muscle_group  TEXT NOT NULL DEFAULT '',
		equipment     TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS programmes (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		name           TEXT NOT NULL,
		duration_weeks INTEGER NOT NULL DEFAULT 0,
		active         INTEGER NOT NULL DEFAULT 0,
		started_at     TIMESTAMP,
		created_at     TIMESTAMP NOT NULL,
		updated_at     TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS programme_weeks (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		programme_id TEXT NOT NULL REFERENCES programmes(id),
		week_number  INTEGER NOT NULL,
		name         TEXT NOT NULL DEFAULT '',
		updated_at   TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS programme_workouts (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		programme_week_id TEXT NOT NULL REFERENCES programme_weeks(id),
		day_number        INTEGER NOT NULL,
		name              TEXT NOT NULL DEFAULT '',
		updated_at        TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS programme_progress (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		programme_id       TEXT NOT NULL REFERENCES programmes(id),
		current_week       INTEGER NOT NULL,
		current_day        INTEGER NOT NULL,
		completed_workouts INTEGER NOT NULL DEFAULT 0,
		updated_at         TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		name             TEXT NOT NULL DEFAULT '',
		notes            TEXT NOT NULL DEFAULT '',
		programme_id     TEXT,
		started_at       TIMESTAMP NOT NULL,
		completed_at     TIMESTAMP,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		updated_at       TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercise_logs (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		workout_id    TEXT NOT NULL REFERENCES workouts(id),
		exercise_id   TEXT NOT NULL,
		exercise_name TEXT NOT NULL DEFAULT '',
		order_index   INTEGER NOT NULL DEFAULT 0,
		notes         TEXT NOT NULL DEFAULT '',
		updated_at    TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS set_logs (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		exercise_log_id TEXT NOT NULL REFERENCES exercise_logs(id),
		set_number      INTEGER NOT NULL,
		weight          REAL NOT NULL DEFAULT 0,
		reps            INTEGER NOT NULL DEFAULT 0,
		rpe             REAL,
		completed       INTEGER NOT NULL DEFAULT 0,
		completed_at    TIMESTAMP,
		updated_at      TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS template_exercises (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		template_id TEXT NOT NULL REFERENCES templates(id),
		exercise_id TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		updated_at  TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS template_sets (
		id                   TEXT PRIMARY KEY,
		user_id              TEXT NOT NULL,
		template_exercise_id TEXT NOT NULL REFERENCES template_exercises(id),
		set_number           INTEGER NOT NULL,
		target_weight        REAL NOT NULL DEFAULT 0,
		target_reps          INTEGER NOT NULL DEFAULT 0,
		updated_at           TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercise_maxes (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		max_weight  REAL NOT NULL,
		recorded_at TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS personal_records (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		exercise_id   TEXT NOT NULL,
		record_type   TEXT NOT NULL,
		weight        REAL NOT NULL DEFAULT 0,
		reps          INTEGER NOT NULL DEFAULT 0,
		estimated_1rm REAL NOT NULL DEFAULT 0,
		achieved_at   TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercise_usage (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		exercise_id  TEXT NOT NULL,
		use_count    INTEGER NOT NULL DEFAULT 0,
		last_used_at TIMESTAMP NOT NULL,
		notes        TEXT,
		updated_at   TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS swap_history (
		id                   TEXT PRIMARY KEY,
		user_id              TEXT NOT NULL,
		workout_id           TEXT NOT NULL,
		original_exercise_id TEXT NOT NULL,
		new_exercise_id      TEXT NOT NULL,
		swapped_at           TIMESTAMP NOT NULL,
		updated_at           TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS performance_tracking (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		exercise_id    TEXT NOT NULL,
		date           TIMESTAMP NOT NULL,
		total_volume   REAL NOT NULL DEFAULT 0,
		top_set_weight REAL NOT NULL DEFAULT 0,
		updated_at     TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS global_exercise_progress (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		exercise_id        TEXT NOT NULL,
		trend              TEXT NOT NULL DEFAULT '',
		last_calculated_at TIMESTAMP NOT NULL,
		updated_at         TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS training_analyses (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		period_start TIMESTAMP NOT NULL,
		period_end   TIMESTAMP NOT NULL,
		summary      TEXT NOT NULL DEFAULT '',
		generated_at TIMESTAMP NOT NULL,
		updated_at   TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS parse_requests (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		raw_text     TEXT NOT NULL,
		status       TEXT NOT NULL,
		result_json  TEXT,
		requested_at TIMESTAMP NOT NULL,
		updated_at   TIMESTAMP NOT NULL
	)`,

	// Engine-owned baseline metadata, one row per (owner, installation, scope).
	`CREATE TABLE IF NOT EXISTS sync_metadata (
		user_id         TEXT NOT NULL,
		installation_id TEXT NOT NULL,
		scope           TEXT NOT NULL,
		last_sync_at    TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, installation_id, scope)
	)`,
}

func initializeSchema(db *sql.DB) error {
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
