package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/ruleset"
)

// SQLiteRuleRepo stores versioned rule-config snapshots as JSON blobs.
// Exactly one version is active; Save appends a new version and flips
// the active flag.
type SQLiteRuleRepo struct {
	db db.DBTX
}

func NewSQLiteRuleRepo(conn db.DBTX) *SQLiteRuleRepo {
	return &SQLiteRuleRepo{db: conn}
}

// Active returns the active rule config, or the shipped defaults when no
// config has ever been saved.
func (r *SQLiteRuleRepo) Active(ctx context.Context) (ruleset.Config, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT config_json FROM rule_configs WHERE active = 1 ORDER BY version DESC LIMIT 1`)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return ruleset.Default(), nil
		}
		return ruleset.Config{}, fmt.Errorf("loading active rule config: %w", err)
	}

	var cfg ruleset.Config
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return ruleset.Config{}, fmt.Errorf("decoding rule config: %w", err)
	}
	return ruleset.Sanitize(cfg), nil
}

func (r *SQLiteRuleRepo) Save(ctx context.Context, cfg ruleset.Config) error {
	var maxVersion int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM rule_configs`).Scan(&maxVersion); err != nil {
		return fmt.Errorf("reading rule config version: %w", err)
	}
	cfg.Version = maxVersion + 1
	cfg.SavedAt = time.Now().UTC()

	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding rule config: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `UPDATE rule_configs SET active = 0`); err != nil {
		return fmt.Errorf("deactivating rule configs: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO rule_configs (version, saved_at, active, config_json) VALUES (?, ?, 1, ?)`,
		cfg.Version, cfg.SavedAt.Format(time.RFC3339), string(payload))
	if err != nil {
		return fmt.Errorf("saving rule config: %w", err)
	}
	return nil
}
