package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SettingsRepository guards the single settings row (id = 1). The upsert keeps
// concurrent saves last-write-wins at the row level instead of corrupting a
// shared file.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}

type settingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingsRepository(db database.PgxIface, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "settings")),
	}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	query := `SELECT data, updated_at FROM settings WHERE id = 1`

	var (
		data     []byte
		settings entity.Settings
	)
	err := r.db.QueryRow(ctx, query).Scan(&data, &settings.UpdatedAt)

	if err == pgx.ErrNoRows {
		defaults := entity.DefaultSettings()
		if err := r.Save(ctx, &defaults); err != nil {
			return nil, err
		}
		return &defaults, nil
	}
	if err != nil {
		r.log.Error("Failed to get settings", zap.Error(err))
		return nil, fmt.Errorf("get settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		r.log.Error("Failed to decode settings", zap.Error(err))
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	query := `
		INSERT INTO settings (id, data, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, data); err != nil {
		r.log.Error("Failed to save settings", zap.Error(err))
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
