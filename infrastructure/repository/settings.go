package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pulsefin/pulse-api/infrastructure/database/postgres"
	"github.com/pulsefin/pulse-api/internal/domain"
)

// The settings table holds a single row per installation.
const settingsRowID = 1

type SettingsRepository interface {
	Get() (*domain.Settings, error)
	Save(settings *domain.Settings) error
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// Get returns the stored settings, or the defaults when nothing has been
// saved yet.
func (r *settingsRepository) Get() (*domain.Settings, error) {
	query, args, err := squirrel.
		Select("s.company_name, s.industry, s.currency, s.report_api_key, s.thresholds").
		From("settings s").
		Where(squirrel.Eq{"s.id": settingsRowID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	settings := &domain.Settings{}
	var thresholdsJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&settings.CompanyName,
		&settings.Industry,
		&settings.Currency,
		&settings.ReportAPIKey,
		&thresholdsJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}

	if thresholdsJSON != nil {
		thresholds := domain.Thresholds{}
		if err := json.Unmarshal(thresholdsJSON, &thresholds); err != nil {
			return nil, fmt.Errorf("decoding thresholds JSON: %w", err)
		}
		settings.Thresholds = thresholds
	}

	return settings, nil
}

func (r *settingsRepository) Save(settings *domain.Settings) error {
	thresholdsJSON, err := json.Marshal(settings.EffectiveThresholds())
	if err != nil {
		return fmt.Errorf("encoding thresholds to JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("settings").
		Columns("id", "company_name", "industry", "currency", "report_api_key", "thresholds").
		Values(
			settingsRowID,
			settings.CompanyName,
			settings.Industry,
			settings.Currency,
			settings.ReportAPIKey,
			thresholdsJSON,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				company_name = EXCLUDED.company_name,
				industry = EXCLUDED.industry,
				currency = EXCLUDED.currency,
				report_api_key = EXCLUDED.report_api_key,
				thresholds = EXCLUDED.thresholds,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
