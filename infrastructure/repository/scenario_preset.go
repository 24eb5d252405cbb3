package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pulsefin/pulse-api/infrastructure/database/postgres"
	"github.com/pulsefin/pulse-api/internal/domain"
)

type ScenarioPresetRepository interface {
	GetAll() ([]domain.ScenarioPreset, error)
	GetByKey(key string) (*domain.ScenarioPreset, error)
	SaveOrUpdate(preset domain.ScenarioPreset) error
	Rename(key, label string) (bool, error)
	DeleteAll() error
}

type scenarioPresetRepository struct {
	conn *postgres.Connection
}

func NewScenarioPresetRepository(conn *postgres.Connection) ScenarioPresetRepository {
	return &scenarioPresetRepository{
		conn: conn,
	}
}

func (r *scenarioPresetRepository) GetAll() ([]domain.ScenarioPreset, error) {
	query, args, err := squirrel.
		Select("sp.key, sp.label, sp.delta, sp.built_in").
		From("scenario_presets sp").
		OrderBy("sp.built_in DESC, sp.key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	presets := make([]domain.ScenarioPreset, 0)
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning scenario preset: %w", err)
		}
		presets = append(presets, *preset)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return presets, nil
}

func (r *scenarioPresetRepository) GetByKey(key string) (*domain.ScenarioPreset, error) {
	query, args, err := squirrel.
		Select("sp.key, sp.label, sp.delta, sp.built_in").
		From("scenario_presets sp").
		Where(squirrel.Eq{"sp.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("iterating rows: %w", err)
		}
		return nil, nil
	}

	preset, err := scanPreset(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning scenario preset: %w", err)
	}

	return preset, nil
}

func (r *scenarioPresetRepository) SaveOrUpdate(preset domain.ScenarioPreset) error {
	deltaJSON, err := json.Marshal(preset.Delta)
	if err != nil {
		return fmt.Errorf("encoding delta to JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("scenario_presets").
		Columns("key", "label", "delta", "built_in").
		Values(preset.Key, preset.Label, deltaJSON, preset.BuiltIn).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				label = EXCLUDED.label,
				delta = EXCLUDED.delta,
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

func (r *scenarioPresetRepository) Rename(key, label string) (bool, error) {
	query, args, err := squirrel.
		Update("scenario_presets").
		Set("label", label).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("executing query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}

	return affected > 0, nil
}

// DeleteAll wipes the preset table; the simulating service reseeds the
// built-ins afterwards.
func (r *scenarioPresetRepository) DeleteAll() error {
	if _, err := r.conn.Exec("DELETE FROM scenario_presets"); err != nil {
		return fmt.Errorf("executing query: %w", err)
	}
	return nil
}

func scanPreset(rows *sql.Rows) (*domain.ScenarioPreset, error) {
	preset := &domain.ScenarioPreset{}
	var deltaJSON []byte

	err := rows.Scan(
		&preset.Key,
		&preset.Label,
		&deltaJSON,
		&preset.BuiltIn,
	)
	if err != nil {
		return nil, err
	}

	if deltaJSON != nil {
		if err := json.Unmarshal(deltaJSON, &preset.Delta); err != nil {
			return nil, fmt.Errorf("decoding delta JSON: %w", err)
		}
	}

	return preset, nil
}
