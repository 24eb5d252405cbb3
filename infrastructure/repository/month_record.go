package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pulsefin/pulse-api/infrastructure/database/postgres"
	"github.com/pulsefin/pulse-api/internal/domain"
)

const (
	monthRecordsTable = "month_records mr"

	monthRecordColumns = `mr.period, mr.revenue, mr.revenue_plan, mr.material_expense, mr.personnel_expense,
		mr.other_expense, mr.depreciation, mr.interest_expense, mr.cash, mr.short_term_receivables,
		mr.inventory, mr.short_term_liabilities, mr.long_term_liabilities, mr.equity, mr.fixed_assets,
		mr.revenue_segment_a, mr.revenue_segment_b, mr.revenue_segment_c`
)

type MonthRecordRepository interface {
	GetAll() ([]*domain.RawMonthRecord, error)
	GetByPeriod(period string) (*domain.RawMonthRecord, error)
	GetRange(fromPeriod, toPeriod string) ([]*domain.RawMonthRecord, error)
	SaveOrUpdate(record *domain.RawMonthRecord) error
	ReplaceAll(records []*domain.RawMonthRecord) error
	Delete(period string) (bool, error)
	GetPeriods() ([]string, error)
}

type monthRecordRepository struct {
	conn *postgres.Connection
}

func NewMonthRecordRepository(conn *postgres.Connection) MonthRecordRepository {
	return &monthRecordRepository{
		conn: conn,
	}
}

// GetAll returns the full dataset in chronological order.
func (r *monthRecordRepository) GetAll() ([]*domain.RawMonthRecord, error) {
	query, args, err := squirrel.
		Select(monthRecordColumns).
		From(monthRecordsTable).
		OrderBy("mr.period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *monthRecordRepository) GetByPeriod(period string) (*domain.RawMonthRecord, error) {
	query, args, err := squirrel.
		Select(monthRecordColumns).
		From(monthRecordsTable).
		Where(squirrel.Eq{"mr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record, err := scanMonthRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning month record: %w", err)
	}

	return record, nil
}

// GetRange returns the records whose period falls inside the inclusive
// YYYY-MM range. Lexicographic comparison on the period key is
// chronological by construction.
func (r *monthRecordRepository) GetRange(fromPeriod, toPeriod string) ([]*domain.RawMonthRecord, error) {
	builder := squirrel.
		Select(monthRecordColumns).
		From(monthRecordsTable).
		OrderBy("mr.period ASC").
		PlaceholderFormat(squirrel.Dollar)

	if fromPeriod != "" {
		builder = builder.Where(squirrel.GtOrEq{"mr.period": fromPeriod})
	}
	if toPeriod != "" {
		builder = builder.Where(squirrel.LtOrEq{"mr.period": toPeriod})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.queryRecords(query, args...)
}

func (r *monthRecordRepository) SaveOrUpdate(record *domain.RawMonthRecord) error {
	query := insertMonthRecordBuilder().
		Values(monthRecordValues(record)...).
		Suffix(monthRecordUpsertSuffix)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

// ReplaceAll swaps the entire dataset in one transaction, as produced by a
// fresh file import.
func (r *monthRecordRepository) ReplaceAll(records []*domain.RawMonthRecord) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM month_records"); err != nil {
			return fmt.Errorf("clearing month records: %w", err)
		}

		for _, record := range records {
			query := insertMonthRecordBuilder().Values(monthRecordValues(record)...)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("building query: %w", err)
			}

			if _, err := tx.Exec(sqlQuery, args...); err != nil {
				return fmt.Errorf("inserting record %s: %w", record.Period, err)
			}
		}

		return nil
	})
}

func (r *monthRecordRepository) Delete(period string) (bool, error) {
	query, args, err := squirrel.
		Delete("month_records").
		Where(squirrel.Eq{"period": period}).
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

// GetPeriods returns every stored period key in chronological order.
func (r *monthRecordRepository) GetPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("period").
		From("month_records").
		OrderBy("period ASC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("scanning period: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return periods, nil
}

func (r *monthRecordRepository) queryRecords(query string, args ...interface{}) ([]*domain.RawMonthRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RawMonthRecord, 0)
	for rows.Next() {
		record, err := scanMonthRecordRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning month records: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return records, nil
}

const monthRecordUpsertSuffix = `
	ON CONFLICT (period) DO UPDATE SET
		revenue = EXCLUDED.revenue,
		revenue_plan = EXCLUDED.revenue_plan,
		material_expense = EXCLUDED.material_expense,
		personnel_expense = EXCLUDED.personnel_expense,
		other_expense = EXCLUDED.other_expense,
		depreciation = EXCLUDED.depreciation,
		interest_expense = EXCLUDED.interest_expense,
		cash = EXCLUDED.cash,
		short_term_receivables = EXCLUDED.short_term_receivables,
		inventory = EXCLUDED.inventory,
		short_term_liabilities = EXCLUDED.short_term_liabilities,
		long_term_liabilities = EXCLUDED.long_term_liabilities,
		equity = EXCLUDED.equity,
		fixed_assets = EXCLUDED.fixed_assets,
		revenue_segment_a = EXCLUDED.revenue_segment_a,
		revenue_segment_b = EXCLUDED.revenue_segment_b,
		revenue_segment_c = EXCLUDED.revenue_segment_c,
		updated_at = NOW()
`

func insertMonthRecordBuilder() squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert("month_records").
		Columns(
			"period", "revenue", "revenue_plan", "material_expense", "personnel_expense",
			"other_expense", "depreciation", "interest_expense", "cash", "short_term_receivables",
			"inventory", "short_term_liabilities", "long_term_liabilities", "equity", "fixed_assets",
			"revenue_segment_a", "revenue_segment_b", "revenue_segment_c",
		).
		PlaceholderFormat(squirrel.Dollar)
}

func monthRecordValues(record *domain.RawMonthRecord) []interface{} {
	return []interface{}{
		record.Period,
		record.Revenue,
		record.RevenuePlan,
		record.MaterialExpense,
		record.PersonnelExpense,
		record.OtherExpense,
		record.Depreciation,
		record.InterestExpense,
		record.Cash,
		record.ShortTermReceivables,
		record.Inventory,
		record.ShortTermLiabilities,
		record.LongTermLiabilities,
		record.Equity,
		record.FixedAssets,
		record.RevenueSegmentA,
		record.RevenueSegmentB,
		record.RevenueSegmentC,
	}
}

func scanMonthRecord(row *sql.Row) (*domain.RawMonthRecord, error) {
	record := &domain.RawMonthRecord{}
	err := row.Scan(monthRecordFields(record)...)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func scanMonthRecordRows(rows *sql.Rows) (*domain.RawMonthRecord, error) {
	record := &domain.RawMonthRecord{}
	err := rows.Scan(monthRecordFields(record)...)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func monthRecordFields(record *domain.RawMonthRecord) []interface{} {
	return []interface{}{
		&record.Period,
		&record.Revenue,
		&record.RevenuePlan,
		&record.MaterialExpense,
		&record.PersonnelExpense,
		&record.OtherExpense,
		&record.Depreciation,
		&record.InterestExpense,
		&record.Cash,
		&record.ShortTermReceivables,
		&record.Inventory,
		&record.ShortTermLiabilities,
		&record.LongTermLiabilities,
		&record.Equity,
		&record.FixedAssets,
		&record.RevenueSegmentA,
		&record.RevenueSegmentB,
		&record.RevenueSegmentC,
	}
}
