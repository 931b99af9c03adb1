package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for daily cash ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const ledgerReturning = `
	RETURNING ledger_id, outlet_id, date, opening_balance, expenses, expenses_note,
		user_id, created_at, created_by, last_updated_at, last_updated_by`

// scanLedger reads one ledger row, decoding the jsonb note log.
func scanLedger(row pgx.Row) (*domain.DailyLedger, error) {
	var ledger domain.DailyLedger
	var noteJSON []byte
	err := row.Scan(
		&ledger.LedgerID,
		&ledger.OutletID,
		&ledger.Date,
		&ledger.OpeningBalance,
		&ledger.Expenses,
		&noteJSON,
		&ledger.UserID,
		&ledger.CreatedAt,
		&ledger.CreatedBy,
		&ledger.LastUpdatedAt,
		&ledger.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if len(noteJSON) > 0 {
		if err := json.Unmarshal(noteJSON, &ledger.ExpensesNote); err != nil {
			return nil, fmt.Errorf("failed to decode expense notes for ledger %s: %w", ledger.LedgerID, err)
		}
	}
	return &ledger, nil
}

// UpsertOpeningBalance creates the (outlet, date) row or overwrites its
// opening balance. The conflict target serializes concurrent writers, so
// the last statement to commit wins.
func (r *PgxLedgerRepository) UpsertOpeningBalance(ctx context.Context, outletID string, date time.Time, amount int64, actor string, now time.Time) (*domain.DailyLedger, error) {
	query := `
		INSERT INTO daily_ledgers (
			ledger_id, outlet_id, date, opening_balance, expenses, expenses_note,
			user_id, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, 0, '[]'::jsonb, $5, $6, $5, $6, $5)
		ON CONFLICT (outlet_id, date) DO UPDATE SET
			opening_balance = EXCLUDED.opening_balance,
			user_id = EXCLUDED.user_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by` + ledgerReturning + `;`

	ledger, err := scanLedger(r.Pool.QueryRow(ctx, query, uuid.NewString(), outletID, date, amount, actor, now))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert opening balance for outlet %s on %s: %w", outletID, date.Format(domain.DateFormat), err)
	}
	return ledger, nil
}

// AppendExpense increments the day's expenses and appends one note entry
// in a single statement, creating the row with a zero opening balance when
// it is the first write of the day.
func (r *PgxLedgerRepository) AppendExpense(ctx context.Context, outletID string, date time.Time, amount int64, note domain.ExpenseNoteEntry, actor string, now time.Time) (*domain.DailyLedger, error) {
	noteJSON, err := json.Marshal(note)
	if err != nil {
		return nil, fmt.Errorf("failed to encode expense note: %w", err)
	}

	query := `
		INSERT INTO daily_ledgers (
			ledger_id, outlet_id, date, opening_balance, expenses, expenses_note,
			user_id, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, 0, $4, jsonb_build_array($5::jsonb), $6, $7, $6, $7, $6)
		ON CONFLICT (outlet_id, date) DO UPDATE SET
			expenses = daily_ledgers.expenses + EXCLUDED.expenses,
			expenses_note = COALESCE(daily_ledgers.expenses_note, '[]'::jsonb) || EXCLUDED.expenses_note,
			user_id = EXCLUDED.user_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by` + ledgerReturning + `;`

	ledger, err := scanLedger(r.Pool.QueryRow(ctx, query, uuid.NewString(), outletID, date, amount, noteJSON, actor, now))
	if err != nil {
		return nil, fmt.Errorf("failed to append expense for outlet %s on %s: %w", outletID, date.Format(domain.DateFormat), err)
	}
	return ledger, nil
}

// FindEntry retrieves the ledger row for one outlet and day.
func (r *PgxLedgerRepository) FindEntry(ctx context.Context, outletID string, date time.Time) (*domain.DailyLedger, error) {
	query := `
		SELECT ledger_id, outlet_id, date, opening_balance, expenses, expenses_note,
			user_id, created_at, created_by, last_updated_at, last_updated_by
		FROM daily_ledgers
		WHERE outlet_id = $1 AND date = $2;
	`
	ledger, err := scanLedger(r.Pool.QueryRow(ctx, query, outletID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry for outlet %s on %s: %w", outletID, date.Format(domain.DateFormat), err)
	}
	return ledger, nil
}

// SumRange totals opening balances and expenses over all rows in the range.
func (r *PgxLedgerRepository) SumRange(ctx context.Context, start, end time.Time, outletID string) (domain.LedgerTotals, error) {
	query := `
		SELECT COALESCE(SUM(opening_balance), 0), COALESCE(SUM(expenses), 0)
		FROM daily_ledgers
		WHERE date >= $1 AND date <= $2
	`
	args := []any{start, end}
	if outletID != "" {
		query += ` AND outlet_id = $3`
		args = append(args, outletID)
	}

	var totals domain.LedgerTotals
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&totals.OpeningBalance, &totals.Expenses)
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("failed to sum ledger range: %w", err)
	}
	return totals, nil
}

// SumByDay totals opening balances and expenses grouped by calendar day.
func (r *PgxLedgerRepository) SumByDay(ctx context.Context, start, end time.Time, outletID string) ([]domain.DayLedgerTotals, error) {
	query := `
		SELECT date, COALESCE(SUM(opening_balance), 0) AS opening_balance, COALESCE(SUM(expenses), 0) AS expenses
		FROM daily_ledgers
		WHERE date >= $1 AND date <= $2
	`
	args := []any{start, end}
	if outletID != "" {
		query += ` AND outlet_id = $3`
		args = append(args, outletID)
	}
	query += ` GROUP BY date ORDER BY date;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger day totals: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.DayLedgerTotals])
	if err != nil {
		return nil, fmt.Errorf("failed to collect ledger day totals: %w", err)
	}
	return totals, nil
}
