package dbrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// ============================== Entry Repository ==============================
type EntryRepo struct {
	db *pgxpool.Pool
}

func NewEntryRepo(db *pgxpool.Pool) *EntryRepo {
	return &EntryRepo{db: db}
}

const entryColumns = `
	e.id, e.customer_id, e.entry_date, e.shift, e.milk_type,
	e.quantity_l, e.fat, e.snf, e.rate, e.rate_source, e.amount, e.note,
	c.id, c.sl_no, c.name,
	e.created_at, e.updated_at`

// 1. CreateEntry inserts one milk delivery. The unique index on
// (customer_id, entry_date, shift) is the authority for the
// one-entry-per-shift invariant; a concurrent duplicate surfaces here as
// models.ErrConflict, never as a silent overwrite.
func (s *EntryRepo) CreateEntry(ctx context.Context, e *models.Entry) error {
	query := `
		INSERT INTO entries
		(customer_id, entry_date, shift, milk_type, quantity_l, fat, snf, rate, rate_source, amount, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;`

	err := s.db.QueryRow(ctx, query,
		e.CustomerID,
		e.Date,
		e.Shift,
		e.MilkType,
		e.QuantityL,
		nullDecimal(e.Fat),
		nullDecimal(e.Snf),
		e.Rate,
		e.RateSource,
		e.Amount,
		e.Note,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "entries_customer_date_shift_key" {
				return models.ErrConflict
			}
		}
		return fmt.Errorf("error creating entry: %w", err)
	}
	return nil
}

// 2. UpdateEntry rewrites an entry in place. Moving it onto another
// (customer, date, shift) that is already taken hits the same unique
// index and maps to models.ErrConflict.
func (s *EntryRepo) UpdateEntry(ctx context.Context, e *models.Entry) error {
	query := `
		UPDATE entries
		SET customer_id = $1, entry_date = $2, shift = $3, milk_type = $4,
		    quantity_l = $5, fat = $6, snf = $7, rate = $8, rate_source = $9,
		    amount = $10, note = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at;`

	err := s.db.QueryRow(ctx, query,
		e.CustomerID,
		e.Date,
		e.Shift,
		e.MilkType,
		e.QuantityL,
		nullDecimal(e.Fat),
		nullDecimal(e.Snf),
		e.Rate,
		e.RateSource,
		e.Amount,
		e.Note,
		e.ID,
	).Scan(&e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "entries_customer_date_shift_key" {
				return models.ErrConflict
			}
		}
		return fmt.Errorf("error updating entry: %w", err)
	}
	return nil
}

// 3. DeleteEntry removes an entry permanently.
func (s *EntryRepo) DeleteEntry(ctx context.Context, id int64) error {
	res, err := s.db.Exec(ctx, `DELETE FROM entries WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}
	if res.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// 4. GetEntryByID
func (s *EntryRepo) GetEntryByID(ctx context.Context, id int64) (*models.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries e
		JOIN customers c ON c.id = e.customer_id
		WHERE e.id = $1;`

	e, err := scanEntry(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching entry: %w", err)
	}
	return e, nil
}

// 5. ListEntries returns entries with entry_date in the inclusive range
// [from, to], optionally restricted to one customer. Default ordering is
// date then shift then customer serial; sortByCreation orders by insert
// time for the live "today's entries" listing.
func (s *EntryRepo) ListEntries(ctx context.Context, from, to time.Time, customerID *int64, sortByCreation bool) ([]*models.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries e
		JOIN customers c ON c.id = e.customer_id
		WHERE e.entry_date BETWEEN $1 AND $2`

	args := []interface{}{from, to}
	if customerID != nil {
		query += ` AND e.customer_id = $3`
		args = append(args, *customerID)
	}

	if sortByCreation {
		query += ` ORDER BY e.shift ASC, e.created_at ASC;`
	} else {
		query += ` ORDER BY e.entry_date ASC, e.shift ASC, c.sl_no ASC;`
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}

// ListEntriesByDate returns all entries of one calendar date.
func (s *EntryRepo) ListEntriesByDate(ctx context.Context, date time.Time) ([]*models.Entry, error) {
	return s.ListEntries(ctx, date, date, nil, false)
}

func scanEntry(row pgx.Row) (*models.Entry, error) {
	var e models.Entry
	var cust models.CustomerNameID
	var fat, snf decimal.NullDecimal

	err := row.Scan(
		&e.ID, &e.CustomerID, &e.Date, &e.Shift, &e.MilkType,
		&e.QuantityL, &fat, &snf, &e.Rate, &e.RateSource, &e.Amount, &e.Note,
		&cust.ID, &cust.SlNo, &cust.Name,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Fat = decimalPtr(fat)
	e.Snf = decimalPtr(snf)
	e.Customer = &cust
	e.DateStr = e.Date.Format("2006-01-02")
	return &e, nil
}

// nullDecimal converts an optional decimal into its SQL representation
func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}
