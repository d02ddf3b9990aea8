package dbrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// ============================== Payment Repository ==============================
type PaymentRepo struct {
	db *pgxpool.Pool
}

func NewPaymentRepo(db *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = `
	p.id, p.customer_id, p.pay_date, p.amount, p.mode, p.receipt_no, p.note,
	c.id, c.sl_no, c.name,
	p.created_at, p.updated_at`

// CreatePayment inserts a payment. Payments carry no uniqueness
// constraint; a customer may be paid several times a day.
func (r *PaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (customer_id, pay_date, amount, mode, receipt_no, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at;`

	err := r.db.QueryRow(ctx, query,
		p.CustomerID,
		p.Date,
		p.Amount,
		p.Mode,
		p.ReceiptNo,
		p.Note,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating payment: %w", err)
	}
	return nil
}

// UpdatePayment rewrites a payment in place.
func (r *PaymentRepo) UpdatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		UPDATE payments
		SET customer_id = $1, pay_date = $2, amount = $3, mode = $4, note = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING receipt_no, updated_at;`

	err := r.db.QueryRow(ctx, query,
		p.CustomerID, p.Date, p.Amount, p.Mode, p.Note, p.ID,
	).Scan(&p.ReceiptNo, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		return fmt.Errorf("error updating payment: %w", err)
	}
	return nil
}

// DeletePayment removes a payment permanently.
func (r *PaymentRepo) DeletePayment(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("error deleting payment: %w", err)
	}
	if res.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetPaymentByID
func (r *PaymentRepo) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN customers c ON c.id = p.customer_id
		WHERE p.id = $1;`

	p, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching payment: %w", err)
	}
	return p, nil
}

// ListPayments returns payments, optionally restricted to a customer
// and an inclusive [from, to] date range, date ascending.
func (r *PaymentRepo) ListPayments(ctx context.Context, customerID *int64, from, to *time.Time) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN customers c ON c.id = p.customer_id
		WHERE 1=1`

	args := []interface{}{}
	argID := 1
	if customerID != nil {
		query += fmt.Sprintf(` AND p.customer_id = $%d`, argID)
		args = append(args, *customerID)
		argID++
	}
	if from != nil && to != nil {
		query += fmt.Sprintf(` AND p.pay_date BETWEEN $%d AND $%d`, argID, argID+1)
		args = append(args, *from, *to)
		argID += 2
	}
	query += ` ORDER BY p.pay_date ASC, p.id ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error fetching payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	var cust models.CustomerNameID

	err := row.Scan(
		&p.ID, &p.CustomerID, &p.Date, &p.Amount, &p.Mode, &p.ReceiptNo, &p.Note,
		&cust.ID, &cust.SlNo, &cust.Name,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Customer = &cust
	p.DateStr = p.Date.Format("2006-01-02")
	return &p, nil
}
