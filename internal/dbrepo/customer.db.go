package dbrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// ============================== Customer Repository ==============================
type CustomerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// 1. CreateCustomer adds a new customer to the database.
func (s *CustomerRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (sl_no, name, phone, village)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;`

	err := s.db.QueryRow(ctx, query,
		customer.SlNo,
		customer.Name,
		customer.Phone,
		customer.Village,
	).Scan(
		&customer.ID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "customers_sl_no_key" {
				return errors.New("this serial number is already assigned to another customer")
			}
		}
		return fmt.Errorf("error creating customer: %w", err)
	}
	return nil
}

// 2. UpdateCustomer updates a customer's basic information.
func (s *CustomerRepo) UpdateCustomer(ctx context.Context, customer *models.Customer) (*time.Time, error) {
	query := `
		UPDATE customers
		SET sl_no = $1, name = $2, phone = $3, village = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at;`

	var updatedAt time.Time
	err := s.db.QueryRow(ctx, query,
		customer.SlNo, customer.Name, customer.Phone, customer.Village,
		customer.ID,
	).Scan(&updatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "customers_sl_no_key" {
				return nil, errors.New("this serial number is already assigned to another customer")
			}
		}
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return &updatedAt, nil
}

// 3. DeleteCustomer removes a customer that has no entries or payments.
func (s *CustomerRepo) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := s.db.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errors.New("customer still has entries or payments and cannot be deleted")
		}
		return fmt.Errorf("error deleting customer: %w", err)
	}
	if res.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// 4. GetCustomerByID
func (s *CustomerRepo) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `
		SELECT id, sl_no, name, phone, village, created_at, updated_at
		FROM customers
		WHERE id = $1;`

	c := &models.Customer{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.SlNo, &c.Name, &c.Phone, &c.Village,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching customer: %w", err)
	}
	return c, nil
}

// 5. GetCustomers returns every customer ordered by serial number.
// The serial is the canonical display and sort key.
func (s *CustomerRepo) GetCustomers(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT id, sl_no, name, phone, village, created_at, updated_at
		FROM customers
		ORDER BY sl_no ASC;`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching customers: %w", err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(
			&c.ID, &c.SlNo, &c.Name, &c.Phone, &c.Village,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning customer row: %w", err)
		}
		customers = append(customers, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}
