package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// ============================== Rate Chart Repository ==============================
// The rate chart is a small operator-managed table; resolution itself is
// a pure in-memory scan in internal/milk over the slabs fetched here.
type RateRepo struct {
	db *pgxpool.Pool
}

func NewRateRepo(db *pgxpool.Pool) *RateRepo {
	return &RateRepo{db: db}
}

// ListSlabs returns the whole rate chart, grouped by milk type then band.
func (r *RateRepo) ListSlabs(ctx context.Context) ([]*models.RateSlab, error) {
	query := `
		SELECT id, milk_type, fat_min, fat_max, snf_min, snf_max, rate, created_at, updated_at
		FROM rate_slabs
		ORDER BY milk_type ASC, fat_min ASC, snf_min ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching rate slabs: %w", err)
	}
	defer rows.Close()

	var slabs []*models.RateSlab
	for rows.Next() {
		var s models.RateSlab
		if err := rows.Scan(
			&s.ID, &s.MilkType, &s.FatMin, &s.FatMax, &s.SnfMin, &s.SnfMax, &s.Rate,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning rate slab: %w", err)
		}
		slabs = append(slabs, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate slab rows: %w", err)
	}
	return slabs, nil
}

// ListSlabsByMilkType narrows the chart for a single lookup.
func (r *RateRepo) ListSlabsByMilkType(ctx context.Context, milkType string) ([]*models.RateSlab, error) {
	query := `
		SELECT id, milk_type, fat_min, fat_max, snf_min, snf_max, rate, created_at, updated_at
		FROM rate_slabs
		WHERE milk_type = $1
		ORDER BY fat_min ASC, snf_min ASC;`

	rows, err := r.db.Query(ctx, query, milkType)
	if err != nil {
		return nil, fmt.Errorf("error fetching rate slabs: %w", err)
	}
	defer rows.Close()

	var slabs []*models.RateSlab
	for rows.Next() {
		var s models.RateSlab
		if err := rows.Scan(
			&s.ID, &s.MilkType, &s.FatMin, &s.FatMax, &s.SnfMin, &s.SnfMax, &s.Rate,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning rate slab: %w", err)
		}
		slabs = append(slabs, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate slab rows: %w", err)
	}
	return slabs, nil
}

// CreateSlab adds one band to the chart.
func (r *RateRepo) CreateSlab(ctx context.Context, s *models.RateSlab) error {
	query := `
		INSERT INTO rate_slabs (milk_type, fat_min, fat_max, snf_min, snf_max, rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at;`

	err := r.db.QueryRow(ctx, query,
		s.MilkType, s.FatMin, s.FatMax, s.SnfMin, s.SnfMax, s.Rate,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating rate slab: %w", err)
	}
	return nil
}

// DeleteSlab removes one band from the chart.
func (r *RateRepo) DeleteSlab(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM rate_slabs WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("error deleting rate slab: %w", err)
	}
	if res.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
