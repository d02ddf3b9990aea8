package dbrepo

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBRepository contains all individual repositories
type DBRepository struct {
	UserRepo     *UserRepo
	CustomerRepo *CustomerRepo
	EntryRepo    *EntryRepo
	PaymentRepo  *PaymentRepo
	RateRepo     *RateRepo
}

// NewDBRepository initializes all repositories with a shared connection pool
func NewDBRepository(db *pgxpool.Pool) *DBRepository {
	return &DBRepository{
		UserRepo:     NewUserRepo(db),
		CustomerRepo: NewCustomerRepo(db),
		EntryRepo:    NewEntryRepo(db),
		PaymentRepo:  NewPaymentRepo(db),
		RateRepo:     NewRateRepo(db),
	}
}
