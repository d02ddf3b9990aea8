package api

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// validate is shared by all handlers; it is safe for concurrent use
var validate = validator.New()

type HandlerRepo struct {
	Auth     AuthHandler
	Customer CustomerHandler
	Entry    EntryHandler
	Payment  PaymentHandler
	Rate     RateHandler
	Report   *ReportHandler
}

func NewHandlerRepo(db *dbrepo.DBRepository, JWT models.JWTConfig, infoLog *log.Logger, errorLog *log.Logger) *HandlerRepo {
	return &HandlerRepo{
		Auth:     *NewAuthHandler(db, JWT, infoLog, errorLog),
		Customer: *NewCustomerHandler(db.CustomerRepo, infoLog, errorLog),
		Entry:    *NewEntryHandler(db.EntryRepo, db.RateRepo, infoLog, errorLog),
		Payment:  *NewPaymentHandler(db.PaymentRepo, infoLog, errorLog),
		Rate:     *NewRateHandler(db.RateRepo, infoLog, errorLog),
		Report:   NewReportHandler(db, infoLog, errorLog),
	}
}
