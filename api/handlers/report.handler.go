package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
	"github.com/ateet0254/mukesh-dairy-api/internal/milk"
	"github.com/ateet0254/mukesh-dairy-api/internal/models"
	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

// ReportHandler serves derived summaries. They are computed on demand
// from the stored entries and payments, never persisted.
type ReportHandler struct {
	DB       *dbrepo.DBRepository
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewReportHandler(db *dbrepo.DBRepository, infoLog *log.Logger, errorLog *log.Logger) *ReportHandler {
	return &ReportHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// -------------------- Daily Summary --------------------
// GET /entries/summary/daily?date=YYYY-MM-DD
func (h *ReportHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(milk.DateLayout, r.URL.Query().Get("date"))
	if err != nil {
		utils.BadRequest(w, errors.New("invalid date, expected YYYY-MM-DD"))
		return
	}

	entries, err := h.DB.EntryRepo.ListEntriesByDate(r.Context(), date)
	if err != nil {
		h.errorLog.Println("ERROR_01_DailySummary:", err)
		utils.ServerError(w, err)
		return
	}

	summary := milk.SummarizeDay(date, entries)

	resp := struct {
		Error   bool                 `json:"error"`
		Status  string               `json:"status"`
		Summary *models.DailySummary `json:"summary"`
	}{
		Error:   false,
		Status:  "success",
		Summary: summary,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Customer Period Summary --------------------
// GET /entries/customer-summary?customerId=&from=&to=
// Returns totals plus the entry and payment drill-down lists.
func (h *ReportHandler) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.URL.Query().Get("customerId"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid customerId"))
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		utils.BadRequest(w, err)
		return
	}

	customer, err := h.DB.CustomerRepo.GetCustomerByID(r.Context(), customerID)
	if err != nil {
		h.errorLog.Println("ERROR_01_CustomerSummary:", err)
		utils.ServerError(w, err)
		return
	}
	if customer == nil {
		utils.NotFound(w, "Customer not found")
		return
	}

	entries, err := h.DB.EntryRepo.ListEntries(r.Context(), from, to, &customerID, false)
	if err != nil {
		h.errorLog.Println("ERROR_02_CustomerSummary:", err)
		utils.ServerError(w, err)
		return
	}

	payments, err := h.DB.PaymentRepo.ListPayments(r.Context(), &customerID, &from, &to)
	if err != nil {
		h.errorLog.Println("ERROR_03_CustomerSummary:", err)
		utils.ServerError(w, err)
		return
	}

	statement := milk.SummarizeCustomerPeriod(customerID, from, to, entries, payments)

	resp := struct {
		Error     bool                    `json:"error"`
		Status    string                  `json:"status"`
		Customer  *models.Customer        `json:"customer"`
		Statement *models.PeriodStatement `json:"statement"`
	}{
		Error:     false,
		Status:    "success",
		Customer:  customer,
		Statement: statement,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- All Customers Period Summary --------------------
// GET /entries/period-summary?from=&to=
// One row per registered customer, zero rows included.
func (h *ReportHandler) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		utils.BadRequest(w, err)
		return
	}

	customers, err := h.DB.CustomerRepo.GetCustomers(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_01_PeriodSummary:", err)
		utils.ServerError(w, err)
		return
	}

	entries, err := h.DB.EntryRepo.ListEntries(r.Context(), from, to, nil, false)
	if err != nil {
		h.errorLog.Println("ERROR_02_PeriodSummary:", err)
		utils.ServerError(w, err)
		return
	}

	totals := milk.SummarizeAllCustomersPeriod(customers, entries)

	resp := struct {
		Error     bool                          `json:"error"`
		Status    string                        `json:"status"`
		From      string                        `json:"from"`
		To        string                        `json:"to"`
		Customers []*models.CustomerPeriodTotal `json:"customers"`
	}{
		Error:     false,
		Status:    "success",
		From:      from.Format(milk.DateLayout),
		To:        to.Format(milk.DateLayout),
		Customers: totals,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// parseDateRange reads the required from/to query params
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := time.Parse(milk.DateLayout, r.URL.Query().Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse(milk.DateLayout, r.URL.Query().Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date, expected YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to date must not be before from date")
	}
	return from, to, nil
}
