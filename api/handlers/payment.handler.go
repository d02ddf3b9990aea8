package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
	"github.com/ateet0254/mukesh-dairy-api/internal/milk"
	"github.com/ateet0254/mukesh-dairy-api/internal/models"
	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

// PaymentHandler handles customer payment requests
type PaymentHandler struct {
	DB       *dbrepo.PaymentRepo
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewPaymentHandler(db *dbrepo.PaymentRepo, infoLog *log.Logger, errorLog *log.Logger) *PaymentHandler {
	return &PaymentHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

type paymentRequest struct {
	CustomerID int64           `json:"customerId" validate:"required,gt=0"`
	Date       string          `json:"date" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"`
	Note       *string         `json:"note"`
}

// newReceiptNo builds a short printable receipt number
func newReceiptNo() string {
	return "RCP-" + strings.ToUpper(uuid.NewString()[:8])
}

// -------------------- Add Payment --------------------
func (h *PaymentHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_AddPayment:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		h.errorLog.Println("ERROR_02_AddPayment:", err)
		utils.BadRequest(w, errors.New("customerId and date are required"))
		return
	}

	if req.Amount.IsNegative() {
		utils.BadRequest(w, errors.New("amount must not be negative"))
		return
	}

	date, err := time.Parse(milk.DateLayout, req.Date)
	if err != nil {
		utils.BadRequest(w, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date))
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = models.PaymentModeCash
	}

	payment := models.Payment{
		CustomerID: req.CustomerID,
		Date:       date,
		Amount:     req.Amount,
		Mode:       mode,
		ReceiptNo:  newReceiptNo(),
		Note:       req.Note,
	}

	if err := h.DB.CreatePayment(r.Context(), &payment); err != nil {
		h.errorLog.Println("ERROR_03_AddPayment:", err)
		utils.BadRequest(w, err)
		return
	}
	payment.DateStr = payment.Date.Format(milk.DateLayout)

	resp := struct {
		Error   bool            `json:"error"`
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Payment *models.Payment `json:"payment"`
	}{
		Error:   false,
		Status:  "success",
		Message: "Payment added successfully",
		Payment: &payment,
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

// -------------------- Update Payment --------------------
func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	var req paymentRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_UpdatePayment:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		h.errorLog.Println("ERROR_02_UpdatePayment:", err)
		utils.BadRequest(w, errors.New("customerId and date are required"))
		return
	}

	if req.Amount.IsNegative() {
		utils.BadRequest(w, errors.New("amount must not be negative"))
		return
	}

	date, err := time.Parse(milk.DateLayout, req.Date)
	if err != nil {
		utils.BadRequest(w, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date))
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = models.PaymentModeCash
	}

	payment := models.Payment{
		ID:         id,
		CustomerID: req.CustomerID,
		Date:       date,
		Amount:     req.Amount,
		Mode:       mode,
		Note:       req.Note,
	}

	if err := h.DB.UpdatePayment(r.Context(), &payment); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.NotFound(w, "Payment not found")
			return
		}
		h.errorLog.Println("ERROR_03_UpdatePayment:", err)
		utils.ServerError(w, err)
		return
	}
	payment.DateStr = payment.Date.Format(milk.DateLayout)

	resp := struct {
		Error   bool            `json:"error"`
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Payment *models.Payment `json:"payment"`
	}{
		Error:   false,
		Status:  "success",
		Message: "Payment updated successfully",
		Payment: &payment,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Get Payment By ID --------------------
func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	payment, err := h.DB.GetPaymentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.NotFound(w, "Payment not found")
			return
		}
		h.errorLog.Println("ERROR_01_GetPaymentByID:", err)
		utils.ServerError(w, err)
		return
	}

	resp := struct {
		Error   bool            `json:"error"`
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Payment *models.Payment `json:"payment"`
	}{
		Error:   false,
		Status:  "success",
		Message: "Payment fetched successfully",
		Payment: payment,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Delete Payment --------------------
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	if err := h.DB.DeletePayment(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.NotFound(w, "Payment not found")
			return
		}
		h.errorLog.Println("ERROR_01_DeletePayment:", err)
		utils.ServerError(w, err)
		return
	}

	resp := models.Response{
		Error:   false,
		Status:  "success",
		Message: "Payment deleted successfully",
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- List Payments --------------------
// Filters: customerId, from, to; all optional
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	var customerID *int64
	if idStr := r.URL.Query().Get("customerId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			utils.BadRequest(w, errors.New("invalid customerId"))
			return
		}
		customerID = &id
	}

	var from, to *time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		t, err := time.Parse(milk.DateLayout, fromStr)
		if err != nil {
			utils.BadRequest(w, errors.New("invalid from date, expected YYYY-MM-DD"))
			return
		}
		from = &t
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		t, err := time.Parse(milk.DateLayout, toStr)
		if err != nil {
			utils.BadRequest(w, errors.New("invalid to date, expected YYYY-MM-DD"))
			return
		}
		to = &t
	}

	payments, err := h.DB.ListPayments(r.Context(), customerID, from, to)
	if err != nil {
		h.errorLog.Println("ERROR_01_ListPayments:", err)
		utils.ServerError(w, err)
		return
	}

	var resp struct {
		Error    bool              `json:"error"`
		Status   string            `json:"status"`
		Message  string            `json:"message"`
		Payments []*models.Payment `json:"payments"`
	}

	resp.Error = false
	resp.Status = "success"
	resp.Message = "Payments fetched successfully"
	resp.Payments = payments

	utils.WriteJSON(w, http.StatusOK, resp)
}
