package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
	"github.com/ateet0254/mukesh-dairy-api/internal/milk"
	"github.com/ateet0254/mukesh-dairy-api/internal/models"
	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

// EntryHandler handles milk entry requests
type EntryHandler struct {
	DB       *dbrepo.EntryRepo
	Rates    *dbrepo.RateRepo
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewEntryHandler(db *dbrepo.EntryRepo, rates *dbrepo.RateRepo, infoLog *log.Logger, errorLog *log.Logger) *EntryHandler {
	return &EntryHandler{
		DB:       db,
		Rates:    rates,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

type entryRequest struct {
	CustomerID int64            `json:"customerId"`
	Date       string           `json:"date"`
	Shift      string           `json:"shift"`
	MilkType   string           `json:"milkType"`
	QuantityL  decimal.Decimal  `json:"quantityL"`
	Fat        *decimal.Decimal `json:"fat"`
	Snf        *decimal.Decimal `json:"snf"`
	Rate       *decimal.Decimal `json:"rate"`
	RateSource string           `json:"rateSource"`
	Note       *string          `json:"note"`
}

// toInput parses the wire date and converts the request into a valuator input
func (req *entryRequest) toInput() (milk.EntryInput, error) {
	date, err := time.Parse(milk.DateLayout, req.Date)
	if err != nil {
		return milk.EntryInput{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	return milk.EntryInput{
		CustomerID: req.CustomerID,
		Date:       date,
		Shift:      req.Shift,
		MilkType:   req.MilkType,
		QuantityL:  req.QuantityL,
		Fat:        req.Fat,
		Snf:        req.Snf,
		Rate:       req.Rate,
		RateSource: req.RateSource,
		Note:       req.Note,
	}, nil
}

// writeEntryError maps domain errors onto HTTP statuses
func writeEntryError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidation(err):
		utils.BadRequest(w, err)
	case errors.Is(err, models.ErrConflict):
		utils.Conflict(w, err)
	case errors.Is(err, models.ErrNotFound):
		utils.NotFound(w, "Entry not found")
	default:
		utils.ServerError(w, err)
	}
}

// -------------------- Add Entry --------------------
func (h *EntryHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_AddEntry:", err)
		utils.BadRequest(w, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		h.errorLog.Println("ERROR_02_AddEntry:", err)
		utils.BadRequest(w, err)
		return
	}

	slabs, err := h.Rates.ListSlabsByMilkType(r.Context(), in.MilkType)
	if err != nil {
		h.errorLog.Println("ERROR_03_AddEntry:", err)
		utils.ServerError(w, err)
		return
	}

	val, err := milk.ValuateEntry(in, slabs)
	if err != nil {
		h.errorLog.Println("ERROR_04_AddEntry:", err)
		writeEntryError(w, err)
		return
	}

	entry := models.Entry{
		CustomerID: in.CustomerID,
		Date:       in.Date,
		Shift:      in.Shift,
		MilkType:   in.MilkType,
		QuantityL:  in.QuantityL,
		Fat:        in.Fat,
		Snf:        in.Snf,
		Rate:       val.Rate,
		RateSource: val.RateSource,
		Amount:     val.Amount,
		Note:       in.Note,
	}

	if err := h.DB.CreateEntry(r.Context(), &entry); err != nil {
		h.errorLog.Println("ERROR_05_AddEntry:", err)
		writeEntryError(w, err)
		return
	}
	entry.DateStr = entry.Date.Format(milk.DateLayout)

	resp := struct {
		Error   bool          `json:"error"`
		Status  string        `json:"status"`
		Message string        `json:"message"`
		Entry   *models.Entry `json:"entry"`
	}{
		Error:   false,
		Status:  "success",
		Message: "Entry added successfully",
		Entry:   &entry,
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

// -------------------- Update Entry --------------------
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	var req entryRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_UpdateEntry:", err)
		utils.BadRequest(w, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		h.errorLog.Println("ERROR_02_UpdateEntry:", err)
		utils.BadRequest(w, err)
		return
	}

	prev, err := h.DB.GetEntryByID(r.Context(), id)
	if err != nil {
		h.errorLog.Println("ERROR_03_UpdateEntry:", err)
		writeEntryError(w, err)
		return
	}

	slabs, err := h.Rates.ListSlabsByMilkType(r.Context(), in.MilkType)
	if err != nil {
		h.errorLog.Println("ERROR_04_UpdateEntry:", err)
		utils.ServerError(w, err)
		return
	}

	val, err := milk.RevalueEntry(prev, in, slabs)
	if err != nil {
		h.errorLog.Println("ERROR_05_UpdateEntry:", err)
		writeEntryError(w, err)
		return
	}

	entry := models.Entry{
		ID:         id,
		CustomerID: in.CustomerID,
		Date:       in.Date,
		Shift:      in.Shift,
		MilkType:   in.MilkType,
		QuantityL:  in.QuantityL,
		Fat:        in.Fat,
		Snf:        in.Snf,
		Rate:       val.Rate,
		RateSource: val.RateSource,
		Amount:     val.Amount,
		Note:       in.Note,
	}

	if err := h.DB.UpdateEntry(r.Context(), &entry); err != nil {
		h.errorLog.Println("ERROR_06_UpdateEntry:", err)
		writeEntryError(w, err)
		return
	}
	entry.DateStr = entry.Date.Format(milk.DateLayout)

	resp := struct {
		Error   bool          `json:"error"`
		Status  string        `json:"status"`
		Message string        `json:"message"`
		Entry   *models.Entry `json:"entry"`
	}{
		Error:   false,
		Status:  "success",
		Message: "Entry updated successfully",
		Entry:   &entry,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Delete Entry --------------------
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	if err := h.DB.DeleteEntry(r.Context(), id); err != nil {
		h.errorLog.Println("ERROR_01_DeleteEntry:", err)
		writeEntryError(w, err)
		return
	}

	resp := models.Response{
		Error:   false,
		Status:  "success",
		Message: "Entry deleted successfully",
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- List Entries --------------------
// Filters: from, to (inclusive, required), customerId (optional),
// sort=creation (optional, defaults to date order)
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(milk.DateLayout, r.URL.Query().Get("from"))
	if err != nil {
		utils.BadRequest(w, errors.New("invalid from date, expected YYYY-MM-DD"))
		return
	}
	to, err := time.Parse(milk.DateLayout, r.URL.Query().Get("to"))
	if err != nil {
		utils.BadRequest(w, errors.New("invalid to date, expected YYYY-MM-DD"))
		return
	}

	var customerID *int64
	if idStr := r.URL.Query().Get("customerId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			utils.BadRequest(w, errors.New("invalid customerId"))
			return
		}
		customerID = &id
	}

	sortByCreation := r.URL.Query().Get("sort") == "creation"

	entries, err := h.DB.ListEntries(r.Context(), from, to, customerID, sortByCreation)
	if err != nil {
		h.errorLog.Println("ERROR_01_ListEntries:", err)
		utils.ServerError(w, err)
		return
	}

	var resp struct {
		Error   bool            `json:"error"`
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Entries []*models.Entry `json:"entries"`
	}

	resp.Error = false
	resp.Status = "success"
	resp.Message = "Entries fetched successfully"
	resp.Entries = entries

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Resolve Rate --------------------
// Rate preview for the entry form: GET /entries/rate?milkType=&fat=&snf=
// A chart miss is 404 so the form can fall back to a manual rate.
func (h *EntryHandler) ResolveRate(w http.ResponseWriter, r *http.Request) {
	milkType := r.URL.Query().Get("milkType")
	if !milk.ValidMilkType(milkType) {
		utils.BadRequest(w, fmt.Errorf("invalid milk type: %s", milkType))
		return
	}

	fat, err := decimal.NewFromString(r.URL.Query().Get("fat"))
	if err != nil {
		utils.BadRequest(w, errors.New("invalid fat"))
		return
	}
	snf, err := decimal.NewFromString(r.URL.Query().Get("snf"))
	if err != nil {
		utils.BadRequest(w, errors.New("invalid snf"))
		return
	}

	slabs, err := h.Rates.ListSlabsByMilkType(r.Context(), milkType)
	if err != nil {
		h.errorLog.Println("ERROR_01_ResolveRate:", err)
		utils.ServerError(w, err)
		return
	}

	rate, ok := milk.ResolveRate(slabs, milkType, &fat, &snf)
	if !ok {
		utils.NotFound(w, "No matching rate for given milk type, fat and snf")
		return
	}

	resp := struct {
		Error bool            `json:"error"`
		Rate  decimal.Decimal `json:"rate"`
	}{
		Error: false,
		Rate:  rate,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
