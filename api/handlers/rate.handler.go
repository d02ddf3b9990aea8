package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
	"github.com/ateet0254/mukesh-dairy-api/internal/milk"
	"github.com/ateet0254/mukesh-dairy-api/internal/models"
	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

// RateHandler manages the configured rate chart
type RateHandler struct {
	DB       *dbrepo.RateRepo
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewRateHandler(db *dbrepo.RateRepo, infoLog *log.Logger, errorLog *log.Logger) *RateHandler {
	return &RateHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

type rateSlabRequest struct {
	MilkType string          `json:"milkType"`
	FatMin   decimal.Decimal `json:"fatMin"`
	FatMax   decimal.Decimal `json:"fatMax"`
	SnfMin   decimal.Decimal `json:"snfMin"`
	SnfMax   decimal.Decimal `json:"snfMax"`
	Rate     decimal.Decimal `json:"rate"`
}

// -------------------- List Rate Slabs --------------------
func (h *RateHandler) ListSlabs(w http.ResponseWriter, r *http.Request) {
	var (
		slabs []*models.RateSlab
		err   error
	)

	if milkType := r.URL.Query().Get("milkType"); milkType != "" {
		if !milk.ValidMilkType(milkType) {
			utils.BadRequest(w, errors.New("invalid milk type"))
			return
		}
		slabs, err = h.DB.ListSlabsByMilkType(r.Context(), milkType)
	} else {
		slabs, err = h.DB.ListSlabs(r.Context())
	}
	if err != nil {
		h.errorLog.Println("ERROR_01_ListSlabs:", err)
		utils.ServerError(w, err)
		return
	}

	var resp struct {
		Error   bool               `json:"error"`
		Status  string             `json:"status"`
		Message string             `json:"message"`
		Slabs   []*models.RateSlab `json:"slabs"`
	}

	resp.Error = false
	resp.Status = "success"
	resp.Message = "Rate chart fetched successfully"
	resp.Slabs = slabs

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Add Rate Slab --------------------
func (h *RateHandler) AddSlab(w http.ResponseWriter, r *http.Request) {
	var req rateSlabRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_AddSlab:", err)
		utils.BadRequest(w, err)
		return
	}

	if !milk.ValidMilkType(req.MilkType) {
		utils.BadRequest(w, errors.New("invalid milk type"))
		return
	}
	if !req.Rate.IsPositive() {
		utils.BadRequest(w, errors.New("rate must be positive"))
		return
	}
	if req.FatMin.GreaterThan(req.FatMax) || req.SnfMin.GreaterThan(req.SnfMax) {
		utils.BadRequest(w, errors.New("band minimum must not exceed maximum"))
		return
	}

	slab := models.RateSlab{
		MilkType: req.MilkType,
		FatMin:   req.FatMin,
		FatMax:   req.FatMax,
		SnfMin:   req.SnfMin,
		SnfMax:   req.SnfMax,
		Rate:     req.Rate,
	}

	if err := h.DB.CreateSlab(r.Context(), &slab); err != nil {
		h.errorLog.Println("ERROR_02_AddSlab:", err)
		utils.ServerError(w, err)
		return
	}

	resp := struct {
		Error   bool             `json:"error"`
		Status  string           `json:"status"`
		Message string           `json:"message"`
		Slab    *models.RateSlab `json:"slab"`
	}{
		Error:   false,
		Status:  "success",
		Message: "Rate slab added successfully",
		Slab:    &slab,
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

// -------------------- Delete Rate Slab --------------------
func (h *RateHandler) DeleteSlab(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	if err := h.DB.DeleteSlab(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.NotFound(w, "Rate slab not found")
			return
		}
		h.errorLog.Println("ERROR_01_DeleteSlab:", err)
		utils.ServerError(w, err)
		return
	}

	resp := models.Response{
		Error:   false,
		Status:  "success",
		Message: "Rate slab deleted successfully",
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
