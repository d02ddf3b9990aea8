package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
	"github.com/ateet0254/mukesh-dairy-api/internal/models"
	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

type CustomerHandler struct {
	DB       *dbrepo.CustomerRepo
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewCustomerHandler(db *dbrepo.CustomerRepo, infoLog *log.Logger, errorLog *log.Logger) *CustomerHandler {
	return &CustomerHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

type customerRequest struct {
	SlNo    int     `json:"slNo" validate:"required,gt=0"`
	Name    string  `json:"name" validate:"required"`
	Phone   *string `json:"phone"`
	Village *string `json:"village"`
}

// -------------------- Add New Customer --------------------
func (c *CustomerHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		c.errorLog.Println("ERROR_01_AddCustomer:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		c.errorLog.Println("ERROR_02_AddCustomer:", err)
		utils.BadRequest(w, errors.New("slNo and name are required"))
		return
	}

	if req.Phone != nil {
		normalized := utils.NormalizePhone(*req.Phone)
		req.Phone = &normalized
	}

	customer := models.Customer{
		SlNo:    req.SlNo,
		Name:    req.Name,
		Phone:   req.Phone,
		Village: req.Village,
	}

	if err := c.DB.CreateCustomer(r.Context(), &customer); err != nil {
		c.errorLog.Println("ERROR_03_AddCustomer:", err)
		utils.Conflict(w, err)
		return
	}

	resp := struct {
		Error    bool             `json:"error"`
		Status   string           `json:"status"`
		Message  string           `json:"message"`
		Customer *models.Customer `json:"customer"`
	}{
		Error:    false,
		Status:   "success",
		Message:  "Customer added successfully",
		Customer: &customer,
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

// -------------------- Update Customer Info --------------------
func (c *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	var req customerRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		c.errorLog.Println("ERROR_01_UpdateCustomer:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		c.errorLog.Println("ERROR_02_UpdateCustomer:", err)
		utils.BadRequest(w, errors.New("slNo and name are required"))
		return
	}

	if req.Phone != nil {
		normalized := utils.NormalizePhone(*req.Phone)
		req.Phone = &normalized
	}

	customer := models.Customer{
		ID:      id,
		SlNo:    req.SlNo,
		Name:    req.Name,
		Phone:   req.Phone,
		Village: req.Village,
	}

	updatedAt, err := c.DB.UpdateCustomer(r.Context(), &customer)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.NotFound(w, "Customer not found")
			return
		}
		c.errorLog.Println("ERROR_03_UpdateCustomer:", err)
		utils.Conflict(w, err)
		return
	}

	resp := struct {
		Error     bool       `json:"error"`
		Status    string     `json:"status"`
		Message   string     `json:"message"`
		UpdatedAt *time.Time `json:"updatedAt"`
	}{
		Error:     false,
		Status:    "success",
		Message:   "Customer updated successfully",
		UpdatedAt: updatedAt,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Delete Customer --------------------
func (c *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	if err := c.DB.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.NotFound(w, "Customer not found")
			return
		}
		c.errorLog.Println("ERROR_01_DeleteCustomer:", err)
		utils.Conflict(w, err)
		return
	}

	resp := models.Response{
		Error:   false,
		Status:  "success",
		Message: "Customer deleted successfully",
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Get Customer By ID --------------------
func (c *CustomerHandler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.BadRequest(w, errors.New("invalid id"))
		return
	}

	customer, err := c.DB.GetCustomerByID(r.Context(), id)
	if err != nil {
		c.errorLog.Println("ERROR_01_GetCustomerByID:", err)
		utils.ServerError(w, err)
		return
	}

	if customer == nil {
		utils.NotFound(w, "Customer not found")
		return
	}

	resp := struct {
		Error    bool             `json:"error"`
		Status   string           `json:"status"`
		Message  string           `json:"message"`
		Customer *models.Customer `json:"customer"`
	}{
		Error:    false,
		Status:   "success",
		Message:  "Customer fetched successfully",
		Customer: customer,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Get Customers --------------------
func (c *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.DB.GetCustomers(r.Context())
	if err != nil {
		c.errorLog.Println("ERROR_01_GetCustomers:", err)
		utils.ServerError(w, err)
		return
	}

	var resp struct {
		Error     bool               `json:"error"`
		Status    string             `json:"status"`
		Message   string             `json:"message"`
		Customers []*models.Customer `json:"customers"`
	}

	resp.Error = false
	resp.Status = "success"
	resp.Message = "Customer list fetched successfully"
	resp.Customers = customers

	utils.WriteJSON(w, http.StatusOK, resp)
}
