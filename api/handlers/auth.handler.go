package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
	"github.com/ateet0254/mukesh-dairy-api/internal/models"
	"github.com/ateet0254/mukesh-dairy-api/internal/utils"
)

type AuthHandler struct {
	DB        *dbrepo.DBRepository
	JWTConfig models.JWTConfig
	infoLog   *log.Logger
	errorLog  *log.Logger
}

func NewAuthHandler(db *dbrepo.DBRepository, JWTConfig models.JWTConfig, infoLog *log.Logger, errorLog *log.Logger) *AuthHandler {
	return &AuthHandler{
		DB:        db,
		JWTConfig: JWTConfig,
		infoLog:   infoLog,
		errorLog:  errorLog,
	}
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_Signin:", err)
		utils.BadRequest(w, err)
		return
	}

	// Validate credentials from DB
	user, err := h.DB.UserRepo.GetUserByUsername(r.Context(), req.Username)
	if err != nil || !utils.CheckPassword(req.Password, user.Password) {
		h.errorLog.Println("ERROR_02_Signin: invalid credentials")
		utils.Unauthorized(w, errors.New("invalid username or password"))
		return
	}

	// Generate JWT
	token, err := utils.GenerateJWT(models.JWT{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, h.JWTConfig)

	if err != nil {
		h.errorLog.Println("ERROR_03_Signin: failed to generate JWT", err)
		utils.ServerError(w, err)
		return
	}

	resp := struct {
		Error bool         `json:"error"`
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}{
		Error: false,
		Token: token,
		User:  user,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// ChangePassword rotates an operator's password after re-checking the
// current one
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_ChangePassword:", err)
		utils.BadRequest(w, err)
		return
	}

	if len(req.NewPassword) < 8 {
		utils.BadRequest(w, errors.New("new password must be at least 8 characters"))
		return
	}

	user, err := h.DB.UserRepo.GetUserByUsername(r.Context(), req.Username)
	if err != nil || !utils.CheckPassword(req.OldPassword, user.Password) {
		h.errorLog.Println("ERROR_02_ChangePassword: invalid credentials")
		utils.Unauthorized(w, errors.New("invalid username or password"))
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		h.errorLog.Println("ERROR_03_ChangePassword:", err)
		utils.ServerError(w, err)
		return
	}

	if err := h.DB.UserRepo.UpdateUserPassword(r.Context(), user.ID, hash); err != nil {
		h.errorLog.Println("ERROR_04_ChangePassword:", err)
		utils.ServerError(w, err)
		return
	}

	resp := models.Response{
		Error:   false,
		Status:  "success",
		Message: "Password updated successfully",
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
