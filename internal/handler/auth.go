// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type RegisterResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.userService.Register(r.Context(), input)
	if err != nil {
		handleError(w, r, "User registration error", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user,omitempty"`
	Token string      `json:"token,omitempty"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		handleError(w, r, "Login error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}
