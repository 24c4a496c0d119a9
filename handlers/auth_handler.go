package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
	"eventsphere_backend/service"
)

type AuthHandler struct {
	service *application.AuthService
}

func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

func (handler *AuthHandler) Init(router *mux.Router) {
	router.HandleFunc("/register", handler.Register).Methods("POST")
	router.HandleFunc("/login", handler.Login).Methods("POST")
	router.HandleFunc("/forgot-password", handler.ForgotPassword).Methods("POST")
	router.HandleFunc("/verify-otp", handler.VerifyOtp).Methods("POST")
	router.HandleFunc("/reset-password", handler.ResetPassword).Methods("POST")
}

func (handler *AuthHandler) Register(writer http.ResponseWriter, req *http.Request) {
	user := &domain.User{}
	if err := user.FromJSON(req.Body); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	saved, statusCode, err := handler.service.Register(req.Context(), user)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	writer.WriteHeader(statusCode)
	jsonResponse(saved, writer)
}

func (handler *AuthHandler) Login(writer http.ResponseWriter, req *http.Request) {
	var request domain.LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	token, statusCode, err := handler.service.Login(req.Context(), &request)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	jsonResponse(map[string]string{"token": token}, writer)
}

func (handler *AuthHandler) ForgotPassword(writer http.ResponseWriter, req *http.Request) {
	var request domain.OtpRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	statusCode, err := handler.service.RequestOtp(req.Context(), request.Email)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	jsonResponse(map[string]string{"message": "OTP sent to email"}, writer)
}

func (handler *AuthHandler) VerifyOtp(writer http.ResponseWriter, req *http.Request) {
	var request domain.VerifyOtpRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	statusCode, err := handler.service.VerifyOtp(req.Context(), request.Email, request.Otp)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	jsonResponse(map[string]string{"message": "OTP verified successfully"}, writer)
}

func (handler *AuthHandler) ResetPassword(writer http.ResponseWriter, req *http.Request) {
	var request domain.ResetPasswordRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	statusCode, err := handler.service.ResetPassword(req.Context(), request.Email, request.NewPassword)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	jsonResponse(map[string]string{"message": "Password reset successfully"}, writer)
}
