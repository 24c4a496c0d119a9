package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
	"eventsphere_backend/service"
)

type PaymentHandler struct {
	service *application.PaymentService
}

func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

func (handler *PaymentHandler) Init(router *mux.Router) {
	router.HandleFunc("/create-checkout-session", handler.CreateCheckoutSession).Methods("POST")
	router.HandleFunc("/update-status/{sessionId}", handler.UpdateStatus).Methods("PATCH")
	router.HandleFunc("/venue", handler.GetVenuePayments).Methods("GET")
	router.HandleFunc("/event", handler.GetEventPayments).Methods("GET")
	router.HandleFunc("/venue-payments/{venueId}", handler.GetPaymentsByVenue).Methods("GET")
	router.HandleFunc("/admin/successful-payments", handler.GetAllSuccessfulPayments).Methods("GET")
	router.HandleFunc("/{paymentId}", handler.GetPayment).Methods("GET")
}

func (handler *PaymentHandler) CreateCheckoutSession(writer http.ResponseWriter, req *http.Request) {
	userID, ok := currentUserID(req)
	if !ok {
		jsonError(writer, errors.Unauthorized, http.StatusUnauthorized)
		return
	}

	var request domain.PaymentRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	response, statusCode, err := handler.service.Pay(req.Context(), userID, &request)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}
	jsonResponse(response, writer)
}

// UpdateStatus takes the outcome reported by the redirected client and applies
// it to the matching payment record.
func (handler *PaymentHandler) UpdateStatus(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	sessionID := vars["sessionId"]

	var request domain.UpdateStatusRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	payment, statusCode, err := handler.service.UpdateStatus(req.Context(), sessionID, request.Status)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}
	jsonResponse(payment, writer)
}

func (handler *PaymentHandler) GetVenuePayments(writer http.ResponseWriter, req *http.Request) {
	userID, ok := currentUserID(req)
	if !ok {
		jsonError(writer, errors.Unauthorized, http.StatusUnauthorized)
		return
	}

	payments, err := handler.service.GetVenuePayments(req.Context(), userID)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(payments, writer)
}

func (handler *PaymentHandler) GetEventPayments(writer http.ResponseWriter, req *http.Request) {
	userID, ok := currentUserID(req)
	if !ok {
		jsonError(writer, errors.Unauthorized, http.StatusUnauthorized)
		return
	}

	payments, err := handler.service.GetEventPayments(req.Context(), userID)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(payments, writer)
}

func (handler *PaymentHandler) GetPayment(writer http.ResponseWriter, req *http.Request) {
	userID, ok := currentUserID(req)
	if !ok {
		jsonError(writer, errors.Unauthorized, http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(req)
	paymentID, err := primitive.ObjectIDFromHex(vars["paymentId"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	payment, err := handler.service.GetPayment(req.Context(), paymentID, userID)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if payment == nil {
		jsonError(writer, errors.PaymentNotFound, http.StatusNotFound)
		return
	}
	jsonResponse(payment, writer)
}

func (handler *PaymentHandler) GetPaymentsByVenue(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	venueID, err := primitive.ObjectIDFromHex(vars["venueId"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	payments, err := handler.service.GetPaymentsByVenue(req.Context(), venueID)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(payments, writer)
}

func (handler *PaymentHandler) GetAllSuccessfulPayments(writer http.ResponseWriter, req *http.Request) {
	report, err := handler.service.GetAllSuccessfulPayments(req.Context())
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(report, writer)
}
