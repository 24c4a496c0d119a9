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

type AdminHandler struct {
	service *application.AdminService
}

func NewAdminHandler(service *application.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

func (handler *AdminHandler) Init(router *mux.Router) {
	router.HandleFunc("/dashboard/stats", handler.GetDashboardStats).Methods("GET")
	router.HandleFunc("/venues/{id}/approve", handler.ApproveVenue).Methods("PUT")
	router.HandleFunc("/additional-details/{id}", handler.GetAdditionalDetails).Methods("GET")
	router.HandleFunc("/user/{id}/additional-details", handler.GetAdditionalDetailsByUser).Methods("GET")
}

func (handler *AdminHandler) ApproveVenue(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	var request domain.ApproveVenueRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	message, venue, statusCode, err := handler.service.ApproveVenue(req.Context(), id, &request)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}
	jsonResponse(map[string]interface{}{"message": message, "venue": venue}, writer)
}

func (handler *AdminHandler) GetDashboardStats(writer http.ResponseWriter, req *http.Request) {
	stats, err := handler.service.GetDashboardStats(req.Context())
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(stats, writer)
}

func (handler *AdminHandler) GetAdditionalDetails(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	details, err := handler.service.GetAdditionalDetails(req.Context(), id)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if details == nil {
		jsonError(writer, "Additional details not found", http.StatusNotFound)
		return
	}
	jsonResponse(details, writer)
}

func (handler *AdminHandler) GetAdditionalDetailsByUser(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	userID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	details, err := handler.service.GetAdditionalDetailsByUser(req.Context(), userID)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if details == nil {
		jsonError(writer, "Additional details not found", http.StatusNotFound)
		return
	}
	jsonResponse(details, writer)
}
