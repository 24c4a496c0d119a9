package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
	"eventsphere_backend/service"
)

type DetailsHandler struct {
	service *application.DetailsService
}

func NewDetailsHandler(service *application.DetailsService) *DetailsHandler {
	return &DetailsHandler{
		service: service,
	}
}

func (handler *DetailsHandler) Init(router *mux.Router) {
	router.HandleFunc("", handler.Create).Methods("POST")
	router.HandleFunc("/", handler.Create).Methods("POST")
}

// Create reads the payout details from a multipart form with a single panCard
// file. Contact and bank details arrive as JSON string fields.
func (handler *DetailsHandler) Create(writer http.ResponseWriter, req *http.Request) {
	userID, ok := currentUserID(req)
	if !ok {
		jsonError(writer, errors.Unauthorized, http.StatusUnauthorized)
		return
	}

	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	details := &domain.AdditionalDetails{
		UserID:              userID,
		OrganizationName:    req.FormValue("organizationName"),
		PanCardNumber:       req.FormValue("panCardNumber"),
		OrganizationAddress: req.FormValue("organizationAddress"),
	}
	if contact := req.FormValue("contactDetails"); contact != "" {
		if err := json.Unmarshal([]byte(contact), &details.ContactDetails); err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
	}
	if bank := req.FormValue("bankDetails"); bank != "" {
		if err := json.Unmarshal([]byte(bank), &details.BankDetails); err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
	}

	var panCard *domain.FileUpload
	file, header, err := req.FormFile("panCard")
	if err == nil {
		content, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
		panCard = &domain.FileUpload{Name: header.Filename, Content: content}
	}

	saved, statusCode, err := handler.service.Create(req.Context(), details, panCard)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	writer.WriteHeader(statusCode)
	jsonResponse(map[string]interface{}{"message": "Details added successfully", "details": saved}, writer)
}
