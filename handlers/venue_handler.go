package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
	"eventsphere_backend/service"
)

const (
	maxUploadSize     = 32 << 20
	maxVenueImages    = 5
	maxVenueDocuments = 3
)

type VenueHandler struct {
	service *application.VenueService
}

func NewVenueHandler(service *application.VenueService) *VenueHandler {
	return &VenueHandler{
		service: service,
	}
}

func (handler *VenueHandler) Init(router *mux.Router) {
	router.HandleFunc("/create", handler.Create).Methods("POST")
	router.HandleFunc("/verified", handler.GetVerified).Methods("GET")
	router.HandleFunc("/owner/{ownerId}", handler.GetByOwner).Methods("GET")
	router.HandleFunc("/update/{id}", handler.Update).Methods("PUT")
	router.HandleFunc("/delete/{id}", handler.Delete).Methods("DELETE")
	router.HandleFunc("/{id}/images", handler.GetImages).Methods("GET")
	router.HandleFunc("/", handler.GetAll).Methods("GET")
}

// Create reads the venue fields and uploads from a multipart form. Nested
// price, amenities and contact fields arrive as JSON strings.
func (handler *VenueHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ownerID, ok := currentUserID(req)
	if !ok {
		jsonError(writer, errors.Unauthorized, http.StatusUnauthorized)
		return
	}

	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	venue := &domain.Venue{
		VenueName:   req.FormValue("venueName"),
		Description: req.FormValue("description"),
		Address:     req.FormValue("address"),
		OwnerID:     ownerID,
	}
	if capacity := req.FormValue("capacity"); capacity != "" {
		parsed, err := strconv.Atoi(capacity)
		if err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
		venue.Capacity = parsed
	}
	if price := req.FormValue("price"); price != "" {
		if err := json.Unmarshal([]byte(price), &venue.Price); err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
	}
	if amenities := req.FormValue("amenities"); amenities != "" {
		if err := json.Unmarshal([]byte(amenities), &venue.Amenities); err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
	}
	if contact := req.FormValue("ownerContact"); contact != "" {
		if err := json.Unmarshal([]byte(contact), &venue.OwnerContact); err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
	}

	images, err := readFormFiles(req, "images", maxVenueImages)
	if err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}
	documents, err := readFormFiles(req, "documents", maxVenueDocuments)
	if err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	saved, statusCode, err := handler.service.Create(req.Context(), venue, images, documents)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	writer.WriteHeader(statusCode)
	jsonResponse(map[string]interface{}{"message": "Venue created successfully", "venue": saved}, writer)
}

func (handler *VenueHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	venues, err := handler.service.GetAll(req.Context())
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(venues, writer)
}

func (handler *VenueHandler) GetVerified(writer http.ResponseWriter, req *http.Request) {
	venues, err := handler.service.GetVerified(req.Context())
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(venues, writer)
}

func (handler *VenueHandler) GetByOwner(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	ownerID, err := primitive.ObjectIDFromHex(vars["ownerId"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	venues, err := handler.service.GetByOwner(req.Context(), ownerID)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(venues) == 0 {
		jsonError(writer, "No venues found for the owner", http.StatusNotFound)
		return
	}
	jsonResponse(venues, writer)
}

func (handler *VenueHandler) GetImages(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	images, err := handler.service.GetImages(req.Context(), id)
	if err != nil {
		if err.Error() == errors.VenueNotFound {
			jsonError(writer, err.Error(), http.StatusNotFound)
			return
		}
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(images, writer)
}

func (handler *VenueHandler) Update(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	venue, statusCode, err := handler.service.Update(req.Context(), id, payload)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}
	jsonResponse(venue, writer)
}

func (handler *VenueHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	venue, err := handler.service.Delete(req.Context(), id)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if venue == nil {
		jsonError(writer, errors.VenueNotFound, http.StatusNotFound)
		return
	}
	jsonResponse(map[string]interface{}{"message": "Venue deleted successfully", "venue": venue}, writer)
}
