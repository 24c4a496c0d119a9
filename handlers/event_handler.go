package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventsphere_backend/domain"
	"eventsphere_backend/errors"
	"eventsphere_backend/service"
)

const maxEventImages = 5

type EventHandler struct {
	service *application.EventService
}

func NewEventHandler(service *application.EventService) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

func (handler *EventHandler) Init(router *mux.Router) {
	router.HandleFunc("/create", handler.Create).Methods("POST")
	router.HandleFunc("/event-types", handler.GetEventTypes).Methods("GET")
	router.HandleFunc("/event-types", handler.AddCustomEventType).Methods("POST")
	router.HandleFunc("/organiser/{id}", handler.GetByOrganizer).Methods("GET")
	router.HandleFunc("/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/", handler.GetAll).Methods("GET")
}

// Create reads the event from a multipart form. The ticket types arrive as a
// JSON string field next to the uploaded images.
func (handler *EventHandler) Create(writer http.ResponseWriter, req *http.Request) {
	organizerID, ok := currentUserID(req)
	if !ok {
		jsonError(writer, errors.Unauthorized, http.StatusUnauthorized)
		return
	}

	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	event := &domain.Event{
		EventName:     req.FormValue("eventName"),
		Description:   req.FormValue("description"),
		StartTime:     req.FormValue("startTime"),
		EndTime:       req.FormValue("endTime"),
		Mode:          domain.EventMode(req.FormValue("mode")),
		Type:          req.FormValue("type"),
		CustomAddress: req.FormValue("customAddress"),
		StreamingLink: req.FormValue("streamingLink"),
		Organizer:     organizerID,
	}

	if date := req.FormValue("date"); date != "" {
		parsed, err := time.Parse(time.RFC3339, date)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", date)
		}
		if err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
		event.Date = parsed
	}

	if venue := req.FormValue("venue"); venue != "" {
		venueID, err := primitive.ObjectIDFromHex(venue)
		if err != nil {
			jsonError(writer, errors.InvalidID, http.StatusBadRequest)
			return
		}
		event.Venue = &venueID
	}

	if ticketTypes := req.FormValue("ticketTypes"); ticketTypes != "" {
		if err := json.Unmarshal([]byte(ticketTypes), &event.TicketTypes); err != nil {
			jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
			return
		}
	}

	images, err := readFormFiles(req, "images", maxEventImages)
	if err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	saved, statusCode, err := handler.service.CreateEvent(req.Context(), event, images)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}

	writer.WriteHeader(statusCode)
	jsonResponse(map[string]interface{}{"message": "Event created successfully", "event": saved}, writer)
}

func (handler *EventHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	events, err := handler.service.GetAll(req.Context())
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(events, writer)
}

func (handler *EventHandler) Get(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	event, err := handler.service.Get(req.Context(), id)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if event == nil {
		jsonError(writer, errors.EventNotFound, http.StatusNotFound)
		return
	}
	jsonResponse(event, writer)
}

func (handler *EventHandler) GetByOrganizer(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	organizerID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		jsonError(writer, errors.InvalidID, http.StatusBadRequest)
		return
	}

	events, err := handler.service.GetByOrganizer(req.Context(), organizerID)
	if err != nil {
		jsonError(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(events, writer)
}

func (handler *EventHandler) GetEventTypes(writer http.ResponseWriter, req *http.Request) {
	mode := domain.EventMode(req.URL.Query().Get("mode"))

	types, statusCode, err := handler.service.GetEventTypesByMode(req.Context(), mode)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}
	jsonResponse(types, writer)
}

func (handler *EventHandler) AddCustomEventType(writer http.ResponseWriter, req *http.Request) {
	var request domain.CustomEventTypeRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		jsonError(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	registry, statusCode, err := handler.service.AddCustomEventType(req.Context(), request.Mode, request.CustomType)
	if err != nil {
		jsonError(writer, err.Error(), statusCode)
		return
	}
	jsonResponse(registry, writer)
}
