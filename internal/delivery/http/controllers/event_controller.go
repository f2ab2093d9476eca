package controllers

import (
	"log/slog"
	"net/http"

	"eventory/internal/delivery/http/helpers"
	"eventory/internal/delivery/http/middleware"
	"eventory/internal/domain"
	"eventory/internal/schema"
)

// CreateEventResponse is the success body of POST /api/create.
type CreateEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
}

// EventResponse is the success body of GET /api/events/{eventID}.
type EventResponse struct {
	Success bool          `json:"success"`
	Event   *domain.Event `json:"event"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event and its RSVP form in one step. The form shares the event id and takes the event name as its title. Unknown keys are ignored; eventDate accepts an ISO date or datetime string or Unix milliseconds and is stored empty otherwise.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body schema.EventCreation true "Event"
// @Success 200 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.ErrorResponse "message: Invalid Payload; error lists every issue"
// @Failure 401 {object} helpers.ErrorResponse "identity required"
// @Failure 500 {object} helpers.ErrorResponse "message: Internal Server Error"
// @Router /api/create [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	req, ok := helpers.DecodeAndValidate(w, r, schema.ParseEventCreation)
	if !ok {
		return
	}
	owner := middleware.IdentityFromContext(r.Context())
	event, _, err := c.Service.CreateEvent(r.Context(), req.Input(), owner)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, CreateEventResponse{Success: true, EventID: event.ID})
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns a public event, or a private one to its creator.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	event, err := c.Service.GetEvent(r.Context(), eventID, middleware.IdentityFromContext(r.Context()))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Success: true, Event: event})
}
