package controllers

import (
	"log/slog"
	"net/http"

	"eventory/internal/delivery/http/helpers"
	"eventory/internal/delivery/http/middleware"
	"eventory/internal/domain"
	"eventory/internal/schema"
)

// SubmitRsvpResponse is the success body of POST /api/rsvp.
type SubmitRsvpResponse struct {
	Success    bool   `json:"success"`
	ResponseID string `json:"responseId"`
}

// ListResponsesResponse is the success body of GET /api/events/{eventID}/responses.
type ListResponsesResponse struct {
	Success    bool                   `json:"success"`
	Responses  []*domain.RsvpResponse `json:"responses"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type RsvpController struct {
	Logger  *slog.Logger
	Service domain.RsvpService
}

func NewRsvpController(logger *slog.Logger, svc domain.RsvpService) *RsvpController {
	return &RsvpController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit an RSVP
// @Description Records a guest's answer. Name and email are only required when the form displays them. A confirmation email is sent when an address is given.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvp body schema.RsvpAcceptance true "RSVP"
// @Success 200 {object} controllers.SubmitRsvpResponse
// @Failure 400 {object} helpers.ErrorResponse "message: Invalid Payload"
// @Failure 404 {object} helpers.ErrorResponse "message: Event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/rsvp [post]
func (c *RsvpController) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := helpers.DecodeAndValidate(w, r, schema.DecodeRsvpAcceptance)
	if !ok {
		return
	}
	resp, err := c.Service.Submit(r.Context(), req.Input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SubmitRsvpResponse{Success: true, ResponseID: resp.ID})
}

// ListResponses godoc
// @Summary List an event's RSVPs
// @Description Newest first. Only the event creator may list responses.
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Success 200 {object} controllers.ListResponsesResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID}/responses [get]
func (c *RsvpController) ListResponses(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	caller := middleware.IdentityFromContext(r.Context())
	responses, total, err := c.Service.ListResponses(r.Context(), r.PathValue("eventID"), caller, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListResponsesResponse{
		Success:    true,
		Responses:  responses,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}
