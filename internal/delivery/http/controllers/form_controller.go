package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"eventory/internal/delivery/http/helpers"
	"eventory/internal/delivery/http/middleware"
	"eventory/internal/domain"
	"eventory/internal/schema"
)

const formNotFound = "Form not found"

// FormResponse is the success body of GET /api/forms/{formID}.
type FormResponse struct {
	Success bool             `json:"success"`
	Form    *domain.RsvpForm `json:"form"`
}

type FormController struct {
	Logger  *slog.Logger
	Service domain.FormService
}

func NewFormController(logger *slog.Logger, svc domain.FormService) *FormController {
	return &FormController{
		Logger:  logger,
		Service: svc,
	}
}

// GetForm godoc
// @Summary Get an RSVP form
// @Tags forms
// @Produce json
// @Param formID path string true "Form ID (same as the event ID)"
// @Success 200 {object} controllers.FormResponse
// @Failure 404 {object} helpers.ErrorResponse "message: Form not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/forms/{formID} [get]
func (c *FormController) GetForm(w http.ResponseWriter, r *http.Request) {
	form, err := c.Service.GetForm(r.Context(), r.PathValue("formID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, formNotFound)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, FormResponse{Success: true, Form: form})
}

// UpdateForm godoc
// @Summary Update an RSVP form
// @Description Changes the fields present in the body. form_id selects the form; unknown keys are rejected. Forms of events with a creator can only be changed by that creator.
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form body schema.FormUpdate true "Fields to change"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse "message: Invalid Payload"
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse "message: Form not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/create [put]
func (c *FormController) UpdateForm(w http.ResponseWriter, r *http.Request) {
	req, ok := helpers.DecodeAndValidate(w, r, schema.ParseFormUpdate)
	if !ok {
		return
	}
	c.update(w, r, req)
}

// PatchForm godoc
// @Summary Update an RSVP form by path
// @Description Same as PUT /api/create; the path id takes precedence over any form_id in the body.
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param formID path string true "Form ID"
// @Param form body schema.FormUpdate true "Fields to change"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 403 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/forms/{formID} [patch]
func (c *FormController) PatchForm(w http.ResponseWriter, r *http.Request) {
	formID := r.PathValue("formID")
	req, ok := helpers.DecodeAndValidate(w, r, func(body []byte) (schema.FormUpdate, error) {
		return schema.ParseFormUpdate(withFormID(body, formID))
	})
	if !ok {
		return
	}
	c.update(w, r, req)
}

func (c *FormController) update(w http.ResponseWriter, r *http.Request, req schema.FormUpdate) {
	caller := middleware.IdentityFromContext(r.Context())
	if _, err := c.Service.UpdateForm(r.Context(), req.FormID, req.Patch(), caller); err != nil {
		writeServiceError(c.Logger, w, r, err, formNotFound)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SuccessResponse{Success: true})
}

// withFormID sets form_id in a JSON object body. Bodies that are not objects
// are returned unchanged so parsing reports them.
func withFormID(body []byte, formID string) []byte {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return body
	}
	id, err := json.Marshal(formID)
	if err != nil {
		return body
	}
	obj["form_id"] = id
	out, err := json.Marshal(obj)
	if err != nil {
		return body
	}
	return out
}
