package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventory/internal/delivery/http/views"
	"eventory/internal/domain"
	"eventory/internal/rsvpform"
	"eventory/internal/schema"
)

// RsvpPageController serves the HTML RSVP form for guests without a client app.
type RsvpPageController struct {
	Logger *slog.Logger
	Forms  domain.FormService
	Rsvps  domain.RsvpService
}

func NewRsvpPageController(logger *slog.Logger, forms domain.FormService, rsvps domain.RsvpService) *RsvpPageController {
	return &RsvpPageController{
		Logger: logger,
		Forms:  forms,
		Rsvps:  rsvps,
	}
}

// Show renders an empty RSVP form for the event.
func (c *RsvpPageController) Show(w http.ResponseWriter, r *http.Request) {
	form, ok := c.loadForm(w, r)
	if !ok {
		return
	}
	f := rsvpform.New(form, nil)
	c.render(w, r, http.StatusOK, views.NewRsvpPage(f, rsvpform.Values{}))
}

// Submit handles the posted form and re-renders the page in its new state.
func (c *RsvpPageController) Submit(w http.ResponseWriter, r *http.Request) {
	form, ok := c.loadForm(w, r)
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "could not read form", http.StatusBadRequest)
		return
	}
	values := rsvpform.Values{
		Name:      r.PostForm.Get(schema.FieldName),
		Email:     r.PostForm.Get(schema.FieldEmail),
		Attending: r.PostForm.Get(schema.FieldAttending),
	}
	f := rsvpform.New(form, rsvpform.ServiceSubmitter{Service: c.Rsvps})
	state, err := f.Submit(r.Context(), values)

	status := http.StatusOK
	switch state.Kind {
	case rsvpform.Idle:
		status = http.StatusBadRequest
	case rsvpform.Failed:
		status = http.StatusInternalServerError
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	c.render(w, r, status, views.NewRsvpPage(f, values))
}

func (c *RsvpPageController) loadForm(w http.ResponseWriter, r *http.Request) (*domain.RsvpForm, bool) {
	form, err := c.Forms.GetForm(r.Context(), r.PathValue("eventID"))
	if err == nil {
		return form, true
	}
	if errors.Is(err, domain.ErrNotFound) {
		if err := views.RenderNotFound(w); err != nil {
			c.Logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "err", err)
		}
		return nil, false
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	return nil, false
}

func (c *RsvpPageController) render(w http.ResponseWriter, r *http.Request, status int, page views.RsvpPage) {
	if err := views.RenderRsvpPage(w, status, page); err != nil {
		c.Logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
