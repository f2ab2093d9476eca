package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventory/docs"
	"eventory/internal/delivery/http/controllers"
	"eventory/internal/delivery/http/helpers"
	"eventory/internal/delivery/http/middleware"
	"eventory/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events   *controllers.EventController
	Forms    *controllers.FormController
	Rsvps    *controllers.RsvpController
	RsvpPage *controllers.RsvpPageController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Events and forms
	mux.HandleFunc("POST /api/create", c.Events.CreateEvent)
	mux.HandleFunc("PUT /api/create", c.Forms.UpdateForm)
	mux.HandleFunc("GET /api/events/{eventID}", c.Events.GetEvent)
	mux.HandleFunc("GET /api/forms/{formID}", c.Forms.GetForm)
	mux.HandleFunc("PATCH /api/forms/{formID}", c.Forms.PatchForm)

	// RSVP
	mux.HandleFunc("POST /api/rsvp", c.Rsvps.Submit)
	mux.HandleFunc("GET /api/events/{eventID}/responses", c.Rsvps.ListResponses)
	mux.HandleFunc("GET /rsvp/{eventID}", c.RsvpPage.Show)
	mux.HandleFunc("POST /rsvp/{eventID}", c.RsvpPage.Submit)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, helpers.SuccessResponse{Success: true})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// MiddlewareConfig configures the chain applied by WithMiddleware.
type MiddlewareConfig struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	AllowedOrigins []string
}

// WithMiddleware wraps h with request logging, CORS and identity resolution, outermost first.
func WithMiddleware(h http.Handler, cfg MiddlewareConfig) http.Handler {
	h = middleware.ResolveIdentity(cfg.Verifier, cfg.Logger, h)
	h = middleware.CORS(cfg.AllowedOrigins, h)
	return middleware.LoggingMiddleware(cfg.Logger, h)
}
