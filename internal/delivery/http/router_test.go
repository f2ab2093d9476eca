package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventory/internal/adapters/auth"
	"eventory/internal/adapters/email"
	"eventory/internal/adapters/notify"
	deliveryhttp "eventory/internal/delivery/http"
	"eventory/internal/delivery/http/controllers"
	"eventory/internal/repository/memory"
	"eventory/internal/services"
)

const testSecret = "router-test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()

	mailer, err := email.NewMailer(email.MailerConfig{Provider: email.ProviderNoop}, logger)
	require.NoError(t, err)
	publisher, err := notify.NewPublisher(notify.Config{Provider: notify.ProviderNoop}, logger)
	require.NoError(t, err)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	eventService := services.NewEventService(store.Events(), false, 2*time.Second)
	formService := services.NewFormService(store.Forms(), store.Events(), 2*time.Second)
	rsvpService := services.NewRsvpService(store.Forms(), store.Events(), store.Responses(), emailService, publisher, logger, 2*time.Second)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Events:   controllers.NewEventController(logger, eventService),
		Forms:    controllers.NewFormController(logger, formService),
		Rsvps:    controllers.NewRsvpController(logger, rsvpService),
		RsvpPage: controllers.NewRsvpPageController(logger, formService, rsvpService),
	})
	handler := deliveryhttp.WithMiddleware(mux, deliveryhttp.MiddlewareConfig{
		Logger:         logger,
		Verifier:       auth.NewJWT(testSecret),
		AllowedOrigins: []string{"*"},
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func messages(t *testing.T, body map[string]any) []string {
	t.Helper()
	issues, ok := body["error"].([]any)
	require.True(t, ok, "expected issue list in %v", body)
	var out []string
	for _, is := range issues {
		out = append(out, is.(map[string]any)["message"].(string))
	}
	return out
}

func TestRouter_CreateThenReadForm(t *testing.T) {
	srv := newTestServer(t)

	status, body := do(t, srv, http.MethodPost, "/api/create",
		`{"name":"Annual Meetup","location":"Berlin","eventDate":"2025-06-01","publicEvent":true}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	eventID, _ := body["eventId"].(string)
	require.NotEmpty(t, eventID)

	status, body = do(t, srv, http.MethodGet, "/api/forms/"+eventID, "", "")
	require.Equal(t, http.StatusOK, status)
	form := body["form"].(map[string]any)
	assert.Equal(t, "Annual Meetup", form["form_title"])
	assert.Equal(t, eventID, form["form_id"])

	status, body = do(t, srv, http.MethodGet, "/api/events/"+eventID, "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Berlin", body["event"].(map[string]any)["location"])
}

func TestRouter_CreateRejectsShortFields(t *testing.T) {
	srv := newTestServer(t)

	status, body := do(t, srv, http.MethodPost, "/api/create", `{"name":"Hi","location":"NYC"}`, "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid Payload", body["message"])
	assert.Contains(t, messages(t, body), "Enter at least 4 characters long")
}

func TestRouter_UpdateForm(t *testing.T) {
	srv := newTestServer(t)
	_, body := do(t, srv, http.MethodPost, "/api/create", `{"name":"Annual Meetup","location":"Berlin"}`, "")
	eventID := body["eventId"].(string)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "put updates title",
			method:     http.MethodPut,
			path:       "/api/create",
			body:       `{"form_id":"` + eventID + `","form_title":"Summer Party"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "patch uses path id",
			method:     http.MethodPatch,
			path:       "/api/forms/" + eventID,
			body:       `{"button_label":"Count me in"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown form",
			method:     http.MethodPut,
			path:       "/api/create",
			body:       `{"form_id":"does-not-exist","form_title":"X"}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Form not found",
		},
		{
			name:       "unknown field",
			method:     http.MethodPut,
			path:       "/api/create",
			body:       `{"form_id":"` + eventID + `","colour":"red"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid Payload",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, srv, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])
			}
		})
	}

	_, body = do(t, srv, http.MethodGet, "/api/forms/"+eventID, "", "")
	form := body["form"].(map[string]any)
	assert.Equal(t, "Summer Party", form["form_title"])
	assert.Equal(t, "Count me in", form["button_label"])
}

func TestRouter_RsvpFlow(t *testing.T) {
	srv := newTestServer(t)
	token, err := auth.NewJWT(testSecret).Issue("host-1", time.Hour)
	require.NoError(t, err)

	_, body := do(t, srv, http.MethodPost, "/api/create", `{"name":"Annual Meetup","location":"Berlin"}`, token)
	eventID := body["eventId"].(string)

	status, body := do(t, srv, http.MethodPost, "/api/rsvp",
		`{"name":"Ada","email":"ada@example.com","attending":"going","event_id":"`+eventID+`"}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["responseId"])

	status, body = do(t, srv, http.MethodPost, "/api/rsvp", `{"attending":"going","event_id":"missing"}`, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Event not found", body["message"])

	status, _ = do(t, srv, http.MethodGet, "/api/events/"+eventID+"/responses", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = do(t, srv, http.MethodGet, "/api/events/"+eventID+"/responses", "", token)
	require.Equal(t, http.StatusOK, status)
	responses := body["responses"].([]any)
	require.Len(t, responses, 1)
	assert.Equal(t, "Ada", responses[0].(map[string]any)["name"])

	other, err := auth.NewJWT(testSecret).Issue("someone-else", time.Hour)
	require.NoError(t, err)
	status, _ = do(t, srv, http.MethodPut, "/api/create", `{"form_id":"`+eventID+`","form_title":"Hijacked"}`, other)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRouter_RsvpPageAndHealth(t *testing.T) {
	srv := newTestServer(t)
	_, body := do(t, srv, http.MethodPost, "/api/create", `{"name":"Annual Meetup","location":"Berlin"}`, "")
	eventID := body["eventId"].(string)

	resp, err := srv.Client().Get(srv.URL + "/rsvp/" + eventID)
	require.NoError(t, err)
	page, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(page), "Annual Meetup")

	resp, err = srv.Client().Get(srv.URL + "/rsvp/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	status, body := do(t, srv, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
}
