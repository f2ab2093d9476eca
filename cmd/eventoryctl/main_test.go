package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"eventory/internal/adapters/auth"
)

func TestTokenCommand(t *testing.T) {
	var out bytes.Buffer
	app := &cli.App{Writer: &out, Commands: []*cli.Command{tokenCommand()}}

	err := app.Run([]string{"eventoryctl", "token", "--user", "host-1", "--secret", "s3cret"})
	require.NoError(t, err)

	userID, err := auth.NewJWT("s3cret").Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "host-1", userID)
}

func TestTokenCommand_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	app := &cli.App{Writer: &bytes.Buffer{}, Commands: []*cli.Command{tokenCommand()}}

	err := app.Run([]string{"eventoryctl", "token", "--user", "host-1"})
	assert.Error(t, err)
}

func TestFetchForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/forms/ev-1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Form not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"form":{"form_id":"ev-1","form_title":"Annual Meetup","your_name_display":true}}`))
	}))
	defer srv.Close()

	form, err := fetchForm(context.Background(), srv.Client(), srv.URL+"/", "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "ev-1", form.ID)
	assert.Equal(t, "Annual Meetup", form.Title)
	assert.True(t, form.YourNameDisplay)

	_, err = fetchForm(context.Background(), srv.Client(), srv.URL, "missing")
	assert.ErrorContains(t, err, "404")
}
