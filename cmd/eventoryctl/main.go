package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"eventory/internal/adapters/auth"
	"eventory/internal/domain"
	"eventory/internal/repository/postgres"
	"eventory/internal/rsvpform"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "eventoryctl",
		Usage: "Operate an Eventory deployment.",
		Commands: []*cli.Command{
			tokenCommand(),
			migrateCommand(),
			rsvpCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint a bearer token for a user id.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Required: true, Usage: "User id placed in the token subject."},
			&cli.DurationFlag{Name: "expiry", Value: 24 * time.Hour, Usage: "Token lifetime."},
			&cli.StringFlag{Name: "secret", EnvVars: []string{"JWT_SECRET"}, Usage: "HMAC secret shared with the server."},
		},
		Action: func(c *cli.Context) error {
			secret := c.String("secret")
			if secret == "" {
				return fmt.Errorf("JWT_SECRET or --secret is required")
			}
			token, err := auth.NewJWT(secret).Issue(c.String("user"), c.Duration("expiry"))
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the Postgres tables if they do not exist.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "database-url", EnvVars: []string{"DATABASE_URL"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			db, err := postgres.Open(c.Context, c.String("database-url"))
			if err != nil {
				return err
			}
			defer db.Close()
			if err := postgres.Migrate(c.Context, db); err != nil {
				return err
			}
			slog.Info("schema applied")
			return nil
		},
	}
}

func rsvpCommand() *cli.Command {
	return &cli.Command{
		Name:  "rsvp",
		Usage: "Answer an event's RSVP form against a running server.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", EnvVars: []string{"SERVER_URL"}, Value: "http://localhost:8080/"},
			&cli.StringFlag{Name: "event", Required: true, Usage: "Event id."},
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "attending", Value: string(domain.AttendanceGoing), Usage: "going, not_sure or not_going."},
		},
		Action: func(c *cli.Context) error {
			client := &http.Client{Timeout: 10 * time.Second}
			def, err := fetchForm(c.Context, client, c.String("server"), c.String("event"))
			if err != nil {
				return err
			}
			form := rsvpform.New(def, rsvpform.NewHTTPSubmitter(c.String("server"), client))
			state, err := form.Submit(c.Context, rsvpform.Values{
				Name:      c.String("name"),
				Email:     c.String("email"),
				Attending: c.String("attending"),
			})
			if err != nil {
				for _, is := range state.Issues {
					fmt.Fprintf(c.App.ErrWriter, "%s: %s\n", is.Field(), is.Message)
				}
				return err
			}
			fmt.Fprintf(c.App.Writer, "RSVP recorded for %q: %s\n", def.Title, state.ResponseID)
			return nil
		},
	}
}

func fetchForm(ctx context.Context, client *http.Client, serverURL, eventID string) (*domain.RsvpForm, error) {
	url := strings.TrimSuffix(serverURL, "/") + "/api/forms/" + eventID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch form: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("form lookup returned status: %d", resp.StatusCode)
	}
	var body struct {
		Form *domain.RsvpForm `json:"form"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode form: %w", err)
	}
	if body.Form == nil {
		return nil, fmt.Errorf("form lookup returned no form")
	}
	return body.Form, nil
}
