// Command validator-cli is a small operator console for the incentive
// engine's HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

type options struct {
	BaseURL string        `long:"base-url" env:"ENGINE_BASE_URL" description:"engine base URL" default:"http://127.0.0.1:8000"`
	Timeout time.Duration `long:"timeout" env:"ENGINE_TIMEOUT" description:"request timeout" default:"10s"`
}

var opts options

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	commands := []struct {
		name  string
		short string
		cmd   flags.Commander
	}{
		{"record", "record a validator work event", &recordCommand{}},
		{"stats", "show one validator's statistics", &statsCommand{}},
		{"leaderboard", "show the top validators", &leaderboardCommand{}},
		{"calculate", "compute rewards without paying them", &calculateCommand{}},
		{"settle", "settle a validator's earned rewards", &settleCommand{}},
		{"vault", "show treasury state and health", &vaultCommand{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type recordCommand struct {
	Validator  string   `long:"validator" description:"validator identity" required:"true"`
	EventType  string   `long:"event-type" description:"event type" required:"true"`
	CapsuleID  string   `long:"capsule" description:"capsule identifier"`
	GriefScore *float64 `long:"grief-score" description:"grief score, 0 to 10"`
	Confidence *float64 `long:"confidence" description:"confidence, 0 to 100"`
	Quality    string   `long:"quality" description:"work quality grade" choice:"high" choice:"medium" choice:"low"`
}

func (c *recordCommand) Execute([]string) error {
	body := map[string]any{
		"validator": c.Validator,
		"eventType": c.EventType,
	}
	if c.CapsuleID != "" {
		body["capsuleId"] = c.CapsuleID
	}
	if c.GriefScore != nil {
		body["griefScore"] = *c.GriefScore
	}
	if c.Confidence != nil {
		body["confidence"] = *c.Confidence
	}
	if c.Quality != "" {
		body["metadata"] = map[string]any{"quality": c.Quality}
	}
	return call(http.MethodPost, "/v1/events", body)
}

type statsCommand struct {
	Validator string `long:"validator" description:"validator identity" required:"true"`
}

func (c *statsCommand) Execute([]string) error {
	return call(http.MethodGet, "/v1/validators/"+url.PathEscape(c.Validator)+"/stats", nil)
}

type leaderboardCommand struct {
	Limit int `long:"limit" description:"number of validators to show" default:"10"`
}

func (c *leaderboardCommand) Execute([]string) error {
	return call(http.MethodGet, fmt.Sprintf("/v1/validators/top?limit=%d", c.Limit), nil)
}

type calculateCommand struct {
	Validator  string  `long:"validator" description:"validator identity, empty for all"`
	RewardRate float64 `long:"rate" description:"reward rate multiplier" default:"1.0"`
}

func (c *calculateCommand) Execute([]string) error {
	return call(http.MethodPost, "/v1/rewards/calculate", map[string]any{
		"validator":  c.Validator,
		"rewardRate": c.RewardRate,
	})
}

type settleCommand struct {
	Validator  string  `long:"validator" description:"validator identity" required:"true"`
	RewardRate float64 `long:"rate" description:"reward rate multiplier" default:"1.0"`
	Pending    bool    `long:"pending" description:"retry accrued pending rewards instead"`
}

func (c *settleCommand) Execute([]string) error {
	if c.Pending {
		return call(http.MethodPost, "/v1/settlements/pending", map[string]any{
			"validator": c.Validator,
		})
	}
	return call(http.MethodPost, "/v1/settlements", map[string]any{
		"validator":  c.Validator,
		"rewardRate": c.RewardRate,
	})
}

type vaultCommand struct {
	Health bool `long:"health" description:"show the health score instead of the full snapshot"`
}

func (c *vaultCommand) Execute([]string) error {
	if c.Health {
		return call(http.MethodGet, "/v1/vault/health", nil)
	}
	return call(http.MethodGet, "/v1/vault/stats", nil)
}

func call(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, opts.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		pretty.Write(raw)
	}
	fmt.Println(pretty.String())

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("engine returned %s", resp.Status)
	}
	return nil
}
