// Package publisher posts the final tweet to the X v2 API, or prints a
// console preview instead when dry-run mode is on.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dghubble/oauth1"

	"auto_x_tweet_publisher/format"
)

const defaultAPIBase = "https://api.x.com/2"

// PublishError reports a rejected or failed publish attempt. Status carries
// the HTTP status from the API and is zero for transport failures.
type PublishError struct {
	Status int
	Detail string
	Err    error
}

func (e *PublishError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("publish failed: %v", e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("publish rejected: %s (status %d)", e.Detail, e.Status)
	}
	return "publish rejected: " + e.Detail
}

func (e *PublishError) Unwrap() error { return e.Err }

// Result reports what Publish did. Preview is true when the post was only
// printed because it was marked dry-run.
type Result struct {
	ID      string
	Preview bool
}

type createTweetPayload struct {
	Text string `json:"text"`
}

type createTweetData struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type apiErrorEntry struct {
	Message string `json:"message"`
}

type createTweetResp struct {
	Data   *createTweetData `json:"data"`
	Title  string           `json:"title"`
	Detail string           `json:"detail"`
	Status int              `json:"status"`
	Errors []apiErrorEntry  `json:"errors"`
}

// Publisher holds the signed HTTP client and output sink for one run.
type Publisher struct {
	client  *http.Client
	apiBase string
	out     io.Writer
	verbose bool
	logger  *log.Logger
}

// New creates a Publisher. A nil client gets an OAuth1-signing default built
// from the configured credentials; the credentials are only required then,
// and only when dry-run mode is off. A nil out falls back to os.Stdout.
func New(cfg Config, client *http.Client, out io.Writer, verbose bool, logger *log.Logger) (*Publisher, error) {
	if client == nil {
		if cfg.DryRun {
			client = &http.Client{Timeout: 60 * time.Second}
		} else {
			if cfg.APIKey == "" || cfg.APISecret == "" || cfg.AccessToken == "" || cfg.AccessSecret == "" {
				return nil, errors.New("config must include api key, api secret, access token, and access secret")
			}
			oc := oauth1.NewConfig(cfg.APIKey, cfg.APISecret)
			token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
			client = oc.Client(oauth1.NoContext, token)
			client.Timeout = 60 * time.Second
		}
	}
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.Default()
	}
	base := cfg.APIBase
	if base == "" {
		base = defaultAPIBase
	}

	return &Publisher{
		client:  client,
		apiBase: base,
		out:     out,
		verbose: verbose,
		logger:  logger,
	}, nil
}

func (p *Publisher) infof(format string, args ...interface{}) {
	if !p.verbose {
		return
	}
	p.logger.Printf("[INFO] "+format, args...)
}

// Publish sends the post to the API. A post marked dry-run is printed to the
// output sink instead and never leaves the machine.
func (p *Publisher) Publish(ctx context.Context, post format.Post) (Result, error) {
	if post.Body == "" {
		return Result{}, errors.New("post body is required")
	}

	if post.DryRun {
		p.infof("dry run enabled, tweet not posted")
		fmt.Fprintf(p.out, "\n--- TWEET PREVIEW ---\n\n%s\n\n--------------------\n\n", post.Body)
		return Result{Preview: true}, nil
	}

	id, err := createTweet(ctx, p.client, p.apiBase, post.Body)
	if err != nil {
		return Result{}, err
	}
	p.infof("tweet created: id=%s", id)

	return Result{ID: id}, nil
}

func createTweet(ctx context.Context, client *http.Client, apiBase, text string) (string, error) {
	payload, err := json.Marshal(createTweetPayload{Text: text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiBase+"/tweets", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", &PublishError{Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

	var data createTweetResp
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", &PublishError{Status: resp.StatusCode, Detail: "malformed response", Err: err}
	}
	if data.Data == nil || data.Data.ID == "" {
		return "", &PublishError{Status: resp.StatusCode, Detail: errorDetail(data)}
	}
	return data.Data.ID, nil
}

func errorDetail(data createTweetResp) string {
	switch {
	case data.Title != "" && data.Detail != "":
		return fmt.Sprintf("%s: %s", data.Title, data.Detail)
	case data.Detail != "":
		return data.Detail
	case len(data.Errors) > 0 && data.Errors[0].Message != "":
		return data.Errors[0].Message
	default:
		return "tweet was not created"
	}
}
