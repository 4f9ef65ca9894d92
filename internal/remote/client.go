// Package remote provides the sync adapter to the shared document store.
//
// The remote store holds one document per entity instance, addressed by
// collection and document id. It is a propagation channel, never the
// authority: outbound writes are fire-and-forget, and the only inbound path
// is the one-shot pull at startup.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// Collection names, one per synced entity family.
const (
	CollectionQuestions   = "questions"
	CollectionUserStats   = "userStats"
	CollectionSettings    = "settings"
	CollectionActivityLog = "activityLog"
	CollectionDailyLog    = "dailyLog"
)

// SingletonID addresses the single document of the userStats and settings
// collections.
const SingletonID = "current"

// Collections lists every remote collection.
func Collections() []string {
	return []string{
		CollectionQuestions,
		CollectionUserStats,
		CollectionSettings,
		CollectionActivityLog,
		CollectionDailyLog,
	}
}

//go:generate mockgen -source=client.go -destination=../mocks/remote/mock_client.go -package=mock_remote

// Client talks to the remote document store.
type Client interface {
	// Put upserts a document with merge semantics: fields absent from doc are
	// preserved remotely.
	Put(ctx context.Context, collection, id string, doc any) error
	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
	// FetchAll returns every document in a collection.
	FetchAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	// DropCollection removes every document in a collection.
	DropCollection(ctx context.Context, collection string) error
}

// Config holds the connection parameters for the document store.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPClient implements Client against the document store's REST API.
type HTTPClient struct {
	config Config
	client *resty.Client
}

// NewHTTPClient creates a client for the document store at cfg.BaseURL.
func NewHTTPClient(cfg Config) *HTTPClient {
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &HTTPClient{config: cfg, client: client}
}

func (c *HTTPClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if c.config.APIKey != "" {
		req.SetHeader("x-api-key", c.config.APIKey)
	}
	return req
}

func (c *HTTPClient) documentURL(collection, id string) string {
	return fmt.Sprintf("%s/collections/%s/%s", c.config.BaseURL, collection, id)
}

func (c *HTTPClient) collectionURL(collection string) string {
	return fmt.Sprintf("%s/collections/%s", c.config.BaseURL, collection)
}

// Put upserts a single document.
func (c *HTTPClient) Put(ctx context.Context, collection, id string, doc any) error {
	res, err := c.request(ctx).
		SetQueryParam("merge", "true").
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Put(c.documentURL(collection, id))
	if err != nil {
		return fmt.Errorf("client.R().Put() > %w", err)
	}
	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusCreated {
		return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return nil
}

// Delete removes a single document.
func (c *HTTPClient) Delete(ctx context.Context, collection, id string) error {
	res, err := c.request(ctx).Delete(c.documentURL(collection, id))
	if err != nil {
		return fmt.Errorf("client.R().Delete() > %w", err)
	}
	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusNoContent && res.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return nil
}

// FetchAll returns every document in a collection. Transient failures are
// retried with backoff; pushes never are, but the startup pull is the one
// moment both sides can converge, so it is worth a few attempts.
func (c *HTTPClient) FetchAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var documents []json.RawMessage
	if err := retry.Do(
		func() error {
			res, err := c.request(ctx).Get(c.collectionURL(collection))
			if err != nil {
				return fmt.Errorf("client.R().Get() > %w", err)
			}
			if res.StatusCode() != http.StatusOK {
				return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
			}

			var payload struct {
				Documents []json.RawMessage `json:"documents"`
			}
			if err := json.Unmarshal(res.Body(), &payload); err != nil {
				return retry.Unrecoverable(fmt.Errorf("json.Unmarshal() > %w", err))
			}
			documents = payload.Documents
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
	); err != nil {
		return nil, err
	}
	return documents, nil
}

// DropCollection removes every document in a collection.
func (c *HTTPClient) DropCollection(ctx context.Context, collection string) error {
	res, err := c.request(ctx).Delete(c.collectionURL(collection))
	if err != nil {
		return fmt.Errorf("client.R().Delete() > %w", err)
	}
	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return nil
}
