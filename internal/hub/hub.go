// Package hub is a minimal HuggingFace Hub client for creating repositories
// and uploading folders to them.
package hub

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultEndpoint is the public HuggingFace Hub.
	DefaultEndpoint = "https://huggingface.co"

	defaultRevision = "main"
	userAgent       = "uqffpub"
)

// Client talks to a Hub endpoint with a single access token.
type Client struct {
	api      *resty.Client // authenticated, rooted at the endpoint
	storage  *resty.Client // pre-signed storage URLs, never authenticated
	revision string
}

// NewClient creates a client for endpoint authenticated with token.
// An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	api := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/")).
		SetHeader("User-Agent", userAgent)
	if token != "" {
		api.SetAuthToken(token)
	}
	return &Client{
		api:      api,
		storage:  resty.New().SetHeader("User-Agent", userAgent),
		revision: defaultRevision,
	}
}

// SplitRepoID splits "namespace/name" into its parts.
func SplitRepoID(repoID string) (namespace, name string, err error) {
	namespace, name, ok := strings.Cut(repoID, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repo id '%s': expected 'namespace/name'", repoID)
	}
	return namespace, name, nil
}

// errorBody is the JSON error shape returned by the Hub.
type errorBody struct {
	Error string `json:"error"`
}

func errorMessage(res *resty.Response) string {
	var body errorBody
	if err := json.Unmarshal(res.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}
	if msg := strings.TrimSpace(res.String()); msg != "" {
		return msg
	}
	return http.StatusText(res.StatusCode())
}

// checkResponse maps a non-2xx response to the package's error types.
func checkResponse(res *resty.Response, repoID string) error {
	if res.IsSuccess() {
		return nil
	}
	msg := errorMessage(res)
	slog.Debug("hub request failed",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"message", msg,
	)

	switch res.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return &NotFoundError{RepoID: repoID}
	case http.StatusConflict:
		return &ConflictError{RepoID: repoID, Message: msg}
	default:
		return &APIError{StatusCode: res.StatusCode(), Message: msg}
	}
}
