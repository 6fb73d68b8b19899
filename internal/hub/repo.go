package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// RepoOptions controls repository creation.
type RepoOptions struct {
	Private bool
	// ExistOK makes creating an existing repository a no-op.
	ExistOK bool
}

type createRepoRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Private      bool   `json:"private"`
}

type createRepoResponse struct {
	URL string `json:"url"`
}

// CreateRepo creates repoID as a model repository.
// It returns the repository URL, which is empty when an existing
// repository was accepted because of ExistOK.
func (c *Client) CreateRepo(ctx context.Context, repoID string, opts RepoOptions) (string, error) {
	namespace, name, err := SplitRepoID(repoID)
	if err != nil {
		return "", err
	}

	res, err := c.api.R().
		SetContext(ctx).
		SetBody(createRepoRequest{
			Name:         name,
			Organization: namespace,
			Private:      opts.Private,
		}).
		Post("/api/repos/create")
	if err != nil {
		return "", &NetworkError{Op: "create repo", Err: err}
	}

	if err := checkResponse(res, repoID); err != nil {
		if opts.ExistOK && IsConflict(err) {
			slog.Info("repository already exists", "repo", repoID)
			return "", nil
		}
		return "", err
	}

	var out createRepoResponse
	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return "", fmt.Errorf("parse create repo response: %w", err)
	}
	slog.Info("created repository", "repo", repoID, "private", opts.Private, "url", out.URL)
	return out.URL, nil
}
