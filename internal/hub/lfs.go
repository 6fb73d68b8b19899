package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
)

const lfsMediaType = "application/vnd.git-lfs+json"

type lfsObject struct {
	OID  string `json:"oid"`
	Size int64  `json:"size"`
}

type lfsRef struct {
	Name string `json:"name"`
}

type lfsBatchRequest struct {
	Operation string      `json:"operation"`
	Transfers []string    `json:"transfers"`
	Objects   []lfsObject `json:"objects"`
	HashAlgo  string      `json:"hash_algo"`
	Ref       lfsRef      `json:"ref"`
}

type lfsAction struct {
	Href   string            `json:"href"`
	Header map[string]string `json:"header"`
}

type lfsBatchObject struct {
	OID     string `json:"oid"`
	Size    int64  `json:"size"`
	Actions struct {
		Upload *lfsAction `json:"upload"`
		Verify *lfsAction `json:"verify"`
	} `json:"actions"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type lfsBatchResponse struct {
	Objects []lfsBatchObject `json:"objects"`
}

type completedPart struct {
	PartNumber int    `json:"partNumber"`
	ETag       string `json:"etag"`
}

type multipartCompletion struct {
	OID   string          `json:"oid"`
	Parts []completedPart `json:"parts"`
}

// uploadLFS pushes the contents of large files to LFS storage.
// Objects the Hub already holds come back without an upload action and are skipped.
func (c *Client) uploadLFS(ctx context.Context, repoID string, files []*localFile) error {
	slog.Debug("requesting lfs batch", "repo", repoID, "files", repoPaths(files))

	req := lfsBatchRequest{
		Operation: "upload",
		Transfers: []string{"basic", "multipart"},
		HashAlgo:  "sha256",
		Ref:       lfsRef{Name: c.revision},
	}
	byOID := make(map[string]*localFile, len(files))
	for _, f := range files {
		req.Objects = append(req.Objects, lfsObject{OID: f.SHA256, Size: f.Size})
		byOID[f.SHA256] = f
	}

	res, err := c.api.R().
		SetContext(ctx).
		SetHeader("Accept", lfsMediaType).
		SetHeader("Content-Type", lfsMediaType).
		SetBody(req).
		Post(fmt.Sprintf("/%s.git/info/lfs/objects/batch", repoID))
	if err != nil {
		return &NetworkError{Op: "lfs batch", Err: err}
	}
	if err := checkResponse(res, repoID); err != nil {
		return err
	}

	var out lfsBatchResponse
	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return fmt.Errorf("parse lfs batch response: %w", err)
	}

	for _, obj := range out.Objects {
		if obj.Error != nil {
			return &APIError{StatusCode: obj.Error.Code, Message: obj.Error.Message}
		}
		f, ok := byOID[obj.OID]
		if !ok {
			continue
		}
		if obj.Actions.Upload == nil {
			slog.Debug("lfs object already present", "path", f.RepoPath, "oid", f.SHA256)
			continue
		}

		slog.Info("uploading lfs object", "path", f.RepoPath, "size", f.Size)
		if err := c.uploadObject(ctx, f, obj.Actions.Upload); err != nil {
			return fmt.Errorf("upload %s: %w", f.RepoPath, err)
		}
		if obj.Actions.Verify != nil {
			if err := c.verifyObject(ctx, repoID, f, obj.Actions.Verify); err != nil {
				return fmt.Errorf("verify %s: %w", f.RepoPath, err)
			}
		}
	}
	return nil
}

func (c *Client) uploadObject(ctx context.Context, f *localFile, action *lfsAction) error {
	if _, ok := action.Header["chunk_size"]; ok {
		return c.uploadMultipart(ctx, f, action)
	}

	content, err := os.ReadFile(f.AbsPath)
	if err != nil {
		return &LocalPathError{Path: f.AbsPath, Err: err}
	}

	res, err := c.storage.R().
		SetContext(ctx).
		SetHeaders(action.Header).
		SetBody(content).
		Put(action.Href)
	if err != nil {
		return &NetworkError{Op: "lfs upload", Err: err}
	}
	return checkResponse(res, "")
}

// partURLs returns the numbered part URLs of a multipart action in part order.
func partURLs(header map[string]string) ([]string, error) {
	type part struct {
		n   int
		url string
	}
	var parts []part
	for k, v := range header {
		if k == "chunk_size" {
			continue
		}
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		parts = append(parts, part{n: n, url: v})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("multipart upload without part urls")
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].n < parts[j].n })

	urls := make([]string, len(parts))
	for i, p := range parts {
		urls[i] = p.url
	}
	return urls, nil
}

func (c *Client) uploadMultipart(ctx context.Context, f *localFile, action *lfsAction) error {
	chunkSize, err := strconv.ParseInt(action.Header["chunk_size"], 10, 64)
	if err != nil || chunkSize <= 0 {
		return fmt.Errorf("invalid chunk_size %q", action.Header["chunk_size"])
	}
	urls, err := partURLs(action.Header)
	if err != nil {
		return err
	}

	fh, err := os.Open(f.AbsPath)
	if err != nil {
		return &LocalPathError{Path: f.AbsPath, Err: err}
	}
	defer fh.Close()

	completion := multipartCompletion{OID: f.SHA256}
	for i, url := range urls {
		offset := int64(i) * chunkSize
		chunk := make([]byte, min(chunkSize, max(f.Size-offset, 0)))
		if _, err := fh.ReadAt(chunk, offset); err != nil && err != io.EOF {
			return &LocalPathError{Path: f.AbsPath, Err: err}
		}

		res, err := c.storage.R().
			SetContext(ctx).
			SetBody(chunk).
			Put(url)
		if err != nil {
			return &NetworkError{Op: "lfs upload part", Err: err}
		}
		if err := checkResponse(res, ""); err != nil {
			return err
		}

		slog.Debug("uploaded part", "path", f.RepoPath, "part", i+1, "of", len(urls))
		completion.Parts = append(completion.Parts, completedPart{
			PartNumber: i + 1,
			ETag:       res.Header().Get("ETag"),
		})
	}

	res, err := c.storage.R().
		SetContext(ctx).
		SetHeader("Accept", lfsMediaType).
		SetHeader("Content-Type", lfsMediaType).
		SetBody(completion).
		Post(action.Href)
	if err != nil {
		return &NetworkError{Op: "lfs complete multipart", Err: err}
	}
	return checkResponse(res, "")
}

func (c *Client) verifyObject(ctx context.Context, repoID string, f *localFile, action *lfsAction) error {
	res, err := c.api.R().
		SetContext(ctx).
		SetHeaders(action.Header).
		SetBody(lfsObject{OID: f.SHA256, Size: f.Size}).
		Post(action.Href)
	if err != nil {
		return &NetworkError{Op: "lfs verify", Err: err}
	}
	return checkResponse(res, repoID)
}
