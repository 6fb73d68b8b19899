package hub

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// sampleSize is how much of each file the Hub inspects to pick an upload mode.
	sampleSize = 512
	// preuploadBatchSize caps the number of files per preupload request.
	preuploadBatchSize = 256

	uploadModeLFS     = "lfs"
	uploadModeRegular = "regular"
)

// localFile is one file found under the folder being uploaded.
type localFile struct {
	AbsPath    string
	RepoPath   string // slash-separated, relative to the folder
	Size       int64
	SHA256     string
	Sample     []byte
	UploadMode string
}

// CommitInfo describes a completed upload.
type CommitInfo struct {
	CommitURL string `json:"commitUrl"`
	CommitOID string `json:"commitOid"`
	Files     int    `json:"-"`
	LFSFiles  int    `json:"-"`
	Bytes     int64  `json:"-"`
	// Skipped lists symlinked directories left out of the commit.
	Skipped []string `json:"-"`
}

// UploadFolder uploads every file under folderPath to repoID in one commit.
func (c *Client) UploadFolder(ctx context.Context, repoID, folderPath, commitMessage string) (*CommitInfo, error) {
	if _, _, err := SplitRepoID(repoID); err != nil {
		return nil, err
	}

	files, skipped, err := scanFolder(folderPath)
	if err != nil {
		return nil, err
	}
	slog.Info("scanned folder", "path", folderPath, "files", len(files), "skipped", len(skipped))

	files, err = c.preupload(ctx, repoID, files)
	if err != nil {
		return nil, err
	}

	var lfsFiles []*localFile
	for _, f := range files {
		if f.UploadMode == uploadModeLFS {
			lfsFiles = append(lfsFiles, f)
		}
	}
	if len(lfsFiles) > 0 {
		if err := c.uploadLFS(ctx, repoID, lfsFiles); err != nil {
			return nil, err
		}
	}

	info, err := c.commit(ctx, repoID, commitMessage, files)
	if err != nil {
		return nil, err
	}
	info.Files = len(files)
	info.LFSFiles = len(lfsFiles)
	info.Skipped = skipped
	for _, f := range files {
		info.Bytes += f.Size
	}

	slog.Info("committed folder",
		"repo", repoID,
		"commit", info.CommitOID,
		"files", info.Files,
		"lfs_files", info.LFSFiles,
		"bytes", info.Bytes,
	)
	return info, nil
}

// ignoredDir reports whether a directory is never uploaded.
func ignoredDir(rel, name string) bool {
	return name == ".git" || rel == ".cache/huggingface"
}

// scanFolder lists and hashes all files under root. Symlinks to files are
// read through and uploaded under the link's path. Symlinks to directories
// are not followed; their repo paths come back in skipped.
func scanFolder(root string) (files []*localFile, skipped []string, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, &LocalPathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, nil, &LocalPathError{Path: root, Err: errors.New("not a directory")}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && ignoredDir(rel, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("resolve symlink %s: %w", rel, err)
			}
			if target.IsDir() {
				slog.Warn("skipping symlinked directory", "path", rel)
				skipped = append(skipped, rel)
				return nil
			}
			if !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		f, err := hashFile(path)
		if err != nil {
			return err
		}
		f.RepoPath = rel
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, nil, &LocalPathError{Path: root, Err: err}
	}
	if len(files) == 0 {
		return nil, nil, &LocalPathError{Path: root, Err: errors.New("no files to upload")}
	}
	return files, skipped, nil
}

// hashFile computes the size, SHA256 and leading sample of a file.
func hashFile(path string) (*localFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	sample := make([]byte, sampleSize)
	n, err := io.ReadFull(fh, sample)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	sample = sample[:n]

	h := sha256.New()
	h.Write(sample)
	rest, err := io.Copy(h, fh)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", path, err)
	}

	return &localFile{
		AbsPath: path,
		Size:    int64(n) + rest,
		SHA256:  hex.EncodeToString(h.Sum(nil)),
		Sample:  sample,
	}, nil
}

type preuploadFile struct {
	Path   string `json:"path"`
	Sample string `json:"sample"`
	Size   int64  `json:"size"`
}

type preuploadRequest struct {
	Files []preuploadFile `json:"files"`
}

type preuploadResponse struct {
	Files []struct {
		Path         string `json:"path"`
		UploadMode   string `json:"uploadMode"`
		ShouldIgnore bool   `json:"shouldIgnore"`
	} `json:"files"`
}

// preupload asks the Hub how each file must be uploaded and drops ignored files.
func (c *Client) preupload(ctx context.Context, repoID string, files []*localFile) ([]*localFile, error) {
	byPath := make(map[string]*localFile, len(files))
	for _, f := range files {
		byPath[f.RepoPath] = f
	}

	ignored := make(map[string]bool)
	for start := 0; start < len(files); start += preuploadBatchSize {
		end := min(start+preuploadBatchSize, len(files))

		req := preuploadRequest{Files: make([]preuploadFile, 0, end-start)}
		for _, f := range files[start:end] {
			req.Files = append(req.Files, preuploadFile{
				Path:   f.RepoPath,
				Sample: base64.StdEncoding.EncodeToString(f.Sample),
				Size:   f.Size,
			})
		}

		res, err := c.api.R().
			SetContext(ctx).
			SetBody(req).
			Post(fmt.Sprintf("/api/models/%s/preupload/%s", repoID, c.revision))
		if err != nil {
			return nil, &NetworkError{Op: "preupload", Err: err}
		}
		if err := checkResponse(res, repoID); err != nil {
			return nil, err
		}

		var out preuploadResponse
		if err := json.Unmarshal(res.Body(), &out); err != nil {
			return nil, fmt.Errorf("parse preupload response: %w", err)
		}
		for _, rf := range out.Files {
			f, ok := byPath[rf.Path]
			if !ok {
				continue
			}
			if rf.ShouldIgnore {
				ignored[rf.Path] = true
				continue
			}
			f.UploadMode = rf.UploadMode
		}
	}

	kept := make([]*localFile, 0, len(files))
	for _, f := range files {
		if ignored[f.RepoPath] {
			slog.Debug("skipping ignored file", "path", f.RepoPath)
			continue
		}
		if f.UploadMode == "" {
			f.UploadMode = uploadModeRegular
		}
		kept = append(kept, f)
	}
	return kept, nil
}

type commitLine struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type commitHeader struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

type commitFile struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Encoding string `json:"encoding"`
}

type commitLFSFile struct {
	Path string `json:"path"`
	Algo string `json:"algo"`
	OID  string `json:"oid"`
}

// commitPayload renders the NDJSON body of a commit request.
func commitPayload(message string, files []*localFile) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	if err := enc.Encode(commitLine{Key: "header", Value: commitHeader{Summary: message}}); err != nil {
		return nil, err
	}
	for _, f := range files {
		var line commitLine
		if f.UploadMode == uploadModeLFS {
			line = commitLine{Key: "lfsFile", Value: commitLFSFile{Path: f.RepoPath, Algo: "sha256", OID: f.SHA256}}
		} else {
			content, err := os.ReadFile(f.AbsPath)
			if err != nil {
				return nil, &LocalPathError{Path: f.AbsPath, Err: err}
			}
			line = commitLine{Key: "file", Value: commitFile{
				Content:  base64.StdEncoding.EncodeToString(content),
				Path:     f.RepoPath,
				Encoding: "base64",
			}}
		}
		if err := enc.Encode(line); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (c *Client) commit(ctx context.Context, repoID, message string, files []*localFile) (*CommitInfo, error) {
	payload, err := commitPayload(message, files)
	if err != nil {
		return nil, err
	}

	res, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-ndjson").
		SetBody(payload).
		Post(fmt.Sprintf("/api/models/%s/commit/%s", repoID, c.revision))
	if err != nil {
		return nil, &NetworkError{Op: "commit", Err: err}
	}
	if err := checkResponse(res, repoID); err != nil {
		return nil, err
	}

	var info CommitInfo
	if err := json.Unmarshal(res.Body(), &info); err != nil {
		return nil, fmt.Errorf("parse commit response: %w", err)
	}
	return &info, nil
}

// repoPaths returns the repository paths of files, for logging.
func repoPaths(files []*localFile) string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.RepoPath)
	}
	return strings.Join(paths, ",")
}
