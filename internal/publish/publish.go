// Package publish runs publish tasks against a model registry.
package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/d2verb/uqffpub/internal/hub"
	"github.com/d2verb/uqffpub/internal/task"
	"github.com/d2verb/uqffpub/internal/ui"
)

// DefaultCommitMessage tags every upload.
const DefaultCommitMessage = "Upload model"

// Registry is the remote side of a publish run.
type Registry interface {
	CreateRepo(ctx context.Context, repoID string, opts hub.RepoOptions) (string, error)
	UploadFolder(ctx context.Context, repoID, folderPath, commitMessage string) (*hub.CommitInfo, error)
}

// Step names the stage a task failed in.
type Step string

const (
	StepCreateRepo Step = "create repository"
	StepUpload     Step = "upload folder"
)

// TaskError reports which task and step stopped a run.
type TaskError struct {
	Task task.Task
	Step Step
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Task.SourceID, e.Step, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// Publisher creates and fills one private repository per task.
type Publisher struct {
	registry      Registry
	commitMessage string
	dryRun        bool
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithCommitMessage overrides DefaultCommitMessage.
func WithCommitMessage(msg string) Option {
	return func(p *Publisher) {
		if msg != "" {
			p.commitMessage = msg
		}
	}
}

// WithDryRun announces tasks without calling the registry.
func WithDryRun(dryRun bool) Option {
	return func(p *Publisher) {
		p.dryRun = dryRun
	}
}

// New creates a publisher backed by registry.
func New(registry Registry, opts ...Option) *Publisher {
	p := &Publisher{
		registry:      registry,
		commitMessage: DefaultCommitMessage,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run publishes tasks in order and stops at the first failure.
// It returns the number of tasks that completed.
func (p *Publisher) Run(ctx context.Context, tasks []task.Task) (int, error) {
	for i, t := range tasks {
		if err := p.publish(ctx, t); err != nil {
			slog.Error("publish failed", "model", t.SourceID, "repo", t.TargetRepoID, "error", err)
			return i, err
		}
	}
	return len(tasks), nil
}

func (p *Publisher) publish(ctx context.Context, t task.Task) error {
	ui.PrintBanner(t.String())

	if p.dryRun {
		ui.PrintInfo(fmt.Sprintf("Would upload %s to %s (private)", t.FolderPath, t.TargetRepoID))
		return nil
	}

	slog.Info("publishing", "model", t.SourceID, "repo", t.TargetRepoID, "folder", t.FolderPath)

	if _, err := p.registry.CreateRepo(ctx, t.TargetRepoID, hub.RepoOptions{Private: true, ExistOK: true}); err != nil {
		return &TaskError{Task: t, Step: StepCreateRepo, Err: err}
	}

	info, err := p.registry.UploadFolder(ctx, t.TargetRepoID, t.FolderPath, p.commitMessage)
	if err != nil {
		return &TaskError{Task: t, Step: StepUpload, Err: err}
	}

	if info == nil {
		ui.PrintSuccess(fmt.Sprintf("Uploaded to %s", t.TargetRepoID))
		return nil
	}
	for _, path := range info.Skipped {
		ui.PrintWarning(fmt.Sprintf("Skipped symlinked directory %s", path))
	}
	if info.CommitURL != "" {
		ui.PrintSuccess(fmt.Sprintf("Uploaded %d file(s) (%s) to %s", info.Files, ui.FormatSize(info.Bytes), info.CommitURL))
	} else {
		ui.PrintSuccess(fmt.Sprintf("Uploaded to %s", t.TargetRepoID))
	}
	return nil
}
