package main

import (
	"fmt"

	"github.com/d2verb/uqffpub/internal/catalog"
	"github.com/d2verb/uqffpub/internal/config"
	"github.com/d2verb/uqffpub/internal/hub"
	"github.com/d2verb/uqffpub/internal/pathutil"
	"github.com/d2verb/uqffpub/internal/publish"
	"github.com/d2verb/uqffpub/internal/task"
	"github.com/d2verb/uqffpub/internal/ui"
)

// newRegistry creates the registry client. Can be replaced for testing.
var newRegistry = func(endpoint, token string) publish.Registry {
	return hub.NewClient(endpoint, token)
}

func getPaths() (*config.Paths, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

// loadEntries returns the manifest entries, or the built-in list when manifest is empty.
func loadEntries(manifest string) ([]catalog.Entry, error) {
	if manifest == "" {
		return catalog.Default(), nil
	}
	entries, err := catalog.LoadFile(manifest)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	return entries, nil
}

// buildTasks maps entries to tasks whose folders live under baseDir.
func buildTasks(entries []catalog.Entry, namespace, baseDir string) ([]task.Task, error) {
	if err := task.ValidateNamespace(namespace); err != nil {
		return nil, errInvalidArgument(err)
	}

	tasks := catalog.Tasks(entries, namespace)
	for i := range tasks {
		path, err := pathutil.ResolveFolder(baseDir, tasks[i].LocalFolder)
		if err != nil {
			return nil, errInvalidArgument(fmt.Errorf("%s: %w", tasks[i].SourceID, err))
		}
		tasks[i].FolderPath = path
	}
	return tasks, nil
}

// publishTasks runs tasks against the configured registry.
func publishTasks(app *App, tasks []task.Task, token string, dryRun bool) error {
	var registry publish.Registry
	if !dryRun {
		registry = newRegistry(app.Config.Endpoint, token)
	}

	p := publish.New(registry,
		publish.WithCommitMessage(app.Config.CommitMessage),
		publish.WithDryRun(dryRun),
	)
	done, err := p.Run(app.Context, tasks)
	if len(tasks) > 1 {
		ui.PrintSummary(done, len(tasks))
	}
	return err
}
