package main

import (
	"github.com/d2verb/uqffpub/internal/catalog"
	"github.com/d2verb/uqffpub/internal/ui"
)

type ListCmd struct {
	Namespace string `short:"n" help:"Namespace used for target repository ids (default from config)"`
	Manifest  string `short:"f" type:"existingfile" help:"YAML manifest listing models (default: built-in list)"`
}

func (c *ListCmd) Run(app *App) error {
	entries, err := loadEntries(c.Manifest)
	if err != nil {
		return err
	}

	namespace := c.Namespace
	if namespace == "" {
		namespace = app.Config.Namespace
	}

	tasks, err := buildTasks(entries, namespace, "")
	if err != nil {
		return err
	}

	items := make([]ui.CatalogItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, ui.CatalogItem{
			Model:     t.SourceID,
			Target:    t.TargetRepoID,
			Artifacts: t.ArtifactNames(catalog.Quantizations),
		})
	}
	ui.PrintCatalog(items)
	return nil
}
