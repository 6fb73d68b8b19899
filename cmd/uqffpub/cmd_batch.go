package main

import (
	"os"

	"github.com/d2verb/uqffpub/internal/config"
)

type BatchCmd struct {
	Namespace string `short:"n" help:"Namespace that owns the created repositories (default from config)"`
	Token     string `short:"t" help:"HuggingFace access token (default: $HF_TOKEN)"`
	Manifest  string `short:"f" type:"existingfile" help:"YAML manifest listing models (default: built-in list)"`
	Dir       string `default:"." help:"Directory containing the model folders"`
	DryRun    bool   `help:"Show what would be published without uploading"`
}

func (c *BatchCmd) Run(app *App) error {
	if c.Token == "" {
		c.Token = os.Getenv(config.EnvToken)
	}
	if c.Token == "" && !c.DryRun {
		return errMissingToken()
	}

	entries, err := loadEntries(c.Manifest)
	if err != nil {
		return err
	}

	namespace := c.Namespace
	if namespace == "" {
		namespace = app.Config.Namespace
	}

	tasks, err := buildTasks(entries, namespace, c.Dir)
	if err != nil {
		return err
	}
	return publishTasks(app, tasks, c.Token, c.DryRun)
}
