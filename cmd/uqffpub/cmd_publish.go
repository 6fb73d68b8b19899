package main

import (
	"fmt"

	"github.com/d2verb/uqffpub/internal/catalog"
	"github.com/d2verb/uqffpub/internal/task"
)

type PublishCmd struct {
	ModelID  string `name:"model_id" short:"m" required:"" predictor:"model" help:"Source model id (format: namespace/name)"`
	Token    string `short:"t" required:"" help:"HuggingFace access token"`
	Username string `short:"u" required:"" help:"Namespace that owns the created repository"`
	Dir      string `default:"." help:"Directory containing the model folder"`
	DryRun   bool   `help:"Show what would be published without uploading"`
}

func (c *PublishCmd) Run(app *App) error {
	if err := task.ValidateSourceID(c.ModelID); err != nil {
		return errInvalidArgument(err)
	}
	if c.Token == "" {
		return errInvalidArgument(fmt.Errorf("token cannot be empty"))
	}

	tasks, err := buildTasks([]catalog.Entry{{Model: c.ModelID}}, c.Username, c.Dir)
	if err != nil {
		return err
	}
	return publishTasks(app, tasks, c.Token, c.DryRun)
}
