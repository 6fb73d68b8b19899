package main

import (
	"fmt"

	"github.com/d2verb/uqffpub/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "uqffpub version %s (%s)\n", version, commit)
	return nil
}
