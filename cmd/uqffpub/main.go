package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/d2verb/uqffpub/internal/config"
	"github.com/d2verb/uqffpub/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Publish PublishCmd `cmd:"" help:"Publish one model folder to a private repository"`
	Batch   BatchCmd   `cmd:"" help:"Publish every model in the catalog"`
	List    ListCmd    `cmd:"" help:"List the models a batch run publishes"`
	Version VersionCmd `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// App carries what every command needs at run time.
type App struct {
	Context context.Context
	Config  config.Config
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("uqffpub"),
		kong.Description("Publish UQFF model folders to the HuggingFace Hub"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	kongplete.Complete(parser,
		kongplete.WithPredictor("model", newModelPredictor()),
	)

	kctx, err := parser.Parse(args)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			parser.Stdout = stderr
			_ = parseErr.Context.PrintUsage(true)
		}
		parser.Errorf("%s", err)
		return exitUsage
	}

	app, closeLog, err := setup(cli.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	app.Context = ctx

	if err := kctx.Run(app); err != nil {
		code := exitCodeFor(err)
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(stderr, "Error: %s\n", msg)
		}
		slog.Error("command failed", "command", kctx.Command(), "exit_code", code, "error", err)
		return code
	}
	return exitSuccess
}

// setup prepares the log file and loads the user config.
func setup(debug bool) (*App, func(), error) {
	paths, err := getPaths()
	if err != nil {
		return nil, nil, err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, fmt.Errorf("create directories: %w", err)
	}

	logWriter := logging.NewRotatingWriter(logging.DefaultConfig(paths.LogFile))
	slog.SetDefault(logging.NewLogger(logWriter, debug))

	cfg, err := config.Load(paths.Config)
	if err != nil {
		logWriter.Close()
		return nil, nil, err
	}

	return &App{Context: context.Background(), Config: cfg}, func() { logWriter.Close() }, nil
}
