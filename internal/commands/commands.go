package commands

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/rog-golang-buddies/userboard/config"
	"github.com/rog-golang-buddies/userboard/internal/apiclient"
	"github.com/rog-golang-buddies/userboard/internal/users/api"
	"github.com/rog-golang-buddies/userboard/pkg/logger"
)

// shouldn't be here
const Version = "v0.1.0"

const defaultLogFile = "userboard.log"

var (
	ErrInvalidPort    = errors.New("invalid port number")
	ErrConfigExists   = errors.New("config file already exists")
	ErrInvalidTimeout = errors.New("timeout must be positive")
)

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Load configuration from `FILE`",
	},
	&cli.StringFlag{
		Name:  "base-url",
		Usage: "Base URL of the users API",
	},
	&cli.DurationFlag{
		Name:  "timeout",
		Usage: "Request timeout for the users API",
	},
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "One of debug, info, warn, error",
	},
	&cli.StringFlag{
		Name:  "log-file",
		Usage: "Write logs to `FILE` (stdout and stderr are accepted)",
	},
	&cli.DurationFlag{
		Name:  "delay",
		Usage: "How long local changes show the loading state",
	},
}

var Commands = []*cli.Command{
	{
		Name:        "tui",
		Category:    "run",
		Aliases:     []string{"t"},
		Description: "Opens the full-screen user board.",
		Action:      runTUI,
	},
	{
		Name:        "list",
		Category:    "run",
		Aliases:     []string{"ls"},
		Description: "Fetches the users once and prints them as a table.",
		Action:      runList,
	},
	{
		Name:        "shell",
		Category:    "run",
		Description: "Manages users through prompts instead of the full-screen board.",
		Action:      runShell,
	},
	{
		Name:        "mock-api",
		Category:    "dev",
		Description: "Serves a fixed set of users on GET /users for offline development.",
		Action:      runMockAPI,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Defines the port which the mock API should listen on",
			},
		},
	},
	{
		Name:     "config",
		Category: "config",
		Usage:    "Manage the configuration file",
		Subcommands: []*cli.Command{
			{
				Name:        "init",
				Description: "Writes the effective configuration to a file.",
				Action:      initConfig,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
			},
		},
	},
	{
		Name:   "version",
		Usage:  "Prints the version",
		Action: GetVersion,
	},
}

func GetVersion(cCtx *cli.Context) error {
	_, err := fmt.Fprintln(cCtx.App.Writer, "userboard version: "+Version)
	return err
}

// loadConfig reads file and environment, then applies any global flags set.
func loadConfig(cCtx *cli.Context) (*config.Config, error) {
	return loadConfigFrom(cCtx, cCtx.String("config"))
}

func loadConfigFrom(cCtx *cli.Context, fp string) (*config.Config, error) {
	cfg, err := config.Load(fp)
	if err != nil {
		return nil, err
	}

	if cCtx.IsSet("base-url") {
		cfg.API.BaseURL = cCtx.String("base-url")
	}
	if cCtx.IsSet("timeout") {
		cfg.API.Timeout = cCtx.Duration("timeout")
	}
	if cCtx.IsSet("log-level") {
		cfg.Log.Level = cCtx.String("log-level")
	}
	if cCtx.IsSet("log-file") {
		cfg.Log.Output = cCtx.String("log-file")
	}
	if cCtx.IsSet("delay") {
		cfg.UI.MutationDelay = cCtx.Duration("delay")
	}

	if cfg.API.Timeout <= 0 {
		return nil, ErrInvalidTimeout
	}

	return cfg, nil
}

// newLogger builds the command logger. output is used when the
// configuration leaves the destination empty.
func newLogger(cfg *config.Config, output string) (*zap.Logger, error) {
	if cfg.Log.Output != "" {
		output = cfg.Log.Output
	}

	l, err := logger.NewWithConfig(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPath:  output,
		ServiceName: "userboard",
		Version:     Version,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return l, nil
}

func newAPI(cfg *config.Config, log *zap.Logger) *api.API {
	c := apiclient.New(
		apiclient.WithBaseURL(cfg.API.BaseURL),
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithLogger(log),
	)
	return api.New(c)
}

// NewApp builds the userboard CLI. With no command it opens the board.
func NewApp() *cli.App {
	return &cli.App{
		EnableBashCompletion: true,
		Name:                 "userboard",
		Usage:                "Browse and edit users from a JSON users API",
		Version:              Version,
		Compiled:             time.Now().UTC(),
		Action:               runTUI,
		Flags:                Flags,
		Commands:             Commands,
	}
}
