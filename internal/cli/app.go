// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface of the shell.
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/hearthshell/hearth/internal/adapters/rest"
	"github.com/hearthshell/hearth/internal/application"
	"github.com/hearthshell/hearth/internal/config"
	"github.com/hearthshell/hearth/internal/domain"
	"github.com/hearthshell/hearth/internal/launcher"
	"github.com/hearthshell/hearth/internal/logging"
	"github.com/hearthshell/hearth/internal/tui"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Generic failure (catch-all)
	ExitUsageError    = 2  // Invalid command line usage
	ExitConfigError   = 3  // Configuration file error
	ExitNotFoundError = 5  // Requested entry not found
	ExitNetworkError  = 11 // Backend operation failed
	ExitSystemError   = 12 // System call failed
)

// CLI wires the launcher engine, its collaborators and the TUI behind
// a urfave/cli command tree.
type CLI struct {
	app     *cli.Command
	verbose bool
	json    bool
	quiet   bool

	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

// NewCLI creates the hearth command tree.
func NewCLI() *CLI {
	app := &CLI{}

	app.app = &cli.Command{
		Name:    "hearth",
		Usage:   "A keyboard-first shell for your terminal desktop",
		Version: appVersion(),
		Suggest: true,
		Description: `hearth turns a terminal into a desktop shell: a fuzzy launcher over
built-in panels and installed applications, ranked by your pins, your
recent launches and how often you use each entry.

Run hearth with no arguments to open the interactive shell. Every
launcher operation is also scriptable:

  hearth search term          # fuzzy search the catalog
  hearth list --category ai-hub
  hearth open terminal        # launch an entry by id
  hearth recent               # most recently launched entries`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "log at debug level",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress non-essential output",
				Aliases:     []string{"q"},
				Destination: &app.quiet,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to the configuration file",
				Destination: &app.configPath,
			},
		},
		Before:   app.initConfig,
		Action:   app.defaultAction,
		Commands: app.createCommands(),
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig loads the configuration file and builds the logger.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	path := app.configPath
	if path == "" {
		path = config.GetConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, "failed to load configuration", err)
	}

	app.cfg = cfg

	logger, err := logging.New(cfg.Debug || app.verbose)
	if err != nil {
		// Logging is ambient; a read-only filesystem must not block the shell.
		logger = zap.NewNop()
	}

	app.log = logger

	return ctx, nil
}

// newService builds the shell service against the configured backend.
func (app *CLI) newService() *application.ShellService {
	client := rest.NewClient(app.cfg.Server.BaseURL, app.cfg.Server.Timeout)
	launchService := rest.NewLaunchService(client)

	open := func(target string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.Timeout)
		defer cancel()

		return launchService.OpenSurface(ctx, target)
	}

	launch := func(id string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.Timeout)
		defer cancel()

		return launchService.LaunchApp(ctx, id)
	}

	defaultView, err := domain.ParseViewMode(app.cfg.Launcher.DefaultView)
	if err != nil {
		app.log.Warn("unknown default_view in config, using built-in default", zap.Error(err))
	}

	return application.NewShellService(application.Deps{
		Source:       rest.NewAppSource(client),
		Prefs:        rest.NewPreferenceService(client),
		Usage:        rest.NewUsageService(client),
		Windows:      rest.NewWindowRegistry(client),
		Builtins:     launcher.Builtins(open),
		Launch:       launch,
		SaveDebounce: app.cfg.Launcher.Debounce,
		MaxRecents:   app.cfg.Launcher.MaxRecents,
		DefaultView:  defaultView,
		Log:          app.log,
	})
}

// defaultAction launches the interactive shell when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		fmt.Fprintf(os.Stderr, "'%s' is not a command. Run 'hearth --help'.\n", cmd.Args().First())

		return domain.NewExitError(ExitUsageError, "unknown command", nil)
	}

	service := app.newService()

	if err := tui.LaunchInteractive(ctx, service, app.cfg.Launcher.Debounce); err != nil {
		if app.verbose {
			return domain.NewExitError(ExitGeneralError, fmt.Sprintf("failed to launch shell: %v", err), nil)
		}

		return domain.NewExitError(ExitGeneralError, "failed to launch interactive shell (terminal required)", nil)
	}

	return nil
}

// appVersion reads the module version from build info.
func appVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}

// refreshTimeout bounds the catalog fetch for headless commands.
const refreshTimeout = 10 * time.Second
