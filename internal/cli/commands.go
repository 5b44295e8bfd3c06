// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	cliAdapter "github.com/hearthshell/hearth/internal/adapters/cli"
	"github.com/hearthshell/hearth/internal/application"
	"github.com/hearthshell/hearth/internal/domain"
)

// entryRow is the JSON shape of one catalog entry in command output.
type entryRow struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	Running    bool     `json:"running"`
	Favorite   bool     `json:"favorite"`
	UsageCount int      `json:"usageCount"`
}

func (app *CLI) createCommands() []*cli.Command {
	return []*cli.Command{
		app.createSearchCommand(),
		app.createListCommand(),
		app.createOpenCommand(),
		app.createRecentCommand(),
	}
}

// createSearchCommand creates the headless fuzzy search command.
func (app *CLI) createSearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the catalog",
		ArgsUsage: "<query>",
		Description: `Fuzzy search over apps and panels, ranked the same way the
interactive launcher ranks them.

Examples:
  hearth search term            # matches Terminal
  hearth search files --json    # machine-readable results
  hearth search chat --category ai-hub`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "restrict results to one category",
			},
		},
		Action: app.runSearch,
	}
}

func (app *CLI) runSearch(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if query == "" {
		return domain.NewExitError(ExitUsageError, "specify a search query", nil)
	}

	category, err := parseCategory(cmd.String("category"))
	if err != nil {
		return domain.NewExitError(ExitUsageError, err.Error(), nil)
	}

	service, err := app.refreshedService(ctx)
	if err != nil {
		return err
	}

	return app.outputEntries(service.Search(query, category))
}

// createListCommand creates the catalog listing command.
func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the full catalog in display order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "restrict results to one category",
			},
		},
		Action: app.runList,
	}
}

func (app *CLI) runList(ctx context.Context, cmd *cli.Command) error {
	category, err := parseCategory(cmd.String("category"))
	if err != nil {
		return domain.NewExitError(ExitUsageError, err.Error(), nil)
	}

	service, err := app.refreshedService(ctx)
	if err != nil {
		return err
	}

	return app.outputEntries(service.Search("", category))
}

// createOpenCommand creates the headless launch command.
func (app *CLI) createOpenCommand() *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Launch an entry by id",
		ArgsUsage: "<entry-id>",
		Description: `Invoke a catalog entry exactly as Enter would in the launcher.
The invocation counts toward usage ranking.

Examples:
  hearth open terminal
  hearth open firefox`,
		Action: app.runOpen,
	}
}

func (app *CLI) runOpen(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return domain.NewExitError(ExitUsageError, "specify an entry id", nil)
	}

	service, err := app.refreshedService(ctx)
	if err != nil {
		return err
	}

	defer service.Close()

	output := cliAdapter.OutputFromFlags(app.json, app.quiet)

	if err := service.Execute(id); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			_ = output.Error("no entry with id " + id)

			return domain.NewExitError(ExitNotFoundError, "entry not found: "+id, nil)
		}

		_ = output.Error(fmt.Sprintf("launch failed: %v", err))

		return domain.NewExitError(ExitNetworkError, "launch failed", err)
	}

	return output.Result("launched " + id)
}

// createRecentCommand creates the recents listing command.
func (app *CLI) createRecentCommand() *cli.Command {
	return &cli.Command{
		Name:   "recent",
		Usage:  "Show the most recently launched entries",
		Action: app.runRecent,
	}
}

func (app *CLI) runRecent(ctx context.Context, _ *cli.Command) error {
	service, err := app.refreshedService(ctx)
	if err != nil {
		return err
	}

	entries := make([]domain.Entry, 0, len(service.Recents()))

	for _, id := range service.Recents() {
		if entry, ok := service.Entry(id); ok {
			entries = append(entries, entry)
		}
	}

	return app.outputEntries(entries)
}

// refreshedService builds the service and performs the initial catalog
// fetch with a bounded context.
func (app *CLI) refreshedService(ctx context.Context) (*application.ShellService, error) {
	service := app.newService()

	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	service.Refresh(refreshCtx)

	return service, nil
}

// outputEntries writes entries as a table or JSON rows.
func (app *CLI) outputEntries(entries []domain.Entry) error {
	format := cliAdapter.TextFormat
	if app.json {
		format = cliAdapter.JSONFormat
	}

	output := cliAdapter.NewOutputAdapter(format, app.quiet)

	if app.json {
		rows := make([]entryRow, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, entryRow{
				ID:         entry.ID,
				Name:       entry.Name,
				Category:   string(entry.Category),
				Tags:       entry.Tags,
				Running:    entry.Running,
				Favorite:   entry.Favorite,
				UsageCount: entry.UsageCount,
			})
		}

		return output.Result(rows)
	}

	if len(entries) == 0 {
		return output.Info("No matches")
	}

	headers := []string{"ID", "Name", "Category", "Flags", "Uses"}
	rows := make([][]string, 0, len(entries))

	for _, entry := range entries {
		rows = append(rows, []string{
			entry.ID,
			entry.Name,
			string(entry.Category),
			entryFlags(entry),
			strconv.Itoa(entry.UsageCount),
		})
	}

	return output.Table(headers, rows)
}

// entryFlags renders the running and favorite markers for table output.
func entryFlags(entry domain.Entry) string {
	var flags strings.Builder

	if entry.Running {
		flags.WriteString("running")
	}

	if entry.Favorite {
		if flags.Len() > 0 {
			flags.WriteString(",")
		}

		flags.WriteString("pinned")
	}

	if flags.Len() == 0 {
		return "-"
	}

	return flags.String()
}

// parseCategory validates the --category flag value. Empty means all.
func parseCategory(value string) (domain.Category, error) {
	if value == "" {
		return "", nil
	}

	category := domain.Category(strings.ToLower(value))
	if !category.Valid() {
		names := make([]string, 0, len(domain.Categories()))
		for _, known := range domain.Categories() {
			names = append(names, string(known))
		}

		return "", fmt.Errorf("%w: %s (known: %s)", domain.ErrUnknownCategory, value, strings.Join(names, ", "))
	}

	return category, nil
}
