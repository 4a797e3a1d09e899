package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/trkcli/trk/internal/config"
	trkerrors "github.com/trkcli/trk/internal/errors"
	"github.com/trkcli/trk/internal/i18n"
	"github.com/trkcli/trk/internal/logging"
	"github.com/trkcli/trk/internal/migrate"
	"github.com/trkcli/trk/internal/paths"
)

var (
	upgradeDryRun      bool
	upgradeGlobalOnly  bool
	upgradeProjectOnly bool
)

func init() {
	upgradeCmd.Flags().BoolVar(&upgradeDryRun, "dry-run", false, "show pending migrations without applying them")
	upgradeCmd.Flags().BoolVar(&upgradeGlobalOnly, "global-only", false, "upgrade only the global configuration")
	upgradeCmd.Flags().BoolVar(&upgradeProjectOnly, "project-only", false, "upgrade only the project configuration")
	rootCmd.AddCommand(upgradeCmd)
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Migrate configuration files to the current schema",
	Long: `Apply any outstanding configuration migrations.

Each release of trk may change the configuration schema. Migrations are
applied in order, separately for the global configuration and for the
project's .trk.yml. The last applied migration is recorded under the
migration_version key; re-running upgrade on up-to-date files is a no-op.

A failing prerequisite migration aborts the upgrade; other failures are
reported as warnings and skipped.`,
	Example: `  # Upgrade both configuration files
  trk upgrade

  # See what would run
  trk upgrade --dry-run

  # Only the global file
  trk upgrade --global-only`,
	RunE: runUpgrade,
}

func runUpgrade(cmd *cobra.Command, _ []string) error {
	if upgradeGlobalOnly && upgradeProjectOnly {
		return trkerrors.NewUserError(nil, "cannot use --global-only and --project-only together")
	}

	logger := loggerFor(cmd)
	tr := i18n.MustNew()
	store := config.NewFileStore()
	registry := migrate.DefaultRegistry()
	executor := migrate.NewExecutor(store, logger, tr)

	out := cmd.OutOrStdout()
	upgraded := 0

	if !upgradeProjectOnly {
		n, err := upgradeScope(executor, registry, store, tr, out,
			migrate.ScopeGlobal, paths.GlobalConfigPath())
		if err != nil {
			return err
		}
		upgraded += n
	}

	if !upgradeGlobalOnly {
		root, err := workingProjectRoot()
		if err != nil {
			if errors.Is(err, ErrNoProject) {
				// Global-only environments are fine; just say so
				fmt.Fprintln(out, "No project found; skipping project configuration")
				err = nil
			}
			if err != nil {
				return err
			}
		} else {
			n, err := upgradeScope(executor, registry, store, tr, out,
				migrate.ScopeProject, paths.ProjectConfigPath(root))
			if err != nil {
				return err
			}
			upgraded += n
		}
	}

	if upgraded == 0 && !upgradeDryRun {
		fmt.Fprintln(out, tr.Trans("migrate.up_to_date", nil))
	}
	return nil
}

func upgradeScope(executor *migrate.Executor, registry *migrate.Registry, store config.Store, tr *i18n.Translator, out io.Writer, scope migrate.Scope, path string) (int, error) {
	doc, err := config.ReadOrNew(store, path)
	if err != nil {
		return 0, err
	}

	pending := registry.Pending(scope, doc.Version())
	if len(pending) == 0 {
		return 0, nil
	}

	fmt.Fprintln(out, tr.Trans("migrate.pending", map[string]string{
		"count": fmt.Sprint(len(pending)),
		"scope": string(scope),
	}))

	if upgradeDryRun {
		for _, m := range pending {
			fmt.Fprintf(out, "  %s  %s\n", m.ID(), m.Description())
		}
		return len(pending), nil
	}

	if _, err := executor.Execute(pending, doc, path); err != nil {
		return 0, err
	}
	fmt.Fprintln(out, tr.Trans("migrate.persisted", map[string]string{"path": path}))
	return len(pending), nil
}

// loggerFor returns the logger stored on the command context by
// setupLogging, falling back to the process default.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		return logging.FromContext(ctx)
	}
	return slog.Default()
}
