package commands

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trkcli/trk/internal/cli/prompt"
	"github.com/trkcli/trk/internal/config"
	trkerrors "github.com/trkcli/trk/internal/errors"
	"github.com/trkcli/trk/internal/git"
	"github.com/trkcli/trk/internal/i18n"
	"github.com/trkcli/trk/internal/logging"
	"github.com/trkcli/trk/internal/migrate"
	"github.com/trkcli/trk/internal/paths"
	"github.com/trkcli/trk/internal/validate"
)

var initGlobal bool

func init() {
	initCmd.Flags().BoolVar(&initGlobal, "global", false,
		"initialize the global configuration instead of the project one")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or complete a configuration file",
	Long: `Create or complete a configuration document.

For the project configuration, the base branch is auto-detected from the
repository's remote branches where possible; everything else is asked
interactively. Values you skip stay missing and can be filled in later
with 'trk config set'.

The resulting document is migrated to the current schema before it is
written.`,
	Example: `  # Set up .trk.yml for the current repository
  trk init

  # Set up the global configuration
  trk init --global`,
	RunE: runInit,
}

// initRequiredKeys returns the keys worth asking for per scope. The "pr"
// command has the fullest requirement set, so it drives initialization.
func initRequiredKeys(global bool) []string {
	req := validate.RequirementsFor("pr")
	if global {
		return req.Global
	}
	return req.Project
}

func runInit(cmd *cobra.Command, _ []string) error {
	logger := loggerFor(cmd)
	tr := i18n.MustNew()
	store := config.NewFileStore()
	out := cmd.OutOrStdout()

	scope := "project"
	path := paths.GlobalConfigPath()
	var lister git.BranchLister

	if initGlobal {
		scope = "global"
	} else {
		root, err := workingProjectRoot()
		if err != nil {
			return trkerrors.NewUserError(err, "run trk init inside a git repository, or use --global")
		}
		path = paths.ProjectConfigPath(root)
		lister = git.NewCLI(root)
	}

	doc, err := config.ReadOrNew(store, path)
	if err != nil {
		return err
	}

	// Bring the document to the current schema first so prompting works
	// against current key names.
	executor := migrate.NewExecutor(store, logger, tr)
	registry := migrate.DefaultRegistry()
	migScope := migrate.ScopeProject
	if initGlobal {
		migScope = migrate.ScopeGlobal
	}
	doc, err = executor.Execute(registry.Pending(migScope, doc.Version()), doc, path)
	if err != nil {
		return err
	}

	asker := prompt.NewLineAskerWithIO(cmd.InOrStdin(), out)
	v := validate.New(logger, tr, lister, asker)

	required := initRequiredKeys(initGlobal)
	var missing []string
	if initGlobal {
		missing = v.ValidateCommandRequirements("pr", doc, config.NewDocument()).MissingGlobalKeys
	} else {
		missing = v.ValidateCommandRequirements("pr", config.NewDocument(), doc).MissingProjectKeys
	}

	if len(missing) == 0 {
		fmt.Fprintf(out, "%s already has all %d required keys\n", path, len(required))
		return nil
	}

	values := v.PromptForMissingKeys(missing, scope)

	// Base branch fallback: offer a fuzzy pick over the actual branches
	// when detection and prompting both came up empty.
	if _, answered := values[config.KeyBaseBranch]; !answered &&
		slices.Contains(missing, config.KeyBaseBranch) && lister != nil && logging.IsTTY(os.Stdin) {
		if branches, err := lister.AllRemoteBranches(config.DefaultRemote); err == nil && len(branches) > 0 {
			if branch, err := prompt.SelectBranch(branches); err == nil {
				values[config.KeyBaseBranch] = branch
			}
		}
	}

	for _, key := range missing {
		if value, ok := values[key]; ok {
			doc.Set(key, value)
		}
	}

	if err := store.Write(path, doc); err != nil {
		return err
	}
	fmt.Fprintln(out, tr.Trans("migrate.persisted", map[string]string{"path": path}))

	if still := stillMissing(missing, values); len(still) > 0 {
		fmt.Fprintf(out, "Still missing: %s\n", strings.Join(still, ", "))
	}
	return nil
}

func stillMissing(required []string, values map[string]string) []string {
	var out []string
	for _, key := range required {
		if _, ok := values[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}
