package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cockroachdb/errors"

	"github.com/trkcli/trk/internal/config"
	trkerrors "github.com/trkcli/trk/internal/errors"
	"github.com/trkcli/trk/internal/i18n"
	"github.com/trkcli/trk/internal/paths"
	"github.com/trkcli/trk/internal/validate"
)

var configProject bool

func init() {
	configCmd.PersistentFlags().BoolVar(&configProject, "project", false,
		"operate on the project configuration (.trk.yml) instead of the global one")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit trk configuration",
	Long: `Inspect and edit trk configuration.

Without a subcommand, shows the selected configuration document.`,
	Example: `  # Show the global configuration
  trk config show

  # Show the project configuration
  trk config show --project

  # Set a value
  trk config set baseBranch develop --project

  # Verify a command's requirements
  trk config check pr`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a configuration document",
	Long:  `Print the selected configuration document as YAML, keys in file order.`,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a single configuration value and write the document back.

New keys are appended; existing keys keep their position in the file.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <command>",
	Short: "Check that a command's required configuration is present",
	Long: `Check that every configuration key the given command requires is
present and non-blank, in both the global and the project document.

Exits non-zero when keys are missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigCheck,
}

// selectedConfigPath resolves the document the --project flag points at.
func selectedConfigPath() (string, error) {
	if !configProject {
		return paths.GlobalConfigPath(), nil
	}
	root, err := workingProjectRoot()
	if err != nil {
		return "", err
	}
	return paths.ProjectConfigPath(root), nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	path, err := selectedConfigPath()
	if err != nil {
		return err
	}

	store := config.NewFileStore()
	doc, err := config.ReadOrNew(store, path)
	if err != nil {
		return err
	}

	if doc.Len() == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s is empty\n", path)
		return nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if strings.TrimSpace(key) == "" {
		return trkerrors.NewUserError(errors.New("key must not be blank"), "")
	}

	path, err := selectedConfigPath()
	if err != nil {
		return err
	}

	store := config.NewFileStore()
	doc, err := config.ReadOrNew(store, path)
	if err != nil {
		return err
	}

	doc.Set(key, value)
	if err := store.Write(path, doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	command := args[0]
	tr := i18n.MustNew()
	store := config.NewFileStore()

	global, err := config.ReadOrNew(store, paths.GlobalConfigPath())
	if err != nil {
		return err
	}

	project := config.NewDocument()
	if root, err := workingProjectRoot(); err == nil {
		project, err = config.ReadOrNew(store, paths.ProjectConfigPath(root))
		if err != nil {
			return err
		}
	}

	// check never prompts; it only reports
	v := validate.New(loggerFor(cmd), tr, nil, nil)
	res := v.ValidateCommandRequirements(command, global, project)

	out := cmd.OutOrStdout()
	if res.CanProceed {
		fmt.Fprintln(out, tr.Trans("validate.all_present", nil))
		return nil
	}

	if len(res.MissingGlobalKeys) > 0 {
		fmt.Fprintln(out, tr.Trans("validate.missing_keys", map[string]string{
			"scope": "global",
			"keys":  strings.Join(res.MissingGlobalKeys, ", "),
		}))
	}
	if len(res.MissingProjectKeys) > 0 {
		fmt.Fprintln(out, tr.Trans("validate.missing_keys", map[string]string{
			"scope": "project",
			"keys":  strings.Join(res.MissingProjectKeys, ", "),
		}))
	}

	return trkerrors.NewUserError(trkerrors.ErrMissingKey, "Run: trk init")
}
