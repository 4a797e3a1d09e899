package commands

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/trkcli/trk/internal/git"
)

// ErrNoProject indicates no project root could be found from the working
// directory.
var ErrNoProject = errors.New("not inside a project")

// findProjectRoot walks upward from dir looking for a git working copy or
// an existing .trk.yml.
func findProjectRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving working directory")
	}

	for {
		if git.IsRepo(current) {
			return current, nil
		}
		if _, err := os.Stat(filepath.Join(current, ".trk.yml")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.Wrapf(ErrNoProject, "searched from %s", dir)
		}
		current = parent
	}
}

// workingProjectRoot is findProjectRoot from the process working directory.
func workingProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "getting working directory")
	}
	return findProjectRoot(cwd)
}
