// Package git provides the local git plumbing the configuration layer needs:
// repository detection and remote branch listing.
package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// BranchLister lists the remote-tracking branches of a working copy.
// The validator consumes it to auto-detect the base branch.
type BranchLister interface {
	// AllRemoteBranches returns the branch names under the given remote,
	// without the "<remote>/" prefix.
	AllRemoteBranches(remote string) ([]string, error)
}

// CLI runs git commands against a working copy directory.
type CLI struct {
	dir string
}

// NewCLI returns a CLI operating in dir. An empty dir uses the process
// working directory.
func NewCLI(dir string) *CLI {
	return &CLI{dir: dir}
}

// AllRemoteBranches implements BranchLister by shelling out to
// `git branch -r`. The symbolic HEAD entry is excluded.
func (c *CLI) AllRemoteBranches(remote string) ([]string, error) {
	cmd := exec.Command("git", "branch", "-r", "--format", "%(refname:short)")
	cmd.Dir = c.dir

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(err, "listing remote branches")
	}

	prefix := remote + "/"
	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, prefix) {
			continue
		}
		name := strings.TrimPrefix(line, prefix)
		if name == "HEAD" {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

// IsRepo reports whether dir is inside a git working copy by checking for
// a .git entry at dir's root.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	// .git is a directory in a normal clone, a file in a worktree
	return info.IsDir() || info.Mode().IsRegular()
}
