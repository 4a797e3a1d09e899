package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/cockroachdb/errors"
)

// SelectBranch opens a fuzzy finder over the given branch names and returns
// the selection. Returns ErrCancelled if the user aborts.
//
// Only called from TTY flows; non-interactive callers use an Asker instead.
func SelectBranch(branches []string) (string, error) {
	if len(branches) == 0 {
		return "", errors.New("no branches to select from")
	}
	if len(branches) == 1 {
		return branches[0], nil
	}

	idx, err := fuzzyfinder.Find(
		branches,
		func(i int) string { return branches[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Use %q as the base branch for pull requests", branches[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrCancelled
		}
		return "", errors.Wrap(err, "selecting branch")
	}

	return branches[idx], nil
}
