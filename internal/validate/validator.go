// Package validate checks that the configuration keys a command needs are
// present, auto-detecting what it can from repository state and prompting
// for the rest.
package validate

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/trkcli/trk/internal/cli/prompt"
	"github.com/trkcli/trk/internal/config"
	"github.com/trkcli/trk/internal/git"
	"github.com/trkcli/trk/internal/i18n"
)

// branchPriority is the fixed preference order for base branch detection.
var branchPriority = []string{"develop", "main", "master"}

// Validator checks command requirements against configuration documents.
type Validator struct {
	logger   *slog.Logger
	tr       *i18n.Translator
	branches git.BranchLister // nil when not inside a repository
	asker    prompt.Asker
	remote   string
}

// New creates a Validator. branches may be nil when no repository is
// available; auto-detection then always reports "not detected".
func New(logger *slog.Logger, tr *i18n.Translator, branches git.BranchLister, asker prompt.Asker) *Validator {
	return &Validator{
		logger:   logger,
		tr:       tr,
		branches: branches,
		asker:    asker,
		remote:   config.DefaultRemote,
	}
}

// ValidateCommandRequirements reports which of command's required keys are
// missing from the global and project documents. A key counts as missing
// when it is absent, nil, or blank after trimming whitespace.
func (v *Validator) ValidateCommandRequirements(command string, global, project *config.Document) *Result {
	req := RequirementsFor(command)
	return newResult(
		findMissingKeys(req.Global, global),
		findMissingKeys(req.Project, project),
	)
}

// AutoDetectKey tries to infer a value for key from repository state.
// It returns "" when the key cannot be detected; detection failures are
// never fatal.
func (v *Validator) AutoDetectKey(key string) string {
	switch key {
	case config.KeyBaseBranch:
		return v.detectBaseBranch()
	default:
		return ""
	}
}

func (v *Validator) detectBaseBranch() string {
	if v.branches == nil {
		return ""
	}

	branches, err := v.branches.AllRemoteBranches(v.remote)
	if err != nil {
		v.logger.Debug("base branch detection failed", "error", err)
		return ""
	}

	for _, candidate := range branchPriority {
		if slices.Contains(branches, candidate) {
			return candidate
		}
	}
	return ""
}

// PromptForMissingKeys collects values for the given keys, auto-detecting
// where possible and asking the user otherwise. scope is "global" or
// "project" and selects the prompt wording.
//
// Only keys that received a usable (non-blank) value appear in the result;
// callers must re-validate to find remaining gaps.
func (v *Validator) PromptForMissingKeys(keys []string, scope string) map[string]string {
	values := make(map[string]string)

	for _, key := range keys {
		if detected := v.AutoDetectKey(key); detected != "" {
			values[key] = detected
			v.logger.Info(v.tr.Trans("validate.auto_detected", map[string]string{
				"key":   key,
				"value": detected,
			}))
			continue
		}

		answer, err := v.asker.Ask(v.promptText(scope, key))
		if err != nil {
			// An unreadable answer is the same as no answer
			v.logger.Debug("prompt failed", "key", key, "error", err)
			continue
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		values[key] = answer
	}

	return values
}

func (v *Validator) promptText(scope, key string) string {
	msgKey := "prompt." + scope + "." + key
	if v.tr.Has(msgKey) {
		return v.tr.Trans(msgKey, nil)
	}
	return v.tr.Trans("prompt.fallback", map[string]string{"key": key})
}

// findMissingKeys returns the subset of required keys that are absent, nil,
// or blank after trimming in doc.
func findMissingKeys(required []string, doc *config.Document) []string {
	var missing []string
	for _, key := range required {
		if doc == nil {
			missing = append(missing, key)
			continue
		}
		v, ok := doc.Get(key)
		if isBlank(v, ok) {
			missing = append(missing, key)
		}
	}
	return missing
}

// isBlank classifies a looked-up value: missing, nil, and whitespace-only
// strings are blank; any other value (including false and 0) is not.
func isBlank(v any, ok bool) bool {
	if !ok || v == nil {
		return true
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) == ""
	}
	return false
}
