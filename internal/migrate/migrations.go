package migrate

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/trkcli/trk/internal/config"
)

// allMigrations lists every migration shipped with this release.
// IDs are UTC timestamps of the release that introduced them.
func allMigrations() []Migration {
	return []Migration{
		bootstrapGlobalConfig{def{
			id:           "20210302094500",
			description:  "create the global configuration skeleton",
			scope:        ScopeGlobal,
			prerequisite: true,
		}},
		renameJiraKeys{def{
			id:          "20211007160200",
			description: "rename jira* keys to tracker-neutral names",
			scope:       ScopeGlobal,
		}},
		defaultEditor{def{
			id:          "20220415083000",
			description: "default the editor preference",
			scope:       ScopeGlobal,
		}},
		bootstrapProjectConfig{def{
			id:           "20210614121500",
			description:  "create the project configuration skeleton",
			scope:        ScopeProject,
			prerequisite: true,
		}},
		splitRepositorySlug{def{
			id:          "20220902174500",
			description: "split the repository slug into owner and name",
			scope:       ScopeProject,
		}},
		workflowFlags{def{
			id:          "20230510112000",
			description: "add pull request workflow flags",
			scope:       ScopeProject,
		}},
	}
}

// bootstrapGlobalConfig seeds the keys every later global migration and the
// validator rely on.
type bootstrapGlobalConfig struct{ def }

func (bootstrapGlobalConfig) seedKeys() []string {
	return []string{config.KeyTrackerURL, config.KeyTrackerToken, config.KeyTrackerUsername}
}

func (m bootstrapGlobalConfig) Up(doc *config.Document) (*config.Document, error) {
	for _, key := range m.seedKeys() {
		if !doc.Has(key) {
			doc.Set(key, "")
		}
	}
	return doc, nil
}

func (m bootstrapGlobalConfig) Down(doc *config.Document) (*config.Document, error) {
	// Only remove keys the user never filled in
	for _, key := range m.seedKeys() {
		if doc.GetString(key) == "" {
			doc.Delete(key)
		}
	}
	return doc, nil
}

// renameJiraKeys moves the legacy jira-prefixed credentials to the
// tracker-neutral names introduced when non-Jira backends were added.
type renameJiraKeys struct{ def }

var jiraKeyRenames = map[string]string{
	"jiraUrl":   config.KeyTrackerURL,
	"jiraToken": config.KeyTrackerToken,
	"jiraUser":  config.KeyTrackerUsername,
}

func (renameJiraKeys) Up(doc *config.Document) (*config.Document, error) {
	for from, to := range jiraKeyRenames {
		v, ok := doc.Get(from)
		if !ok {
			continue
		}
		// A value the user already set under the new name wins
		if doc.GetString(to) == "" {
			doc.Set(to, v)
		}
		doc.Delete(from)
	}
	return doc, nil
}

func (renameJiraKeys) Down(doc *config.Document) (*config.Document, error) {
	for from, to := range jiraKeyRenames {
		v, ok := doc.Get(to)
		if !ok {
			continue
		}
		doc.Set(from, v)
		doc.Delete(to)
	}
	return doc, nil
}

// defaultEditor fills in the editor preference used when opening ticket
// descriptions for editing.
type defaultEditor struct{ def }

const fallbackEditor = "vi"

func (defaultEditor) Up(doc *config.Document) (*config.Document, error) {
	if !doc.Has(config.KeyEditor) {
		doc.Set(config.KeyEditor, fallbackEditor)
	}
	return doc, nil
}

func (defaultEditor) Down(doc *config.Document) (*config.Document, error) {
	if doc.GetString(config.KeyEditor) == fallbackEditor {
		doc.Delete(config.KeyEditor)
	}
	return doc, nil
}

// bootstrapProjectConfig seeds the per-project keys.
type bootstrapProjectConfig struct{ def }

func (bootstrapProjectConfig) seedKeys() []string {
	return []string{config.KeyProjectKey, config.KeyBaseBranch}
}

func (m bootstrapProjectConfig) Up(doc *config.Document) (*config.Document, error) {
	for _, key := range m.seedKeys() {
		if !doc.Has(key) {
			doc.Set(key, "")
		}
	}
	return doc, nil
}

func (m bootstrapProjectConfig) Down(doc *config.Document) (*config.Document, error) {
	for _, key := range m.seedKeys() {
		if doc.GetString(key) == "" {
			doc.Delete(key)
		}
	}
	return doc, nil
}

// splitRepositorySlug replaces the single "repository" owner/name slug with
// separate repoOwner and repoName keys, which the hosting API calls need
// individually.
type splitRepositorySlug struct{ def }

func (splitRepositorySlug) Up(doc *config.Document) (*config.Document, error) {
	slug := doc.GetString("repository")
	if slug == "" {
		// Nothing to split; already migrated or never configured
		doc.Delete("repository")
		return doc, nil
	}

	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" {
		return nil, errors.Newf("repository %q is not in owner/name form", slug)
	}

	doc.Set(config.KeyRepoOwner, owner)
	doc.Set(config.KeyRepoName, name)
	doc.Delete("repository")
	return doc, nil
}

func (splitRepositorySlug) Down(doc *config.Document) (*config.Document, error) {
	owner := doc.GetString(config.KeyRepoOwner)
	name := doc.GetString(config.KeyRepoName)
	if owner != "" && name != "" {
		doc.Set("repository", owner+"/"+name)
	}
	doc.Delete(config.KeyRepoOwner)
	doc.Delete(config.KeyRepoName)
	return doc, nil
}

// workflowFlags adds the pull request workflow toggles with their historical
// defaults.
type workflowFlags struct{ def }

func (workflowFlags) Up(doc *config.Document) (*config.Document, error) {
	if !doc.Has(config.KeyDraftPR) {
		doc.Set(config.KeyDraftPR, false)
	}
	if !doc.Has(config.KeyDeleteBranchOnMerge) {
		doc.Set(config.KeyDeleteBranchOnMerge, true)
	}
	return doc, nil
}

func (workflowFlags) Down(doc *config.Document) (*config.Document, error) {
	doc.Delete(config.KeyDraftPR)
	doc.Delete(config.KeyDeleteBranchOnMerge)
	return doc, nil
}
