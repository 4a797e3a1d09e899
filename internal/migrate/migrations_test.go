package migrate

import (
	"testing"

	"github.com/trkcli/trk/internal/config"
)

func findMigration(t *testing.T, id string) Migration {
	t.Helper()
	for _, m := range DefaultRegistry().All() {
		if m.ID() == id {
			return m
		}
	}
	t.Fatalf("migration %s not registered", id)
	return nil
}

func TestBootstrapGlobalConfig(t *testing.T) {
	m := findMigration(t, "20210302094500")

	doc := config.NewDocument()
	doc.Set(config.KeyTrackerURL, "https://tracker.example.com")

	got, err := m.Up(doc)
	if err != nil {
		t.Fatalf("Up() error = %v", err)
	}
	if got.GetString(config.KeyTrackerURL) != "https://tracker.example.com" {
		t.Error("existing value must be preserved")
	}
	for _, key := range []string{config.KeyTrackerToken, config.KeyTrackerUsername} {
		if !got.Has(key) {
			t.Errorf("missing seeded key %s", key)
		}
	}

	// Down removes only untouched keys
	down, err := m.Down(got)
	if err != nil {
		t.Fatalf("Down() error = %v", err)
	}
	if !down.Has(config.KeyTrackerURL) {
		t.Error("Down() must keep keys the user filled in")
	}
	if down.Has(config.KeyTrackerToken) {
		t.Error("Down() should remove blank seeded keys")
	}
}

func TestRenameJiraKeys(t *testing.T) {
	m := findMigration(t, "20211007160200")

	doc := config.NewDocument()
	doc.Set("jiraUrl", "https://jira.example.com")
	doc.Set("jiraToken", "tok-123")

	got, err := m.Up(doc)
	if err != nil {
		t.Fatalf("Up() error = %v", err)
	}
	if got.Has("jiraUrl") || got.Has("jiraToken") {
		t.Error("legacy keys must be removed")
	}
	if got.GetString(config.KeyTrackerURL) != "https://jira.example.com" {
		t.Errorf("trackerUrl = %q", got.GetString(config.KeyTrackerURL))
	}
	if got.GetString(config.KeyTrackerToken) != "tok-123" {
		t.Errorf("trackerToken = %q", got.GetString(config.KeyTrackerToken))
	}
}

func TestRenameJiraKeys_Idempotent(t *testing.T) {
	m := findMigration(t, "20211007160200")

	doc := config.NewDocument()
	doc.Set(config.KeyTrackerURL, "https://tracker.example.com")

	got, err := m.Up(doc)
	if err != nil {
		t.Fatalf("Up() error = %v", err)
	}
	if got.GetString(config.KeyTrackerURL) != "https://tracker.example.com" {
		t.Error("already-migrated document must pass through unchanged")
	}
}

func TestRenameJiraKeys_ExistingNewNameWins(t *testing.T) {
	m := findMigration(t, "20211007160200")

	doc := config.NewDocument()
	doc.Set("jiraUrl", "https://old.example.com")
	doc.Set(config.KeyTrackerURL, "https://new.example.com")

	got, err := m.Up(doc)
	if err != nil {
		t.Fatalf("Up() error = %v", err)
	}
	if got.GetString(config.KeyTrackerURL) != "https://new.example.com" {
		t.Error("value under the new name must not be clobbered")
	}
	if got.Has("jiraUrl") {
		t.Error("legacy key must still be removed")
	}
}

func TestDefaultEditor(t *testing.T) {
	m := findMigration(t, "20220415083000")

	got, err := m.Up(config.NewDocument())
	if err != nil {
		t.Fatalf("Up() error = %v", err)
	}
	if got.GetString(config.KeyEditor) != "vi" {
		t.Errorf("editor = %q, want vi", got.GetString(config.KeyEditor))
	}

	// User preference survives
	doc := config.NewDocument()
	doc.Set(config.KeyEditor, "nvim")
	got, err = m.Up(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got.GetString(config.KeyEditor) != "nvim" {
		t.Error("user editor preference must be preserved")
	}
}

func TestSplitRepositorySlug(t *testing.T) {
	m := findMigration(t, "20220902174500")

	doc := config.NewDocument()
	doc.Set("repository", "trkcli/trk")

	got, err := m.Up(doc)
	if err != nil {
		t.Fatalf("Up() error = %v", err)
	}
	if got.GetString(config.KeyRepoOwner) != "trkcli" {
		t.Errorf("repoOwner = %q", got.GetString(config.KeyRepoOwner))
	}
	if got.GetString(config.KeyRepoName) != "trk" {
		t.Errorf("repoName = %q", got.GetString(config.KeyRepoName))
	}
	if got.Has("repository") {
		t.Error("repository slug must be removed")
	}

	// Round trip back down
	down, err := m.Down(got)
	if err != nil {
		t.Fatalf("Down() error = %v", err)
	}
	if down.GetString("repository") != "trkcli/trk" {
		t.Errorf("repository = %q", down.GetString("repository"))
	}
	if down.Has(config.KeyRepoOwner) || down.Has(config.KeyRepoName) {
		t.Error("Down() must remove the split keys")
	}
}

func TestSplitRepositorySlug_Malformed(t *testing.T) {
	m := findMigration(t, "20220902174500")

	doc := config.NewDocument()
	doc.Set("repository", "no-slash-here")

	if _, err := m.Up(doc); err == nil {
		t.Error("expected error for malformed slug")
	}
}

func TestSplitRepositorySlug_NoSlug(t *testing.T) {
	m := findMigration(t, "20220902174500")

	got, err := m.Up(config.NewDocument())
	if err != nil {
		t.Fatalf("Up() on empty document: %v", err)
	}
	if got.Has(config.KeyRepoOwner) {
		t.Error("nothing should be added without a slug")
	}
}

func TestWorkflowFlags(t *testing.T) {
	m := findMigration(t, "20230510112000")

	got, err := m.Up(config.NewDocument())
	if err != nil {
		t.Fatalf("Up() error = %v", err)
	}
	if v, _ := got.Get(config.KeyDraftPR); v != false {
		t.Errorf("draftPr = %v, want false", v)
	}
	if v, _ := got.Get(config.KeyDeleteBranchOnMerge); v != true {
		t.Errorf("deleteBranchOnMerge = %v, want true", v)
	}

	// Existing values win
	doc := config.NewDocument()
	doc.Set(config.KeyDraftPR, true)
	got, err = m.Up(doc)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Get(config.KeyDraftPR); v != true {
		t.Error("existing draftPr value must be preserved")
	}
}
