package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trkcli/trk/internal/config"
	"github.com/trkcli/trk/internal/i18n"
	"github.com/trkcli/trk/internal/logging"
	"github.com/trkcli/trk/internal/migrate"
)

func TestUpgradeScope_AppliesPendingMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	store := config.NewFileStore()
	tr := i18n.MustNew()
	executor := migrate.NewExecutor(store, logging.ForTest(t), tr)
	registry := migrate.DefaultRegistry()

	var out bytes.Buffer
	n, err := upgradeScope(executor, registry, store, tr, &out, migrate.ScopeGlobal, path)
	if err != nil {
		t.Fatalf("upgradeScope() error = %v", err)
	}
	if n == 0 {
		t.Fatal("expected pending migrations on a fresh document")
	}

	doc, err := store.Read(path)
	if err != nil {
		t.Fatalf("reading upgraded config: %v", err)
	}
	if doc.Version() == "" {
		t.Error("migration_version must be recorded")
	}
	if !doc.Has(config.KeyTrackerURL) {
		t.Error("bootstrap migration should have seeded trackerUrl")
	}
}

func TestUpgradeScope_SecondRunIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	store := config.NewFileStore()
	tr := i18n.MustNew()
	executor := migrate.NewExecutor(store, logging.ForTest(t), tr)
	registry := migrate.DefaultRegistry()

	var out bytes.Buffer
	if _, err := upgradeScope(executor, registry, store, tr, &out, migrate.ScopeProject, path); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	n, err := upgradeScope(executor, registry, store, tr, &out, migrate.ScopeProject, path)
	if err != nil {
		t.Fatalf("second upgradeScope() error = %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 pending migrations, got %d", n)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("up-to-date file must not be rewritten")
	}
}

func TestUpgradeScope_DryRunWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	store := config.NewFileStore()
	tr := i18n.MustNew()
	executor := migrate.NewExecutor(store, logging.ForTest(t), tr)
	registry := migrate.DefaultRegistry()

	upgradeDryRun = true
	defer func() { upgradeDryRun = false }()

	var out bytes.Buffer
	n, err := upgradeScope(executor, registry, store, tr, &out, migrate.ScopeGlobal, path)
	if err != nil {
		t.Fatalf("upgradeScope() error = %v", err)
	}
	if n == 0 {
		t.Fatal("dry run should still report pending migrations")
	}

	if store.Exists(path) {
		t.Error("dry run must not write the config file")
	}
	if !strings.Contains(out.String(), "20210302094500") {
		t.Errorf("dry run output should list migration IDs:\n%s", out.String())
	}
}
