package migrate

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/trkcli/trk/internal/config"
	trkerrors "github.com/trkcli/trk/internal/errors"
	"github.com/trkcli/trk/internal/i18n"
)

// Executor applies an ordered list of migrations to a configuration
// document and persists the result.
type Executor struct {
	store  config.Store
	logger *slog.Logger
	tr     *i18n.Translator
}

// NewExecutor creates an Executor using the given store, logger, and translator.
func NewExecutor(store config.Store, logger *slog.Logger, tr *i18n.Translator) *Executor {
	return &Executor{
		store:  store,
		logger: logger,
		tr:     tr,
	}
}

// Execute applies migrations to doc in the given order and writes the final
// document to targetPath.
//
// Callers present migrations in ascending ID order, already partitioned by
// scope; Execute does not re-sort. Migrations run strictly sequentially,
// since later migrations may depend on the cumulative effect of earlier
// ones.
//
// A failing prerequisite migration aborts the run: the error names the
// migration, no later migrations run, and nothing is persisted. A failing
// optional migration is logged as a warning and skipped; its effect is
// discarded entirely and migration_version is not advanced by it.
//
// An empty migrations list returns doc unchanged without touching
// targetPath.
func (e *Executor) Execute(migrations []Migration, doc *config.Document, targetPath string) (*config.Document, error) {
	if len(migrations) == 0 {
		return doc, nil
	}

	for _, m := range migrations {
		e.logger.Info(e.tr.Trans("migrate.applying", map[string]string{
			"id":          m.ID(),
			"description": m.Description(),
		}), "scope", string(m.Scope()))

		next, err := m.Up(doc.Clone())
		if err != nil {
			if m.Prerequisite() {
				e.logger.Error(e.tr.Trans("migrate.prerequisite_failed", map[string]string{
					"id":          m.ID(),
					"description": m.Description(),
				}), "error", err)
				return nil, errors.Mark(
					errors.Wrapf(err, "prerequisite migration %s (%s)", m.ID(), m.Description()),
					trkerrors.ErrPrerequisiteMigration,
				)
			}

			e.logger.Warn(e.tr.Trans("migrate.skipped", map[string]string{
				"id":    m.ID(),
				"error": err.Error(),
			}))
			continue
		}

		doc = next
		doc.Set(config.KeyMigrationVersion, m.ID())
	}

	// In-memory and on-disk state must not diverge silently, so a write
	// error is fatal.
	if err := e.store.Write(targetPath, doc); err != nil {
		return nil, err
	}
	e.logger.Debug(e.tr.Trans("migrate.persisted", map[string]string{"path": targetPath}))

	return doc, nil
}
