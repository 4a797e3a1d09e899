// Package migrate evolves persisted configuration documents across releases
// of the tool.
//
// Each release may ship [Migration] values: versioned, reversible
// transformations of a configuration document, ordered by a sortable ID and
// scoped to either the global or the per-project document. The [Executor]
// applies outstanding migrations strictly in order, records the last applied
// ID under the migration_version key, and persists the final document
// atomically.
//
// A migration marked as a prerequisite aborts the whole run when it fails;
// any other failure is logged and skipped so that later, independent
// migrations still run.
package migrate
