package migrate

import (
	"github.com/trkcli/trk/internal/config"
)

// Scope identifies which configuration document a migration applies to.
type Scope string

const (
	// ScopeGlobal targets the global configuration document.
	ScopeGlobal Scope = "global"
	// ScopeProject targets the per-project configuration document.
	ScopeProject Scope = "project"
)

// Migration is a single versioned, reversible transformation of a
// configuration document.
//
// Migrations are stateless value-like units. The executor receives them in
// ascending ID order and never caches them across calls.
type Migration interface {
	// ID is a lexicographically sortable version identifier (a
	// timestamp-like string). It is unique and defines application order.
	ID() string

	// Description is a human-readable summary of the transformation.
	Description() string

	// Scope reports which configuration document kind the migration
	// applies to.
	Scope() Scope

	// Prerequisite reports whether a failure to apply this migration must
	// halt the whole run.
	Prerequisite() bool

	// Up applies the forward transformation and returns the resulting
	// document. The executor passes a private copy, so implementations may
	// mutate doc in place and return it.
	Up(doc *config.Document) (*config.Document, error)

	// Down applies the inverse transformation. The executor's forward path
	// never calls it; it exists for rollback tooling.
	Down(doc *config.Document) (*config.Document, error)
}

// def carries the descriptor fields shared by all migration variants.
type def struct {
	id           string
	description  string
	scope        Scope
	prerequisite bool
}

func (d def) ID() string          { return d.id }
func (d def) Description() string { return d.description }
func (d def) Scope() Scope        { return d.scope }
func (d def) Prerequisite() bool  { return d.prerequisite }
