package migrate

import "sort"

// Registry holds the known migrations in ascending ID order.
type Registry struct {
	migrations []Migration
}

// NewRegistry builds a registry from the given migrations, sorting them by ID.
func NewRegistry(migrations ...Migration) *Registry {
	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })
	return &Registry{migrations: sorted}
}

// DefaultRegistry returns the registry of all migrations shipped with this
// release of the tool.
func DefaultRegistry() *Registry {
	return NewRegistry(allMigrations()...)
}

// All returns every registered migration in ascending ID order.
func (r *Registry) All() []Migration {
	out := make([]Migration, len(r.migrations))
	copy(out, r.migrations)
	return out
}

// ForScope returns the migrations for the given scope in ascending ID order.
func (r *Registry) ForScope(scope Scope) []Migration {
	var out []Migration
	for _, m := range r.migrations {
		if m.Scope() == scope {
			out = append(out, m)
		}
	}
	return out
}

// Pending returns the scope's migrations with IDs after currentVersion, in
// ascending ID order. An empty currentVersion means none have been applied.
func (r *Registry) Pending(scope Scope, currentVersion string) []Migration {
	var out []Migration
	for _, m := range r.ForScope(scope) {
		if m.ID() > currentVersion {
			out = append(out, m)
		}
	}
	return out
}
