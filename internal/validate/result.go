package validate

// Result is the outcome of checking whether the configuration keys a
// command requires are present. Created fresh per validation call.
type Result struct {
	// MissingGlobalKeys lists required global keys that are absent or blank.
	MissingGlobalKeys []string

	// MissingProjectKeys lists required project keys that are absent or blank.
	MissingProjectKeys []string

	// CanProceed is true iff both missing-key lists are empty.
	CanProceed bool
}

func newResult(missingGlobal, missingProject []string) *Result {
	return &Result{
		MissingGlobalKeys:  missingGlobal,
		MissingProjectKeys: missingProject,
		CanProceed:         len(missingGlobal) == 0 && len(missingProject) == 0,
	}
}
