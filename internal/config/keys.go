package config

// Well-known configuration keys.
//
// Global keys live in <ConfigHome>/trk/config.yml; project keys live in
// .trk.yml at the repository root.
const (
	// KeyMigrationVersion records the ID of the most recently applied
	// migration. Maintained by the migration executor, never set by hand.
	KeyMigrationVersion = "migration_version"

	// Global keys.
	KeyTrackerURL      = "trackerUrl"
	KeyTrackerToken    = "trackerToken"
	KeyTrackerUsername = "username"
	KeyHostToken       = "hostToken"
	KeyEditor          = "editor"

	// Project keys.
	KeyProjectKey          = "projectKey"
	KeyBaseBranch          = "baseBranch"
	KeyRepoOwner           = "repoOwner"
	KeyRepoName            = "repoName"
	KeyDraftPR             = "draftPr"
	KeyDeleteBranchOnMerge = "deleteBranchOnMerge"
)
