package validate

import "github.com/trkcli/trk/internal/config"

// Requirements names the configuration keys a command needs per scope.
type Requirements struct {
	Global  []string
	Project []string
}

// commandRequirements maps command names to the keys they need. Commands
// not listed here require nothing.
var commandRequirements = map[string]Requirements{
	"open": {
		Global:  []string{config.KeyTrackerURL, config.KeyTrackerToken},
		Project: []string{config.KeyProjectKey},
	},
	"move": {
		Global:  []string{config.KeyTrackerURL, config.KeyTrackerToken},
		Project: []string{config.KeyProjectKey},
	},
	"search": {
		Global:  []string{config.KeyTrackerURL, config.KeyTrackerToken},
		Project: []string{config.KeyProjectKey},
	},
	"pr": {
		Global:  []string{config.KeyTrackerURL, config.KeyTrackerToken, config.KeyHostToken},
		Project: []string{config.KeyProjectKey, config.KeyBaseBranch, config.KeyRepoOwner, config.KeyRepoName},
	},
	"release": {
		Global:  []string{config.KeyHostToken},
		Project: []string{config.KeyRepoOwner, config.KeyRepoName},
	},
}

// RequirementsFor returns the requirements for command. Unknown commands
// have empty requirements and are vacuously satisfiable.
func RequirementsFor(command string) Requirements {
	return commandRequirements[command]
}
