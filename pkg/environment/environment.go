package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a configured environment name to an Environment.
// Unknown and empty names fall back to Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }
