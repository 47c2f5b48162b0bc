package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/numvalidator/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"production":  environment.Production,
		"prod":        environment.Production,
		" PROD ":      environment.Production,
		"staging":     environment.Staging,
		"stage":       environment.Staging,
		"development": environment.Development,
		"dev":         environment.Development,
		"":            environment.Development,
		"qa":          environment.Development,
	}

	for name, want := range tests {
		assert.Equal(t, want, environment.Parse(name), name)
	}
	assert.Equal(t, "staging", environment.Staging.String())
}
