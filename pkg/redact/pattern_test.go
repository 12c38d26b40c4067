package redact

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPatternsCompile(t *testing.T) {
	for _, p := range builtinPatterns {
		t.Run(p.Name, func(t *testing.T) {
			_, err := regexp.Compile(p.Pattern)
			require.NoError(t, err)
			assert.NotEmpty(t, p.Replacement)
		})
	}
}

func TestPatternGroupsReferenceKnownPatterns(t *testing.T) {
	known := make(map[string]bool)
	for _, p := range builtinPatterns {
		known[p.Name] = true
	}

	for group, names := range patternGroups {
		for _, name := range names {
			assert.True(t, known[name], "group %s references unknown pattern %s", group, name)
		}
	}
}

func TestCompileGroup(t *testing.T) {
	compiled := compileGroup("pii")
	assert.Len(t, compiled, len(patternGroups["pii"]))

	// Ordering follows builtinPatterns so digit-specific rules run before
	// the generic phone sweep.
	var order []string
	for _, p := range compiled {
		order = append(order, p.Name)
	}
	assert.Equal(t, []string{
		"ssn", "card_number", "account_number", "order_id",
		"phone", "email", "address", "name",
	}, order)

	assert.Nil(t, compileGroup("does-not-exist"))
}

func TestPlaceholdersNeverRematch(t *testing.T) {
	placeholders := []string{
		"{{NAME}}", "{{EMAIL}}", "{{PHONE}}", "{{CARD_NUMBER}}",
		"{{ACCOUNT_NUMBER}}", "{{SSN}}", "{{ADDRESS}}", "{{ORDER_ID}}",
	}

	for _, p := range compileGroup("pii") {
		for _, ph := range placeholders {
			assert.False(t, p.Regex.MatchString(ph),
				"pattern %s matches placeholder %s", p.Name, ph)
		}
	}
}
