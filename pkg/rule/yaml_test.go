package rule_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payloadkit/pkg/rule"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	reg, err := rule.LoadFile("testdata/teams.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"projects", "teams"}, reg.Names())

	teams, err := reg.Get("teams")
	require.NoError(t, err)
	assert.Equal(t, []string{"description", "name", "team_type"}, teams.Required())
	assert.Equal(t, []string{"members"}, teams.Excluded)
	assert.Equal(t, map[string]string{"created_by": "user", "last_updated_by": "user"}, teams.AutoPopulate)
	assert.Equal(t, rule.TypeList, teams.Fields["members"].Type)
	assert.Equal(t, []any{"tech", "management", "business", "marketing"}, teams.Fields["team_type"].AllowedValues)

	projects, err := reg.Get("projects")
	require.NoError(t, err)
	assert.Empty(t, projects.AutoPopulate)
	assert.Empty(t, projects.Excluded)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := rule.LoadFile("testdata/does-not-exist.yaml")
	assert.ErrorIs(t, err, rule.ErrFailedToLoadRules)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		reg, err := rule.LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Zero(t, reg.Len())
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := rule.LoadYAML(strings.NewReader("resources:\n  teams:\n    feilds: {}\n"))
		assert.ErrorIs(t, err, rule.ErrFailedToLoadRules)
	})

	t.Run("invalid rule", func(t *testing.T) {
		t.Parallel()
		doc := "resources:\n  teams:\n    fields:\n      name: {type: uuid}\n"
		_, err := rule.LoadYAML(strings.NewReader(doc))
		assert.ErrorIs(t, err, rule.ErrFailedToLoadRules)
		assert.ErrorIs(t, err, rule.ErrInvalidRule)
	})
}
