package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/readme-svg/internal/card"
)

func TestLoadMatchesMetricTable(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	keys := make([]card.MetricKey, len(c.Metrics))
	for i, m := range c.Metrics {
		keys[i] = card.MetricKey(m.Key)
		assert.NotEmpty(t, m.Name, m.Key)
		assert.NotEmpty(t, m.Description, m.Key)
		assert.NotEmpty(t, m.Icon, m.Key)
	}
	assert.Equal(t, card.MetricKeys, keys)
}

func TestExamplesPointAtRoutes(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.Examples)
	for _, e := range c.Examples {
		assert.True(t, strings.HasPrefix(e.Path, "/api/"), e.Path)
		assert.NotEmpty(t, e.Title)
	}
}

func TestOptions(t *testing.T) {
	assert.Equal(t, []Option{
		{Value: "dark", Label: "Dark"},
		{Value: "light", Label: "Light"},
		{Value: "auto", Label: "Auto"},
	}, Themes())

	loaders := Loaders()
	require.Len(t, loaders, 4)
	assert.Equal(t, Option{Value: "spinner", Label: "Spinner"}, loaders[0])
	assert.Len(t, Animations(), 3)
}
