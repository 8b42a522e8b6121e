package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProviders(t *testing.T) {
	specs := SearchProviders()
	require.Len(t, specs, 2)
	assert.Equal(t, "brave", specs[0].Name)
	assert.Equal(t, "BRAVE_API_KEY", specs[0].EnvKey)
	assert.Equal(t, braveSearchEndpoint, specs[0].DefaultURL)
	assert.Equal(t, "grok", specs[1].Name)
	assert.Equal(t, "XAI_API_KEY", specs[1].EnvKey)
	assert.Equal(t, "xAI Grok", specs[1].Label())

	assert.Equal(t, "Custom", SearchProviderSpec{Name: "custom"}.Label())
	assert.NotPanics(t, func() {
		assert.Equal(t, "", SearchProviderSpec{}.Label())
	})
}

func TestFindSearchProvider(t *testing.T) {
	spec := FindSearchProvider(" Grok ")
	require.NotNil(t, spec)
	assert.Equal(t, grokResponsesEndpoint, spec.DefaultURL)
	assert.Nil(t, FindSearchProvider("bing"))
}
