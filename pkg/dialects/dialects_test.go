package dialects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	d, ok := ByName("cloudberry")
	require.True(t, ok)
	assert.Equal(t, "cloudberry", d.Name)

	_, ok = ByName("oracle")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cloudberry", "postgres"}, Names())
}
