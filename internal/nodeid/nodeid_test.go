package nodeid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()
	require.NoError(t, uuid.Validate(id))
	assert.NotEqual(t, id, New())
}

func TestSequential(t *testing.T) {
	gen := Sequential("n")
	assert.Equal(t, "n-1", gen())
	assert.Equal(t, "n-2", gen())

	// Independent generators keep independent counters.
	other := Sequential("n")
	assert.Equal(t, "n-1", other())
	assert.Equal(t, "n-3", gen())
}
