package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"new", "sent", "contacted", "emailed"} {
		st, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), st)
	}

	_, err := ParseStatus("archived")
	assert.Error(t, err)
}
