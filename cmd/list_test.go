package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

func TestListCmd(t *testing.T) {
	output, err := execute(t, "list")
	require.NoError(t, err)

	for _, info := range m.Catalog {
		assert.Contains(t, output, string(info.Category))
	}
}

func TestListCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, "list", "extra")
	require.Error(t, err)
}
