package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "cast "+Version)
	assert.Contains(t, out.String(), "commit: "+GitCommit)
}

func TestGetCLIContextWithoutInit(t *testing.T) {
	t.Parallel()
	cmd := NewRootCommand()
	_, err := getCLIContext(cmd)
	assert.Error(t, err)
}
