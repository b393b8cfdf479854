package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/runoshun/issue-import/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_Help(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Import Commands:")
	assert.Contains(t, out.String(), "import")
	assert.Contains(t, out.String(), "auth")
	assert.Contains(t, out.String(), "config")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "1.2.3")
}

func TestPrintError_ConfigError(t *testing.T) {
	var buf bytes.Buffer
	err := &domain.ConfigError{Violations: []domain.Violation{
		domain.ViolationMissingProject,
		domain.ViolationInvalidState,
	}}

	PrintError(&buf, err)

	assert.Equal(t,
		"error: "+domain.ViolationMissingProject.Message()+"\n"+
			"error: "+domain.ViolationInvalidState.Message()+"\n",
		buf.String())
}

func TestPrintError_Other(t *testing.T) {
	var buf bytes.Buffer

	PrintError(&buf, errors.New("load config: boom"))

	assert.Equal(t, "error: load config: boom\n", buf.String())
}
