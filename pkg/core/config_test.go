package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeepListMissingFile(t *testing.T) {
	keep, err := ReadKeepList(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, keep.Len())
	assert.False(t, keep.Protected("anything"))
}

func TestReadKeepListSkipsCommentsAndBlanks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".cleankeep"), "# comment\n\n*.log\n  docs/*  \n")

	keep, err := ReadKeepList(root)
	require.NoError(t, err)
	assert.Equal(t, 2, keep.Len())
}

func TestKeepListProtected(t *testing.T) {
	keep := &KeepList{patterns: []string{"docs/*", "server.log", "*.sqlite"}}

	assert.True(t, keep.Protected("docs/readme.md"))
	assert.True(t, keep.Protected("server.log"))
	assert.True(t, keep.Protected(filepath.Join("nested", "server.log")))
	assert.True(t, keep.Protected(filepath.Join("data", "chat.sqlite")))

	assert.False(t, keep.Protected("readme.md"))
	assert.False(t, keep.Protected("server.log.1"))
}
