package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesFileGlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pyc"), "x")
	writeFile(t, filepath.Join(root, "sub", "b.pyc"), "x")
	writeFile(t, filepath.Join(root, "sub", "c.py"), "x")

	matches, err := FindMatches(root, "*.pyc", KindFile)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.pyc"),
		filepath.Join(root, "sub", "b.pyc"),
	}, matches)
}

func TestFindMatchesDirNameDoesNotDescend(t *testing.T) {
	root := t.TempDir()
	makeDir(t, filepath.Join(root, "venv", "lib", "venv"))
	makeDir(t, filepath.Join(root, "src", "venv"))
	writeFile(t, filepath.Join(root, "src", "venv.txt"), "not a dir match")

	matches, err := FindMatches(root, "venv", KindDir)
	require.NoError(t, err)

	// The venv nested inside the first match is not reported; it goes
	// away with its parent.
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "venv"),
		filepath.Join(root, "src", "venv"),
	}, matches)
}

func TestFindMatchesKindFiltersDirs(t *testing.T) {
	root := t.TempDir()
	makeDir(t, filepath.Join(root, "build"))
	writeFile(t, filepath.Join(root, "sub", "build"), "a file named build")

	dirs, err := FindMatches(root, "build", KindDir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "build")}, dirs)

	files, err := FindMatches(root, "build", KindFile)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "sub", "build")}, files)
}

func TestFindMatchesEnvNeverMatchesExample(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), "KEY=1")
	writeFile(t, filepath.Join(root, ".env.example"), "KEY=")
	writeFile(t, filepath.Join(root, "sub", ".env"), "KEY=2")
	writeFile(t, filepath.Join(root, "sub", ".env.example"), "KEY=")

	matches, err := FindMatches(root, ".env", KindFile)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, ".env"),
		filepath.Join(root, "sub", ".env"),
	}, matches)
}

func TestFindMatchesPackagingGlob(t *testing.T) {
	root := t.TempDir()
	makeDir(t, filepath.Join(root, "libs", "kotaemon.egg-info"))
	makeDir(t, filepath.Join(root, "libs", "kotaemon"))

	matches, err := FindMatches(root, "*.egg-info", KindDir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "libs", "kotaemon.egg-info")}, matches)
}

func TestFindMatchesNeverMatchesRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "venv")
	makeDir(t, root)

	matches, err := FindMatches(root, "venv", KindDir)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
