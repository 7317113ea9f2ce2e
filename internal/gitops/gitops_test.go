package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestInitAndIsRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	assert.False(t, IsRepo(dir))
	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))
}

func TestCommitPaths(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	tracked := filepath.Join(dir, "cashflow.csv")
	untracked := filepath.Join(dir, "scratch.txt")
	require.NoError(t, os.WriteFile(tracked, []byte("date,category\n"), 0o644))
	require.NoError(t, os.WriteFile(untracked, []byte("x"), 0o644))

	hash, err := CommitPaths(dir, "add: 0001/UMPEG", "Kasva", "kasva@example.org", "cashflow.csv")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Only the named path is committed.
	out, err := exec.Command("git", "-C", dir, "status", "--porcelain").Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "scratch.txt")
	assert.NotContains(t, string(out), "cashflow.csv")
}
