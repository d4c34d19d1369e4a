package gitmeta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://example.com/demo.git"},
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hi\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "t", Email: "t@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestLookupReadsHeadAndRemote(t *testing.T) {
	dir := initRepoWithCommit(t)

	info := Lookup(dir)
	require.NotNil(t, info)
	assert.Equal(t, "https://example.com/demo.git", info.Remote)
	assert.NotEmpty(t, info.Branch)
	assert.Len(t, info.Commit, 40)
}

func TestLookupFindsRepoFromSubdirectory(t *testing.T) {
	dir := initRepoWithCommit(t)
	sub := filepath.Join(dir, "nested", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info := Lookup(sub)
	require.NotNil(t, info)
	assert.NotEmpty(t, info.Commit)
}

func TestLookupOutsideRepoReturnsNil(t *testing.T) {
	assert.Nil(t, Lookup(t.TempDir()))
}
