// Package gitmeta captures repository metadata for scanned directories.
// Everything here is best effort: a directory that is not a git repo, or
// a repo in a strange state, yields nil rather than an error.
package gitmeta

import (
	git "github.com/go-git/go-git/v5"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// Lookup returns remote, branch and commit for the repository containing
// dir, or nil when dir is not inside one.
func Lookup(dir string) *types.RepoInfo {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	info := &types.RepoInfo{}
	if head, err := repo.Head(); err == nil {
		info.Commit = head.Hash().String()
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		}
	}
	if remote, err := repo.Remote(git.DefaultRemoteName); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			info.Remote = urls[0]
		}
	}
	if info.Commit == "" && info.Remote == "" {
		return nil
	}
	return info
}
