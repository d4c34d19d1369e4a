package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// Covers personal access tokens (ghp_) and app server tokens (ghs_).
var reGitHub = regexp.MustCompile(`gh[ps]_[a-zA-Z0-9]{36}`)

func GitHubTokens(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reGitHub, types.ServiceGitHub)
}
