package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

var reHuggingFace = regexp.MustCompile(`hf_[a-zA-Z0-9]{34}`)

func HuggingFaceTokens(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reHuggingFace, types.ServiceHuggingFace)
}
