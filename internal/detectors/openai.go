package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

var reOpenAI = regexp.MustCompile(`sk-[a-zA-Z0-9]{48}`)

func OpenAIKeys(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reOpenAI, types.ServiceOpenAI)
}
