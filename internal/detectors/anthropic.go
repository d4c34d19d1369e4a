package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

var reAnthropic = regexp.MustCompile(`sk-ant-[A-Za-z0-9-_]{95}`)

func AnthropicKeys(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reAnthropic, types.ServiceAnthropic)
}
