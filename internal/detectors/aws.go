package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

var reAWS = regexp.MustCompile(`AKIA[A-Z0-9]{16}`)

func AWSAccessKeys(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reAWS, types.ServiceAWS)
}
