package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

var reGroq = regexp.MustCompile(`gsk_[a-zA-Z0-9]{52}`)

func GroqKeys(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reGroq, types.ServiceGroq)
}
