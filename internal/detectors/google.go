package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

var reGoogle = regexp.MustCompile(`AIza[A-Za-z0-9_-]{35}`)

func GoogleKeys(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reGoogle, types.ServiceGoogle)
}
