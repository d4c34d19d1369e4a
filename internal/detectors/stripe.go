package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

var reStripe = regexp.MustCompile(`sk_(live|test)_[a-zA-Z0-9]{24}`)

func StripeKeys(path string, data []byte) []types.KeyMatch {
	return findAll(path, data, reStripe, types.ServiceStripe)
}
