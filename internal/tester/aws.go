package tester

import (
	"context"

	"github.com/apigraveyard/apigraveyard/internal/detectors"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

// checkAWS never calls the network: an access key ID alone cannot be
// verified without its secret key, so only the format is checked.
func checkAWS(_ context.Context, _ *Tester, key string) (types.Status, map[string]any, error) {
	details := map[string]any{
		"note": "format check only; full validation requires the secret access key",
	}
	if detectors.MatchesService(types.ServiceAWS, key) {
		return types.StatusValid, details, nil
	}
	return types.StatusInvalid, details, nil
}
