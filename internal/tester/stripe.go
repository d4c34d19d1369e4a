package tester

import (
	"context"
	"net/http"
	"strings"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// checkStripe fetches the account balance using the key as the basic
// auth username, Stripe's documented auth shape.
func checkStripe(ctx context.Context, t *Tester, key string) (types.Status, map[string]any, error) {
	resp, err := t.do(ctx, request{
		method: http.MethodGet,
		url:    t.endpoints.Stripe + "/v1/balance",
		user:   key,
	})
	if err != nil {
		return "", nil, err
	}
	status := statusFromCode(resp.code)
	details := map[string]any{}
	switch status {
	case types.StatusValid:
		mode := "test"
		if strings.HasPrefix(key, "sk_live_") {
			mode = "live"
		}
		details["mode"] = mode
		details["livemode"] = mode == "live"
	case types.StatusError:
		details["detail"] = httpErrorDetail(resp.code)
	}
	return status, details, nil
}
