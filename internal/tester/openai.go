package tester

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// checkOpenAI lists models to establish validity. When the key is valid
// it issues one follow-up model fetch to harvest rate-limit headers into
// the quota details; a failed follow-up never downgrades the result.
func checkOpenAI(ctx context.Context, t *Tester, key string) (types.Status, map[string]any, error) {
	resp, err := t.do(ctx, request{
		method:  http.MethodGet,
		url:     t.endpoints.OpenAI + "/v1/models",
		headers: map[string]string{"Authorization": "Bearer " + key},
	})
	if err != nil {
		return "", nil, err
	}
	status := statusFromCode(resp.code)
	details := map[string]any{}
	switch status {
	case types.StatusValid:
		details["models"] = modelCount(resp.body)
	case types.StatusError:
		details["detail"] = httpErrorDetail(resp.code)
	}
	if status == types.StatusValid {
		if quota, err := t.openAIQuota(ctx, key); err == nil && quota != "" {
			details["rateLimitRemaining"] = quota
		}
	}
	return status, details, nil
}

func (t *Tester) openAIQuota(ctx context.Context, key string) (string, error) {
	resp, err := t.doOnce(ctx, request{
		method:  http.MethodGet,
		url:     t.endpoints.OpenAI + "/v1/models/gpt-4o-mini",
		headers: map[string]string{"Authorization": "Bearer " + key},
	})
	if err != nil {
		return "", err
	}
	if resp.code != http.StatusOK {
		return "", fmt.Errorf("quota probe: %s", httpErrorDetail(resp.code))
	}
	return resp.headers.Get("x-ratelimit-remaining-requests"), nil
}
