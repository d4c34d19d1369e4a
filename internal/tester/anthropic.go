package tester

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

const anthropicVersion = "2023-06-01"

// checkAnthropic sends a minimal completion request. A 400 still proves
// the key authenticated (the request was parsed past auth), so both 200
// and 400 count as VALID; only 401 means the key is bad.
func checkAnthropic(ctx context.Context, t *Tester, key string) (types.Status, map[string]any, error) {
	body, _ := json.Marshal(map[string]any{
		"model":      "claude-3-5-haiku-latest",
		"max_tokens": 1,
		"messages": []map[string]string{
			{"role": "user", "content": "ping"},
		},
	})
	resp, err := t.do(ctx, request{
		method: http.MethodPost,
		url:    t.endpoints.Anthropic + "/v1/messages",
		headers: map[string]string{
			"x-api-key":         key,
			"anthropic-version": anthropicVersion,
			"content-type":      "application/json",
		},
		body: body,
	})
	if err != nil {
		return "", nil, err
	}

	details := map[string]any{}
	var status types.Status
	switch resp.code {
	case http.StatusOK, http.StatusBadRequest:
		status = types.StatusValid
	default:
		status = statusFromCode(resp.code)
	}
	if status == types.StatusError {
		details["detail"] = httpErrorDetail(resp.code)
	}
	return status, details, nil
}
