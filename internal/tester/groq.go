package tester

import (
	"context"
	"net/http"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// checkGroq lists models on Groq's OpenAI-compatible API.
func checkGroq(ctx context.Context, t *Tester, key string) (types.Status, map[string]any, error) {
	resp, err := t.do(ctx, request{
		method:  http.MethodGet,
		url:     t.endpoints.Groq + "/openai/v1/models",
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
	return status, details, nil
}
