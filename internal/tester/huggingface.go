package tester

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// checkHuggingFace calls the whoami endpoint and records the account name.
func checkHuggingFace(ctx context.Context, t *Tester, key string) (types.Status, map[string]any, error) {
	resp, err := t.do(ctx, request{
		method:  http.MethodGet,
		url:     t.endpoints.HuggingFace + "/api/whoami-v2",
		headers: map[string]string{"Authorization": "Bearer " + key},
	})
	if err != nil {
		return "", nil, err
	}
	status := statusFromCode(resp.code)
	details := map[string]any{}
	switch status {
	case types.StatusValid:
		var who struct {
			Name string `json:"name"`
		}
		if json.Unmarshal(resp.body, &who) == nil && who.Name != "" {
			details["username"] = who.Name
		}
	case types.StatusError:
		details["detail"] = httpErrorDetail(resp.code)
	}
	return status, details, nil
}
