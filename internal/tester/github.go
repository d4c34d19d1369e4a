package tester

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/apigraveyard/apigraveyard/internal/types"
	"github.com/google/go-github/v68/github"
)

// checkGitHub asks the API who the token belongs to. Retries follow the
// same backoff schedule as the plain HTTP checkers.
func checkGitHub(ctx context.Context, t *Tester, key string) (types.Status, map[string]any, error) {
	gh := github.NewClient(t.httpClient).WithAuthToken(key)
	if base := t.endpoints.GitHub; base != defaultEndpoints().GitHub {
		if u, err := url.Parse(strings.TrimSuffix(base, "/") + "/"); err == nil {
			gh.BaseURL = u
		}
	}

	details := map[string]any{}
	for attempt := 0; ; attempt++ {
		user, resp, err := gh.Users.Get(ctx, "")
		if err == nil {
			details["username"] = user.GetLogin()
			return types.StatusValid, details, nil
		}
		code := 0
		if resp != nil {
			code = resp.StatusCode
		}
		if code == 0 {
			if retryable(err) && attempt < maxRetries {
				t.sleep(backoffDelay(attempt, t.backoffBase))
				continue
			}
			return "", nil, err
		}
		if code == http.StatusTooManyRequests && attempt < maxRetries {
			t.sleep(backoffDelay(attempt, t.backoffBase))
			continue
		}
		status := statusFromCode(code)
		if status == types.StatusError {
			details["detail"] = httpErrorDetail(code)
		}
		return status, details, nil
	}
}
