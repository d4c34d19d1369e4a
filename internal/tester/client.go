package tester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// requestTimeout is the fixed per-request timeout for every outbound
// validation call.
const requestTimeout = 10 * time.Second

// request describes one outbound call so it can be rebuilt on retry.
type request struct {
	method  string
	url     string
	headers map[string]string
	user    string // basic auth username (Stripe); empty = none
	body    []byte
}

// response is the slim result the checkers consume.
type response struct {
	code    int
	body    []byte
	headers http.Header
}

func (c *Tester) do(ctx context.Context, r request) (response, error) {
	var (
		resp response
		err  error
	)
	for attempt := 0; ; attempt++ {
		resp, err = c.doOnce(ctx, r)
		if err == nil && resp.code != http.StatusTooManyRequests {
			return resp, nil
		}
		if err != nil && !retryable(err) {
			return response{}, err
		}
		if attempt >= maxRetries {
			if err != nil {
				return response{}, err
			}
			return resp, nil // report the last observed 429
		}
		c.sleep(backoffDelay(attempt, c.backoffBase))
	}
}

func (c *Tester) doOnce(ctx context.Context, r request) (response, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return response{}, err
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if r.user != "" {
		req.SetBasicAuth(r.user, "")
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, err
	}
	defer res.Body.Close()
	b, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return response{}, err
	}
	return response{code: res.StatusCode, body: b, headers: res.Header}, nil
}

// statusFromCode maps an HTTP status to a key status: 200 VALID, 401
// INVALID, 403 EXPIRED, 429 RATE_LIMITED, anything else ERROR.
func statusFromCode(code int) types.Status {
	switch code {
	case http.StatusOK:
		return types.StatusValid
	case http.StatusUnauthorized:
		return types.StatusInvalid
	case http.StatusForbidden:
		return types.StatusExpired
	case http.StatusTooManyRequests:
		return types.StatusRateLimited
	default:
		return types.StatusError
	}
}

// modelCount extracts len(data) from an OpenAI-style model list payload.
func modelCount(body []byte) int {
	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0
	}
	return len(payload.Data)
}

func httpErrorDetail(code int) string {
	return fmt.Sprintf("HTTP %d", code)
}
