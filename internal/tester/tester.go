package tester

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// TestDelay is the fixed pause between successive key tests, to respect
// provider rate limits.
const TestDelay = 500 * time.Millisecond

// Endpoints holds the base URLs of the provider APIs. Overridable for
// tests; zero values fall back to the real services.
type Endpoints struct {
	OpenAI      string
	Groq        string
	GitHub      string
	Stripe      string
	Anthropic   string
	HuggingFace string
}

func defaultEndpoints() Endpoints {
	return Endpoints{
		OpenAI:      "https://api.openai.com",
		Groq:        "https://api.groq.com",
		GitHub:      "https://api.github.com",
		Stripe:      "https://api.stripe.com",
		Anthropic:   "https://api.anthropic.com",
		HuggingFace: "https://huggingface.co",
	}
}

// Tester validates scanned keys against their origin services, strictly
// sequentially.
type Tester struct {
	httpClient  *http.Client
	endpoints   Endpoints
	delay       time.Duration
	backoffBase time.Duration
	sleep       func(time.Duration)
	now         func() time.Time
}

// Option tweaks a Tester; used mainly by tests.
type Option func(*Tester)

// WithEndpoints overrides the provider base URLs.
func WithEndpoints(e Endpoints) Option {
	return func(t *Tester) {
		d := defaultEndpoints()
		if e.OpenAI == "" {
			e.OpenAI = d.OpenAI
		}
		if e.Groq == "" {
			e.Groq = d.Groq
		}
		if e.GitHub == "" {
			e.GitHub = d.GitHub
		}
		if e.Stripe == "" {
			e.Stripe = d.Stripe
		}
		if e.Anthropic == "" {
			e.Anthropic = d.Anthropic
		}
		if e.HuggingFace == "" {
			e.HuggingFace = d.HuggingFace
		}
		t.endpoints = e
	}
}

// WithDelay overrides the inter-key pacing delay.
func WithDelay(d time.Duration) Option {
	return func(t *Tester) { t.delay = d }
}

// WithBackoffBase overrides the retry backoff base delay.
func WithBackoffBase(d time.Duration) Option {
	return func(t *Tester) { t.backoffBase = d }
}

// WithSleeper replaces the sleep function (tests).
func WithSleeper(f func(time.Duration)) Option {
	return func(t *Tester) { t.sleep = f }
}

// New builds a Tester with the fixed request timeout.
func New(opts ...Option) *Tester {
	t := &Tester{
		httpClient:  &http.Client{Timeout: requestTimeout},
		endpoints:   defaultEndpoints(),
		delay:       TestDelay,
		backoffBase: backoffBase,
		sleep:       time.Sleep,
		now:         time.Now,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// RunOptions controls a validation run.
type RunOptions struct {
	Progress func(done, total int, svc types.Service)
}

// Run tests every key in input order, one at a time with a fixed delay
// between requests. One key's failure never aborts the batch; it becomes
// an ERROR result. The returned slice matches the input order. When ctx
// is cancelled the run stops after the in-flight key and returns the
// partial results.
func (t *Tester) Run(ctx context.Context, keys []types.KeyMatch, opts RunOptions) []types.KeyResult {
	out := make([]types.KeyResult, 0, len(keys))
	for i, k := range keys {
		if ctx.Err() != nil {
			return out
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(keys), k.Service)
		}
		out = append(out, types.KeyResult{
			KeyMatch:         k,
			ValidationResult: t.testOne(ctx, k),
		})
		if i < len(keys)-1 {
			t.sleep(t.delay)
		}
	}
	return out
}

// checker issues the provider-specific authenticity check for one key.
type checker func(ctx context.Context, t *Tester, key string) (types.Status, map[string]any, error)

// checkerFor dispatches over the closed provider set. A nil return means
// no tester exists for the service (Google/Firebase).
func checkerFor(svc types.Service) checker {
	switch svc {
	case types.ServiceOpenAI:
		return checkOpenAI
	case types.ServiceGroq:
		return checkGroq
	case types.ServiceGitHub:
		return checkGitHub
	case types.ServiceStripe:
		return checkStripe
	case types.ServiceGoogle:
		return nil
	case types.ServiceAWS:
		return checkAWS
	case types.ServiceAnthropic:
		return checkAnthropic
	case types.ServiceHuggingFace:
		return checkHuggingFace
	}
	return nil
}

func (t *Tester) testOne(ctx context.Context, m types.KeyMatch) types.ValidationResult {
	res := types.ValidationResult{Details: map[string]any{}}

	chk := checkerFor(m.Service)
	if chk == nil {
		res.Status = types.StatusError
		res.Error = fmt.Sprintf("no tester available for %s", m.Service)
	} else if status, details, err := chk(ctx, t, m.RawValue); err != nil {
		res.Status = types.StatusError
		res.Error = err.Error()
	} else {
		res.Status = status
		for k, v := range details {
			res.Details[k] = v
		}
	}

	// Always stamped, success or not.
	res.Details["testedAt"] = t.now().UTC().Format(time.RFC3339)
	return res
}
