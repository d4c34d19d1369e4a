package core

import (
	"context"

	"github.com/apigraveyard/apigraveyard/internal/detectors"
	"github.com/apigraveyard/apigraveyard/internal/engine"
	"github.com/apigraveyard/apigraveyard/internal/tester"
	"github.com/apigraveyard/apigraveyard/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type (
	Options   = engine.Options
	Result    = engine.Result
	KeyMatch  = types.KeyMatch
	KeyResult = types.KeyResult
	Service   = types.Service
	Status    = types.Status
)

// Scan is the stable entrypoint for other programs.
func Scan(opts Options) Result {
	return engine.Scan(opts)
}

// Test validates keys sequentially against their issuing services.
func Test(ctx context.Context, keys []KeyMatch) []KeyResult {
	return tester.New().Run(ctx, keys, tester.RunOptions{})
}

// Services returns the supported provider set in display order.
// This is exposed for convenience to avoid importing internals directly.
func Services() []Service { return types.Services() }

// MatchesService reports whether value fully matches the key format of
// the given provider.
func MatchesService(svc Service, value string) bool {
	return detectors.MatchesService(svc, value)
}

// Mask reduces a raw key to its display form.
func Mask(raw string) string { return types.Mask(raw) }
