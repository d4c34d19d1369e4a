package detectors

import (
	"regexp"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// Detector finds candidate keys for one provider in a file's content.
type Detector func(path string, data []byte) []types.KeyMatch

var all = []Detector{
	OpenAIKeys, GroqKeys, GitHubTokens, StripeKeys,
	GoogleKeys, AWSAccessKeys, AnthropicKeys, HuggingFaceTokens,
}

var patternByService = map[types.Service]*regexp.Regexp{
	types.ServiceOpenAI:      reOpenAI,
	types.ServiceGroq:        reGroq,
	types.ServiceGitHub:      reGitHub,
	types.ServiceStripe:      reStripe,
	types.ServiceGoogle:      reGoogle,
	types.ServiceAWS:         reAWS,
	types.ServiceAnthropic:   reAnthropic,
	types.ServiceHuggingFace: reHuggingFace,
}

// RunAll applies every provider's detector to the file content. Matches
// are returned in detector order, then occurrence order; cross-file
// dedupe is the scanner's job.
func RunAll(path string, data []byte) []types.KeyMatch {
	var out []types.KeyMatch
	for _, d := range all {
		out = append(out, d(path, data)...)
	}
	return out
}

// MatchesService reports whether value is, in full, a well-formed key for
// the given provider. Used by format-only checks (AWS).
func MatchesService(svc types.Service, value string) bool {
	re, ok := patternByService[svc]
	if !ok {
		return false
	}
	return re.FindString(value) == value
}
