package detectors

import (
	"strings"
	"testing"

	"github.com/apigraveyard/apigraveyard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIKeys(t *testing.T) {
	data := []byte(`const k = "sk-` + strings.Repeat("a", 48) + `";`)
	ms := OpenAIKeys("x.js", data)
	require.Len(t, ms, 1)
	assert.Equal(t, types.ServiceOpenAI, ms[0].Service)
	assert.Equal(t, 1, ms[0].Line)
	assert.Equal(t, 12, ms[0].Column)
}

func TestGroqKeys(t *testing.T) {
	data := []byte("gsk_" + strings.Repeat("Z", 52))
	require.Len(t, GroqKeys("x.txt", data), 1)
	// one short of the required tail
	data = []byte("gsk_" + strings.Repeat("Z", 51))
	assert.Empty(t, GroqKeys("x.txt", data))
}

func TestGitHubTokens(t *testing.T) {
	tail := strings.Repeat("A", 36)
	for _, prefix := range []string{"ghp_", "ghs_"} {
		ms := GitHubTokens("x.txt", []byte("token="+prefix+tail))
		require.Len(t, ms, 1, prefix)
		assert.Equal(t, prefix+tail, ms[0].RawValue)
	}
	assert.Empty(t, GitHubTokens("x.txt", []byte("gho_"+tail)))
}

func TestStripeKeys(t *testing.T) {
	live := "sk_live_" + strings.Repeat("b", 24)
	test := "sk_test_" + strings.Repeat("b", 24)
	ms := StripeKeys("x.txt", []byte(live+"\n"+test))
	require.Len(t, ms, 2)
	assert.Equal(t, 2, ms[1].Line)
}

func TestGoogleKeys(t *testing.T) {
	ms := GoogleKeys("x.txt", []byte("AIza"+strings.Repeat("x_-", 11)+"xx"))
	require.Len(t, ms, 1)
}

func TestAWSAccessKeys(t *testing.T) {
	require.Len(t, AWSAccessKeys("x.txt", []byte("AKIA"+strings.Repeat("Q", 16))), 1)
	assert.Empty(t, AWSAccessKeys("x.txt", []byte("AKIA"+strings.Repeat("q", 16))))
}

func TestAnthropicKeys(t *testing.T) {
	ms := AnthropicKeys("x.txt", []byte("sk-ant-"+strings.Repeat("k", 95)))
	require.Len(t, ms, 1)
}

func TestHuggingFaceTokens(t *testing.T) {
	require.Len(t, HuggingFaceTokens("x.txt", []byte("hf_"+strings.Repeat("m", 34))), 1)
}

func TestRunAllMultipleServices(t *testing.T) {
	content := "a = sk-" + strings.Repeat("a", 48) + "\nb = AKIA" + strings.Repeat("B", 16) + "\n"
	ms := RunAll("multi.env", []byte(content))
	require.Len(t, ms, 2)
	assert.Equal(t, types.ServiceOpenAI, ms[0].Service)
	assert.Equal(t, types.ServiceAWS, ms[1].Service)
	assert.Equal(t, 2, ms[1].Line)
	assert.Equal(t, 5, ms[1].Column)
}

func TestLineColAtKnownOffsets(t *testing.T) {
	data := []byte("one\ntwo\nthree")
	line, col := lineCol(data, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
	line, col = lineCol(data, 4) // 't' of "two"
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
	line, col = lineCol(data, 10) // 'r' of "three"
	assert.Equal(t, 3, line)
	assert.Equal(t, 3, col)
}

func TestMatchesService(t *testing.T) {
	assert.True(t, MatchesService(types.ServiceAWS, "AKIA"+strings.Repeat("7", 16)))
	assert.False(t, MatchesService(types.ServiceAWS, "AKIA"+strings.Repeat("7", 15)))
	assert.False(t, MatchesService(types.ServiceAWS, "xAKIA"+strings.Repeat("7", 16)))
}
