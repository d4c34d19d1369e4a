package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, "********", Mask("12345678"))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "", Mask(""))

	raw := "sk-" + strings.Repeat("a", 48)
	masked := Mask(raw)
	assert.Equal(t, "sk-a...aaaa", masked)
	assert.NotContains(t, masked, raw[4:len(raw)-4])
}

func TestNewStoredKeyHasNoValidationState(t *testing.T) {
	m := KeyMatch{
		Service:     ServiceStripe,
		RawValue:    "sk_live_" + strings.Repeat("x", 24),
		MaskedValue: Mask("sk_live_" + strings.Repeat("x", 24)),
		FilePath:    "app/settings.py",
		Line:        12,
		Column:      20,
	}
	k := NewStoredKey(m)
	assert.Equal(t, m.Service, k.Service)
	assert.Equal(t, m.MaskedValue, k.Key)
	assert.Equal(t, m.RawValue, k.FullKey)
	assert.Equal(t, m.Line, k.LineNumber)
	assert.Nil(t, k.Status)
	assert.Nil(t, k.LastTested)
}
