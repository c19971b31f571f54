package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script := `[{"speaker":"Reporter","text":"Good evening."},{"speaker":"Dex the Street Poet","text":"The city hums."}]`

	segments, err := ParseScript(script)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "Reporter", segments[0].Speaker)
	assert.Equal(t, "Good evening.", segments[0].Text)
	assert.Equal(t, "Dex the Street Poet", segments[1].Speaker)
}

func TestParseScriptMalformed(t *testing.T) {
	for _, script := range []string{"", "not json", `{"speaker":"x"}`} {
		_, err := ParseScript(script)
		assert.Error(t, err, "script %q should not parse", script)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `[{"speaker":"Reporter","text":"hi"}]`, `[{"speaker":"Reporter","text":"hi"}]`},
		{"json fence", "```json\n[1,2]\n```", "[1,2]"},
		{"plain fence", "```\n[1,2]\n```", "[1,2]"},
		{"whitespace", "  [1,2]\n", "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestProviderValid(t *testing.T) {
	for _, p := range Providers {
		assert.True(t, p.Valid(), "provider %s", p)
	}
	assert.False(t, Provider("mistral").Valid())
	assert.False(t, Provider("").Valid())
}
