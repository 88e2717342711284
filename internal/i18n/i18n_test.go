package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocale(t *testing.T) {
	cases := []struct {
		in   string
		want Locale
		ok   bool
	}{
		{"uz", Uzbek, true},
		{"RU", Russian, true},
		{" en ", English, true},
		{"de", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseLocale(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestTFillsParams(t *testing.T) {
	got := T(English, "welcome", Params{"name": "Alice"})
	assert.Contains(t, got, "Alice")
	assert.NotContains(t, got, "{name}")
}

func TestTFallsBackToDefaultLocale(t *testing.T) {
	got := T("de", "choose_language")
	assert.Equal(t, tables[Uzbek]["choose_language"], got)
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no_such_key", T(Russian, "no_such_key"))
}

func TestAllLocalesShareKeySet(t *testing.T) {
	base := tables[Uzbek]
	require.NotEmpty(t, base)
	for _, loc := range Locales() {
		table := tables[loc]
		require.Len(t, table, len(base), "locale %s", loc)
		for key := range base {
			_, ok := table[key]
			assert.True(t, ok, "locale %s missing key %s", loc, key)
		}
	}
}
