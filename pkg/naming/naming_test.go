package naming

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s(v string) *string {
	return &v
}

func TestMatchesIgnoresSpacingAndPunctuation(t *testing.T) {
	assert.NoError(t, Matches(s("WGS 84"), s("WGS84"), false))
	assert.NoError(t, Matches(s("WGS 84"), s("wgs84"), true))
	assert.NoError(t, Matches(s("NAD83 (CORS96)"), s("NAD83_CORS96"), false))
	assert.NoError(t, Matches(s("Clarke 1866"), s("clarke  1866"), true))
	assert.NoError(t, Matches(s("Krassowsky 1940"), s("Krassowsky, 1940."), false))
}

func TestMatchesRejectsDifferentNames(t *testing.T) {
	assert.Error(t, Matches(s("WGS 84"), s("NAD83"), true))
	assert.Error(t, Matches(s("WGS 84"), s("WGS 72"), true))
	assert.Error(t, Matches(s("WGS 84"), s("wgs84"), false))
}

func TestMatchesTrailingContent(t *testing.T) {
	err := Matches(s("WGS 84"), s("WGS84X"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected trailing string")
	assert.Contains(t, err.Error(), `"X"`)
}

func TestMatchesMissingPart(t *testing.T) {
	err := Matches(s("WGS 84"), s("WGS"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing part")
	assert.Contains(t, err.Error(), `"84"`)
}

func TestMatchesUnrestricted(t *testing.T) {
	assert.NoError(t, Matches(s(Unrestricted), s("anything at all"), false))
	assert.NoError(t, Matches(s(Unrestricted), nil, false))
	assert.NoError(t, Matches(s(Unrestricted), s(""), true))
}

func TestMatchesNil(t *testing.T) {
	assert.NoError(t, Matches(nil, nil, false))
	assert.NoError(t, Matches(nil, nil, true))

	err := Matches(s("X"), nil, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	err = Matches(nil, s("X"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected no value")
}

func TestOpt(t *testing.T) {
	assert.Nil(t, Opt(""))
	require.NotNil(t, Opt("WGS 84"))
	assert.Equal(t, "WGS 84", *Opt("WGS 84"))
}

func TestMatchesIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("every name matches itself", prop.ForAll(
		func(name string) bool {
			return Matches(s(name), s(name), true) == nil &&
				Matches(s(name), s(name), false) == nil
		},
		gen.AnyString(),
	))

	properties.Property("case folding never breaks a case-insensitive match", prop.ForAll(
		func(name string) bool {
			folded := []rune(name)
			for i, r := range folded {
				if i%2 == 0 {
					folded[i] = toUpper(r)
				}
			}

			return Matches(s(name), s(string(folded)), true) == nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}

	return r
}
