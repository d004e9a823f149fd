package random_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unyx/random"
)

func assertNoDuplicates(t *testing.T, a random.Alphabet) {
	t.Helper()
	seen := make(map[byte]bool, a.Len())
	for i := 0; i < a.Len(); i++ {
		assert.False(t, seen[a[i]], "duplicate character %q", a[i])
		seen[a[i]] = true
	}
}

func TestBuildAlphabetUpperNumeric(t *testing.T) {
	a, err := random.BuildAlphabet(random.Upper | random.Numeric)
	require.NoError(t, err)

	// Fixed order: upper run first, then the numeric run.
	assert.Equal(t, random.Alphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"), a)
	assert.Equal(t, 36, a.Len())
	assertNoDuplicates(t, a)
}

func TestBuildAlphabetIsIdempotent(t *testing.T) {
	first, err := random.BuildAlphabet(random.Lower | random.Symbols)
	require.NoError(t, err)

	second, err := random.BuildAlphabet(random.Lower | random.Symbols)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildAlphabetDeduplicatesOverlappingRuns(t *testing.T) {
	// Numeric and hex-upper share the digits; first-seen order wins.
	a, err := random.BuildAlphabet(random.Numeric | random.HexUpper)
	require.NoError(t, err)
	assert.Equal(t, random.Alphabet("0123456789ABCDEF"), a)

	both, err := random.BuildAlphabet(random.HexUpper | random.HexLower)
	require.NoError(t, err)
	assert.Equal(t, random.Alphabet("0123456789ABCDEFabcdef"), both)
	assertNoDuplicates(t, both)
}

func TestBuildAlphabetLegibleAloneImpliesAlphanumerics(t *testing.T) {
	a, err := random.BuildAlphabet(random.Legible)
	require.NoError(t, err)

	// Upper, lower, and numeric are implied, minus every ambiguous glyph.
	for _, c := range "0O1lI5S2Z6G8B()[]{}<>.,:;?" {
		assert.NotContains(t, string(a), string(c), "ambiguous glyph %q must be excluded", c)
	}
	for _, c := range "ACDEFHJKLMNPQRTUVWXYabcdefghijkmnopqrstuvwxyz3479" {
		assert.Contains(t, string(a), string(c))
	}
	assertNoDuplicates(t, a)
}

func TestBuildAlphabetLegibleAsModifier(t *testing.T) {
	// Combined with an explicit source flag it only filters; no implicit
	// alphanumeric union.
	a, err := random.BuildAlphabet(random.Numeric | random.Legible)
	require.NoError(t, err)
	assert.Equal(t, random.Alphabet("3479"), a)
}

func TestBuildAlphabetBracketsAndPunctuation(t *testing.T) {
	a, err := random.BuildAlphabet(random.Brackets | random.Punctuation)
	require.NoError(t, err)
	assert.Equal(t, random.Alphabet("()[]{}<>.,:;?"), a)
}

func TestBuildAlphabetBase64(t *testing.T) {
	a, err := random.BuildAlphabet(random.Upper | random.Lower | random.Numeric | random.Base64Extra)
	require.NoError(t, err)
	assert.Equal(t, 64, a.Len())
	assertNoDuplicates(t, a)
}

func TestBuildAlphabetRejectsZeroFlags(t *testing.T) {
	_, err := random.BuildAlphabet(0)
	assert.ErrorIs(t, err, random.ErrInvalidAlphabetSpec)
}

func TestBuildAlphabetRejectsUnknownBits(t *testing.T) {
	_, err := random.BuildAlphabet(random.Flag(1 << 20))
	assert.ErrorIs(t, err, random.ErrInvalidAlphabetSpec)
}

func TestBuildAlphabetConcurrent(t *testing.T) {
	const goroutines = 50

	var wg sync.WaitGroup
	results := make([]random.Alphabet, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			a, err := random.BuildAlphabet(random.Upper | random.Lower | random.Legible)
			assert.NoError(t, err)
			results[i] = a
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Equal(t, results[0], results[i])
	}
}

// ParseFlags tests

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    random.Flag
		wantErr bool
	}{
		{"single", "upper", random.Upper, false},
		{"combined", "upper,numeric", random.Upper | random.Numeric, false},
		{"spaces and case", " Hex-Lower , LEGIBLE ", random.HexLower | random.Legible, false},
		{"unknown", "upper,bogus", 0, true},
		{"empty", "", 0, true},
		{"only separators", ",,", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := random.ParseFlags(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, random.ErrInvalidAlphabetSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "upper,numeric", (random.Upper | random.Numeric).String())
	assert.Equal(t, "none", random.Flag(0).String())
}
