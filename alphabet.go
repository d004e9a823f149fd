package random

import (
	"fmt"
	"strings"
	"sync"
)

// Flag selects character runs for alphabet construction. Flags combine with
// bitwise OR; the resulting alphabet concatenates the selected runs in a
// fixed order and deduplicates them.
type Flag uint

// Alphabet flags. The builder iterates them in declaration order, so a given
// combination always yields the same alphabet.
const (
	// Upper selects the uppercase Latin letters A-Z.
	Upper Flag = 1 << iota
	// Lower selects the lowercase Latin letters a-z.
	Lower
	// Numeric selects the digits 0-9.
	Numeric
	// HexUpper selects the uppercase hexadecimal digits 0-9A-F.
	HexUpper
	// HexLower selects the lowercase hexadecimal digits 0-9a-f.
	HexLower
	// Base64Extra selects the two non-alphanumeric base64 characters.
	Base64Extra
	// Symbols selects a fixed set of shell-safe symbol characters.
	Symbols
	// Brackets selects paired bracket characters.
	Brackets
	// Punctuation selects sentence punctuation characters.
	Punctuation
	// Legible excludes visually ambiguous glyphs (0/O, 1/l/I and friends),
	// brackets, and punctuation from the result. It is an exclusion modifier,
	// not a character source: requested alone it implies Upper|Lower|Numeric.
	Legible
)

const allFlags = Upper | Lower | Numeric | HexUpper | HexLower | Base64Extra |
	Symbols | Brackets | Punctuation | Legible

const (
	upperRun       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerRun       = "abcdefghijklmnopqrstuvwxyz"
	numericRun     = "0123456789"
	hexUpperRun    = "0123456789ABCDEF"
	hexLowerRun    = "0123456789abcdef"
	base64ExtraRun = "+/"
	symbolsRun     = "!@#$%^&*_-=~"
	bracketsRun    = "()[]{}<>"
	punctuationRun = ".,:;?"

	// ambiguousGlyphs are the glyph pairs that are easy to confuse in print.
	// Legible additionally strips bracketsRun and punctuationRun.
	ambiguousGlyphs = "0O1lI5S2Z6G8B"
)

// characterRuns maps each source flag to its run, in the documented build order.
var characterRuns = []struct {
	flag Flag
	run  string
}{
	{Upper, upperRun},
	{Lower, lowerRun},
	{Numeric, numericRun},
	{HexUpper, hexUpperRun},
	{HexLower, hexLowerRun},
	{Base64Extra, base64ExtraRun},
	{Symbols, symbolsRun},
	{Brackets, bracketsRun},
	{Punctuation, punctuationRun},
}

// flagNames maps flag names used by the CLI and HTTP surfaces.
var flagNames = []struct {
	flag Flag
	name string
}{
	{Upper, "upper"},
	{Lower, "lower"},
	{Numeric, "numeric"},
	{HexUpper, "hex-upper"},
	{HexLower, "hex-lower"},
	{Base64Extra, "base64-extra"},
	{Symbols, "symbols"},
	{Brackets, "brackets"},
	{Punctuation, "punctuation"},
	{Legible, "legible"},
}

// String returns the comma-separated names of the set flags.
func (f Flag) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseFlags parses a comma-separated list of flag names into a Flag bitmask.
func ParseFlags(s string) (Flag, error) {
	var flags Flag

	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(strings.ToLower(part))
		if name == "" {
			continue
		}

		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				flags |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: unknown flag %q", ErrInvalidAlphabetSpec, name)
		}
	}

	if flags == 0 {
		return 0, fmt.Errorf("%w: no flags given", ErrInvalidAlphabetSpec)
	}
	return flags, nil
}

// Alphabet is a deduplicated, ordered set of characters used as the output
// vocabulary for string generation. Alphabets are immutable.
type Alphabet string

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

// alphabetCache holds built alphabets keyed by their resolved bitmask.
// Building is a pure function of the bitmask, so the cache is append-only;
// the first build per mask is serialized, later reads take the read lock.
var alphabetCache = struct {
	sync.RWMutex
	m map[Flag]Alphabet
}{m: make(map[Flag]Alphabet)}

// BuildAlphabet composes an alphabet from the given flag combination.
//
// Runs are concatenated in the fixed order upper, lower, numeric, hex-upper,
// hex-lower, base64-extra, symbols, brackets, punctuation; Legible then
// removes the ambiguous glyphs, brackets, and punctuation; finally duplicates
// are dropped keeping first-seen order. Semantically identical requests
// return the same cached alphabet.
func BuildAlphabet(flags Flag) (Alphabet, error) {
	if flags == 0 {
		return "", fmt.Errorf("%w: no flags given", ErrInvalidAlphabetSpec)
	}
	if flags&^allFlags != 0 {
		return "", fmt.Errorf("%w: unknown flag bits 0x%x", ErrInvalidAlphabetSpec, uint(flags&^allFlags))
	}

	// Legible alone has nothing to exclude from; it implies the alphanumerics.
	resolved := flags
	if resolved&^Legible == 0 {
		resolved |= Upper | Lower | Numeric
	}

	alphabetCache.RLock()
	cached, ok := alphabetCache.m[resolved]
	alphabetCache.RUnlock()
	if ok {
		return cached, nil
	}

	alphabetCache.Lock()
	defer alphabetCache.Unlock()

	// Another goroutine may have built it while we waited for the lock.
	if cached, ok := alphabetCache.m[resolved]; ok {
		return cached, nil
	}

	built, err := buildAlphabet(resolved)
	if err != nil {
		return "", err
	}

	alphabetCache.m[resolved] = built
	return built, nil
}

// buildAlphabet constructs the alphabet for an already-resolved bitmask.
func buildAlphabet(resolved Flag) (Alphabet, error) {
	var accum []byte
	for _, cr := range characterRuns {
		if resolved&cr.flag != 0 {
			accum = append(accum, cr.run...)
		}
	}

	if resolved&Legible != 0 {
		excluded := ambiguousGlyphs + bracketsRun + punctuationRun
		kept := accum[:0]
		for _, c := range accum {
			if strings.IndexByte(excluded, c) < 0 {
				kept = append(kept, c)
			}
		}
		accum = kept
	}

	// Deduplicate keeping first-seen order.
	var seen [256]bool
	out := make([]byte, 0, len(accum))
	for _, c := range accum {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	if len(out) == 0 {
		return "", fmt.Errorf("%w: resolved alphabet is empty", ErrInvalidAlphabetSpec)
	}
	return Alphabet(out), nil
}
