package match

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reMultiSpace = regexp.MustCompile(`\s+`)

// Fold applies NFKC compatibility normalization and strips combining
// marks after NFD decomposition (é -> e, ō -> o). Alias keys and
// filenames both pass through it, so the two sides of a match live in
// the same space.
func Fold(s string) string {
	s = norm.NFKC.String(s)
	decomp := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomp))
	for _, r := range decomp {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize converts a file name into the surface alias patterns are
// tested against: extension stripped, the characters "_.- " and space
// trimmed from both ends, remaining dots replaced with spaces, camel
// and snake word boundaries split, folded and lowercased.
// "My.Movie_Name-2020.mkv" becomes "my movie name 2020".
func Normalize(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfiles like ".gitignore" have no stem before the dot.
		stem = base
	}
	stem = strings.Trim(stem, "_.- ")
	stem = strings.ReplaceAll(stem, ".", " ")
	stem = splitWords(stem)
	stem = strings.ToLower(Fold(stem))
	stem = reMultiSpace.ReplaceAllString(stem, " ")
	return strings.TrimSpace(stem)
}

// splitWords inserts spaces at snake, kebab and camel word boundaries:
// "StarWars" -> "Star Wars", "star_wars" -> "star wars",
// "HTTPServer" -> "HTTP Server".
func splitWords(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i, r := range runes {
		if r == '_' || r == '-' {
			b.WriteRune(' ')
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				b.WriteRune(' ')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// Acronym boundary: last upper before a lowercase run.
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
