package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dots underscores dashes", "My.Movie_Name-2020.mkv", "my movie name 2020"},
		{"snake case", "star_wars_episode_4.mkv", "star wars episode 4"},
		{"camel case", "StarWarsTrivia.pdf", "star wars trivia"},
		{"acronym boundary", "HTTPServerLogs.txt", "http server logs"},
		{"boundary trim", "_-.file name._", "file name"},
		{"diacritics", "Amélie.mkv", "amelie"},
		{"dotfile keeps name", ".gitignore", "gitignore"},
		{"collapses spaces", "a  -  b.txt", "a b"},
		{"only separators", "___.mkv", ""},
		{"plain", "report.pdf", "report"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestFold(t *testing.T) {
	require.Equal(t, "Cafe", Fold("Café"))
	require.Equal(t, "Tokyo", Fold("Tōkyō"))
}
