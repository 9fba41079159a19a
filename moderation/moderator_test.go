package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Mask(t *testing.T) {
	moderator, err := NewModerator([]string{"idiot", "stupid"}, '*')
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean text untouched", "hello there", "hello there"},
		{"lowercase match", "you idiot", "you *****"},
		{"mixed case match keeps length", "you IdIoT", "you *****"},
		{"multiple words", "stupid idiot", "****** *****"},
		{"match inside a word", "idiotic", "*****ic"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, moderator.Mask(tt.input))
		})
	}
}

func TestModerator_SkipsBlankWords(t *testing.T) {
	req := require.New(t)

	moderator, err := NewModerator([]string{" ", "idiot", ""}, '#')
	req.NoError(err)
	req.Equal("you #####", moderator.Mask("you idiot"))
}

func TestLoadEmbedded(t *testing.T) {
	req := require.New(t)

	words, err := LoadEmbedded()
	req.NoError(err)
	req.NotEmpty(words)
	for _, word := range words {
		req.NotEmpty(word)
		req.NotContains(word, "#")
	}
}
