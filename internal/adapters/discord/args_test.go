package discord

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain words",
			input: "events March",
			want:  []string{"events", "March"},
		},
		{
			name:  "quoted name survives as one token",
			input: `"Game Night" 2024-06-10 board games`,
			want:  []string{"Game Night", "2024-06-10", "board", "games"},
		},
		{
			name:  "collapses repeated whitespace",
			input: "  rsvp   Picnic ",
			want:  []string{"rsvp", "Picnic"},
		},
		{
			name:  "empty quotes produce an empty token",
			input: `"" 2024-06-10`,
			want:  []string{"", "2024-06-10"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, splitArgs(tt.input))
		})
	}
}

func TestStripQuotes(t *testing.T) {
	require.Equal(t, "Game Night", stripQuotes(`"Game Night"`))
	require.Equal(t, "Game Night", stripQuotes("  Game Night "))
	require.Equal(t, `"half`, stripQuotes(`"half`))
}

func TestLooksLikeTime(t *testing.T) {
	for _, ok := range []string{"18:30", "9:05", "09:05"} {
		require.True(t, looksLikeTime(ok), ok)
	}
	for _, bad := range []string{"1830", "18:3", "board", "2024-06-10", ":30", "18:"} {
		require.False(t, looksLikeTime(bad), bad)
	}
}
