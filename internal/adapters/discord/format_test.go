package discord

import (
	"testing"
	"time"

	"gatherbot/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFormatDigest(t *testing.T) {
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)

	t.Run("lists qualifying events", func(t *testing.T) {
		d := &domain.Digest{
			From: from,
			To:   to,
			Events: []*domain.Event{
				{Name: "Game Night", Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Description: "board games"},
				{Name: "Picnic", Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
			},
		}
		out := FormatDigest(d)
		require.Contains(t, out, "Upcoming Events (Next 14 Days)")
		require.Contains(t, out, "**Game Night** — 2024-06-10")
		require.Contains(t, out, "board games")
		require.Contains(t, out, "**Picnic** — 2024-06-15")
	})

	t.Run("empty digest still says something", func(t *testing.T) {
		d := &domain.Digest{From: from, To: to}
		out := FormatDigest(d)
		require.Contains(t, out, "No upcoming events")
		require.Contains(t, out, "2024-06-03")
		require.Contains(t, out, "2024-06-17")
	})
}

func TestFormatEventLine(t *testing.T) {
	e := &domain.Event{
		Name:        "Game Night",
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		EventTime:   "18:30",
		Description: "board games",
	}
	line := formatEventLine(e, 3)
	require.Equal(t, "**Game Night** — 2024-06-10 18:30 (3 attending)\nboard games", line)

	bare := &domain.Event{Name: "Picnic", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, "**Picnic** — 2024-07-01 (0 attending)", formatEventLine(bare, 0))
}
