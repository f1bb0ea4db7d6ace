package discord

import (
	"fmt"
	"strings"

	"gatherbot/internal/domain"
)

func formatEventLine(e *domain.Event, attending int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** — %s", e.Name, e.Date.Format(domain.DateLayout))
	if e.EventTime != "" {
		fmt.Fprintf(&b, " %s", e.EventTime)
	}
	fmt.Fprintf(&b, " (%d attending)", attending)
	if e.Description != "" {
		fmt.Fprintf(&b, "\n%s", e.Description)
	}
	return b.String()
}

// FormatDigest renders a reminder digest as a Discord message. An empty digest
// still produces an explicit notice.
func FormatDigest(d *domain.Digest) string {
	if d.Empty() {
		return fmt.Sprintf("📭 No upcoming events between %s and %s.",
			d.From.Format(domain.DateLayout), d.To.Format(domain.DateLayout))
	}
	lines := make([]string, 0, len(d.Events))
	for _, e := range d.Events {
		line := fmt.Sprintf("📅 **%s** — %s", e.Name, e.Date.Format(domain.DateLayout))
		if e.Description != "" {
			line += "\n" + e.Description
		}
		lines = append(lines, line)
	}
	return "🔔 **Upcoming Events (Next 14 Days):**\n\n" + strings.Join(lines, "\n\n")
}
