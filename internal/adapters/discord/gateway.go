package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"gatherbot/internal/domain"
)

// Gateway adapts Discord messages to EventService calls. It owns the bot
// session; domain outcomes are translated here into user-facing replies and
// unexpected failures are reported generically.
type Gateway struct {
	session *discordgo.Session
	events  domain.EventService
	prefix  string
	logger  *slog.Logger
}

func NewGateway(token, prefix string, events domain.EventService, logger *slog.Logger) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	g := &Gateway{
		session: session,
		events:  events,
		prefix:  prefix,
		logger:  logger,
	}
	session.AddHandler(g.onMessageCreate)
	return g, nil
}

// Session exposes the underlying connection for notifiers sharing it.
func (g *Gateway) Session() *discordgo.Session {
	return g.session
}

func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	g.logger.Info("discord gateway connected", "prefix", g.prefix)
	return nil
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, g.prefix) {
		return
	}
	line := strings.TrimSpace(strings.TrimPrefix(m.Content, g.prefix))
	if line == "" {
		return
	}
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	ctx := context.Background()

	var reply string
	switch strings.ToLower(command) {
	case "create_event":
		reply = g.handleCreate(ctx, rest)
	case "events", "show_events":
		reply = g.handleList(ctx, rest)
	case "delete_event":
		reply = g.handleDelete(ctx, stripQuotes(rest))
	case "rsvp":
		reply = g.handleRSVP(ctx, stripQuotes(rest), m.Author)
	case "rsvp_count":
		reply = g.handleRSVPCount(ctx, stripQuotes(rest))
	case "attendees":
		reply = g.handleAttendees(ctx, stripQuotes(rest))
	case "commands", "help":
		g.sendHelp(m.ChannelID)
		return
	default:
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		g.logger.Error("send reply", "channel", m.ChannelID, "error", err)
	}
}

func (g *Gateway) handleCreate(ctx context.Context, rest string) string {
	args := splitArgs(rest)
	if len(args) < 2 {
		return "⚠️ Usage: " + g.prefix + `create_event "<name>" <YYYY-MM-DD> [HH:MM] <description>`
	}
	name, date := args[0], args[1]
	args = args[2:]

	eventTime := ""
	if len(args) > 0 && looksLikeTime(args[0]) {
		eventTime = args[0]
		args = args[1:]
	}
	description := strings.Join(args, " ")

	event, err := g.events.Create(ctx, name, date, eventTime, description)
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return "⚠️ Invalid date format. Use YYYY-MM-DD."
	case errors.Is(err, domain.ErrEmptyName):
		return "⚠️ Event name must not be empty."
	case err != nil:
		g.logger.Error("create event", "error", err)
		return "❌ Something went wrong creating the event."
	}
	return fmt.Sprintf("✅ Event '%s' scheduled for %s.", event.Name, event.Date.Format(domain.DateLayout))
}

func (g *Gateway) handleList(ctx context.Context, month string) string {
	month = stripQuotes(month)
	events, err := g.events.List(ctx, month)
	switch {
	case errors.Is(err, domain.ErrUnknownMonth):
		return fmt.Sprintf("⚠️ %q is not a month I recognise.", month)
	case err != nil:
		g.logger.Error("list events", "error", err)
		return "❌ Something went wrong listing events."
	}
	if len(events) == 0 {
		if month != "" {
			return fmt.Sprintf("📭 No events found for %s.", month)
		}
		return "📭 No events found."
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		count, err := g.events.RSVPCount(ctx, e.Name)
		if err != nil {
			count = 0
		}
		lines = append(lines, formatEventLine(e, count))
	}
	return strings.Join(lines, "\n\n")
}

func (g *Gateway) handleDelete(ctx context.Context, name string) string {
	err := g.events.Delete(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "⚠️ Event not found."
	case err != nil:
		g.logger.Error("delete event", "error", err)
		return "❌ Something went wrong deleting the event."
	}
	return fmt.Sprintf("🗑️ Event '%s' deleted.", name)
}

func (g *Gateway) handleRSVP(ctx context.Context, name string, author *discordgo.User) string {
	created, err := g.events.RSVP(ctx, name, author.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "⚠️ Event not found."
	case err != nil:
		g.logger.Error("rsvp", "error", err)
		return "❌ Something went wrong recording your RSVP."
	}
	if !created {
		return "❌ You've already RSVP'd to this event."
	}
	return fmt.Sprintf("✅ %s RSVP'd for **%s**!", author.Mention(), name)
}

func (g *Gateway) handleRSVPCount(ctx context.Context, name string) string {
	count, err := g.events.RSVPCount(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "⚠️ Event not found."
	case err != nil:
		g.logger.Error("rsvp count", "error", err)
		return "❌ Something went wrong counting RSVPs."
	}
	return fmt.Sprintf("👥 **%d** RSVP'd for **%s**.", count, name)
}

func (g *Gateway) handleAttendees(ctx context.Context, name string) string {
	ids, err := g.events.AttendeeIDs(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "⚠️ Event not found."
	case err != nil:
		g.logger.Error("attendees", "error", err)
		return "❌ Something went wrong fetching attendees."
	}
	if len(ids) == 0 {
		return fmt.Sprintf("📭 No one has RSVP'd for **%s** yet.", name)
	}
	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, "<@"+id+">")
	}
	return fmt.Sprintf("🎉 **%d people** RSVP'd for **%s**:\n%s", len(ids), name, strings.Join(mentions, ", "))
}

func (g *Gateway) sendHelp(channelID string) {
	p := g.prefix
	embed := &discordgo.MessageEmbed{
		Title: "📜 Event Bot Commands",
		Color: 0x00ffcc,
		Fields: []*discordgo.MessageEmbedField{
			{Name: p + `create_event "<name>" <YYYY-MM-DD> [HH:MM] <description>`, Value: "Create a new event."},
			{Name: p + "events [month]", Value: "Show all events, or only those in a given month."},
			{Name: p + "delete_event <name>", Value: "Delete an event and its RSVPs."},
			{Name: p + "rsvp <name>", Value: "RSVP for an event."},
			{Name: p + "rsvp_count <name>", Value: "See how many people RSVP'd."},
			{Name: p + "attendees <name>", Value: "See who RSVP'd to an event."},
			{Name: p + "commands", Value: "Show this command list."},
		},
	}
	if _, err := g.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		g.logger.Error("send help embed", "channel", channelID, "error", err)
	}
}

// looksLikeTime reports whether s is an HH:MM clock value, the optional third
// argument of create_event.
func looksLikeTime(s string) bool {
	if len(s) < 4 || len(s) > 5 {
		return false
	}
	i := strings.IndexByte(s, ':')
	if i < 1 || i > 2 || len(s)-i-1 != 2 {
		return false
	}
	for j := 0; j < len(s); j++ {
		if j == i {
			continue
		}
		if s[j] < '0' || s[j] > '9' {
			return false
		}
	}
	return true
}
