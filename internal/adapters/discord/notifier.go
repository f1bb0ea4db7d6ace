package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"gatherbot/internal/domain"
)

// ChannelNotifier delivers reminder digests to one Discord channel. It shares
// the gateway's session rather than opening a second connection.
type ChannelNotifier struct {
	session   *discordgo.Session
	channelID string
	logger    *slog.Logger
}

func NewChannelNotifier(session *discordgo.Session, channelID string, logger *slog.Logger) *ChannelNotifier {
	return &ChannelNotifier{
		session:   session,
		channelID: channelID,
		logger:    logger,
	}
}

func (n *ChannelNotifier) NotifyDigest(ctx context.Context, d *domain.Digest) error {
	if _, err := n.session.ChannelMessageSend(n.channelID, FormatDigest(d)); err != nil {
		return fmt.Errorf("send digest to channel %s: %w", n.channelID, err)
	}
	n.logger.Info("digest sent to discord channel", "channel", n.channelID, "events", len(d.Events))
	return nil
}
